package processor

// DefaultPriority is used when an entry is added without WithPriority.
const DefaultPriority = 10

// Entry pairs a processor with the name it reports and the priority that
// orders it. Lower priorities are tried first.
type Entry struct {
	processor Processor
	name      string
	priority  int
}

// NewEntry creates an entry. No validation is performed.
func NewEntry(p Processor, name string, priority int) Entry {
	return Entry{processor: p, name: name, priority: priority}
}

func (e Entry) Processor() Processor { return e.processor }
func (e Entry) Name() string         { return e.name }
func (e Entry) Priority() int        { return e.priority }

// EntryOption customizes an entry added through Chain.Add.
type EntryOption func(*Entry)

// WithName sets the entry's name.
func WithName(name string) EntryOption {
	return func(e *Entry) { e.name = name }
}

// WithPriority sets the entry's priority.
func WithPriority(priority int) EntryOption {
	return func(e *Entry) { e.priority = priority }
}
