package processor

import (
	"time"

	"github.com/google/uuid"
)

// Request is an immutable unit of work. Name is the routing key processors
// usually match on; Input is an arbitrary payload.
type Request struct {
	id        uuid.UUID
	name      string
	input     any
	createdAt time.Time
}

// RequestOption customizes a Request at construction.
type RequestOption func(*Request)

// WithRequestID sets an explicit id instead of a generated one.
func WithRequestID(id uuid.UUID) RequestOption {
	return func(r *Request) { r.id = id }
}

// NewRequest creates a request with a fresh id.
func NewRequest(name string, input any, opts ...RequestOption) *Request {
	r := &Request{
		id:        uuid.New(),
		name:      name,
		input:     input,
		createdAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Request) ID() uuid.UUID        { return r.id }
func (r *Request) Name() string         { return r.name }
func (r *Request) Input() any           { return r.input }
func (r *Request) CreatedAt() time.Time { return r.createdAt }
