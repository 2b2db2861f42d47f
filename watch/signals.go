package watch

import "github.com/zoobzio/capitan"

// Reloader lifecycle signals.
var (
	ReloaderStarted = capitan.NewSignal(
		"processor.reloader.started",
		"Reloader watching started",
	)
	ReloaderStopped = capitan.NewSignal(
		"processor.reloader.stopped",
		"Reloader watching stopped",
	)
)

// Reload signals.
var (
	ReloadReceived = capitan.NewSignal(
		"processor.reload.received",
		"Configuration change received",
	)
	ReloadFailed = capitan.NewSignal(
		"processor.reload.failed",
		"Configuration change rejected, previous chain kept",
	)
	ReloadApplied = capitan.NewSignal(
		"processor.reload.applied",
		"New chain swapped in",
	)
)

// Signal fields.
var (
	KeyError   = capitan.NewStringKey("error")
	KeyEntries = capitan.NewIntKey("entries")
	KeyVersion = capitan.NewIntKey("version")
)
