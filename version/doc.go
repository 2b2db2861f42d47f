// Package version reports build information for the processor CLI.
//
// Version and commit are set at link time:
//
//	go build -ldflags "-X github.com/robokoder/processor/version.Version=1.0.0" ./cmd/processor
//
// Anything left unset is filled from the module's embedded build info.
package version
