// Package component manages the start and stop order of long-lived parts of
// a processor deployment, such as telemetry exporters and the config
// reloader.
//
// Components start in registration order and stop in reverse.
package component
