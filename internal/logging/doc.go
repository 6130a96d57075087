// Package logging provides a unified logging interface for quickrun.
// It abstracts the underlying logging implementation so the demo steps log
// through one interface, with zerolog as the production backend and a
// standard library adapter for callers that already own a *log.Logger.
package logging
