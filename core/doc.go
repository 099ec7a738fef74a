// Package core defines the shared types used across the eva02 logging
// packages.
//
// It provides the Level type for severity filtering and the Event type
// that represents a single log occurrence. An Event is built once at the
// call site and never modified afterwards, so it can be handed to any
// number of appenders, including ones rendering it concurrently.
//
// An Event keeps a read-only reference to the logger that created it
// through the Named interface. Renderers only ever read the name; the
// event does not own the logger and never mutates it.
package core
