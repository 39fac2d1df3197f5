// Package server wires and runs the engine's transport server and
// background workers.
//
// It provides orchestration for the HTTP server lifecycle, including
// startup, signal handling, graceful shutdown, and starting the
// background sweepers on the same lifecycle context.
package server
