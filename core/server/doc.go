// Package server holds the HTTP server configuration consumed by the start
// command when wiring the Fiber application.
package server
