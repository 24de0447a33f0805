// Package server runs the node's HTTP server: startup, signal handling and
// graceful shutdown.
package server
