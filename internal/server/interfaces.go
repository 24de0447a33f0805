package server

// Server is the lifecycle of the node's transport.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then shuts down
	// gracefully. It returns early with an error if listening fails.
	RunServer() error

	// Shutdown stops the server, letting in-flight requests finish.
	Shutdown()
}
