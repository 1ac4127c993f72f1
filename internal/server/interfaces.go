package server

// Server runs the gateway listener until the process is told to stop.
type Server interface {
	// RunServer blocks until a stop signal arrives or the listener fails.
	RunServer()

	// Shutdown drains in-flight requests and closes the listener.
	Shutdown()
}
