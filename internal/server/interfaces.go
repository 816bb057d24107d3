package server

// Server is the lifecycle contract for the transports the application can
// expose. Only HTTP is implemented: negotiated pages, compressed responses
// and the JSON API are all defined in HTTP terms.
type Server interface {
	// RunServer blocks serving requests until shutdown completes.
	RunServer()

	// Shutdown drains in-flight requests and stops the listener.
	Shutdown()
}
