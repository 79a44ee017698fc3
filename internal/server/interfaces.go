package server

// Server is the lifecycle of one transport (HTTP or gRPC) or of all of them.
//
// RunServer blocks until the server stops. Shutdown drains in-flight requests
// and releases the listener.
type Server interface {
	RunServer()
	Shutdown()
}
