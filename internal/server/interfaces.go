package server

// Server is the lifecycle of the gateway's transports.
//
// Listeners are bound when the Server is created, so an address already in
// use is reported by [NewServer] rather than after startup.
type Server interface {
	// RunServer serves until a stop signal arrives or a transport fails,
	// then shuts every transport down. It returns the failure, if any.
	RunServer() error

	// Shutdown gracefully stops every transport.
	Shutdown()
}
