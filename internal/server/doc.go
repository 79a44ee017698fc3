// Package server runs the note server's transports.
//
// The HTTP API and the gRPC health endpoint are started together, stopped on
// SIGTERM, SIGINT or SIGQUIT, and shut down gracefully: gRPC first, so health
// checks report NOT_SERVING while HTTP drains.
package server
