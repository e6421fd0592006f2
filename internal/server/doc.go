// Package server runs the portal's HTTP server and handles graceful
// shutdown when the process is asked to stop.
package server
