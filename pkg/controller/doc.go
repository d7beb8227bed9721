// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for the configured origins and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID, logs access info and records latency.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
package controller
