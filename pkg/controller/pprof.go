package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofPrefix is the path the profiling endpoints are served under.
const PprofPrefix = "/debug/pprof/"

// PprofMux returns a ServeMux exposing the net/http/pprof handlers under
// PprofPrefix. Named profiles (heap, goroutine, ...) are served by the index.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc(PprofPrefix, pprof.Index)
	mux.HandleFunc(PprofPrefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(PprofPrefix+"profile", pprof.Profile)
	mux.HandleFunc(PprofPrefix+"symbol", pprof.Symbol)
	mux.HandleFunc(PprofPrefix+"trace", pprof.Trace)

	return mux
}
