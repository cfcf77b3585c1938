package server

import (
	"fmt"
	"net"
	"net/http"
	"time"
)

// newServer leaves WriteTimeout unset: a bulk submit holds its request for a
// settle delay per 409, so handler wall clock grows with the registry size
// and any fixed deadline would cut the summary response off.
func newServer(host string, port int, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:        net.JoinHostPort(host, fmt.Sprintf("%d", port)),
		Handler:     handler,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}
}

func StartHTTPServer(host string, port int, handler http.Handler) error {
	srv := newServer(host, port, handler)
	go func() {
		_ = srv.ListenAndServe()
	}()
	return nil
}
