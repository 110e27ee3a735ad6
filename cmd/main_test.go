package main

import (
	"context"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"
)

type dummyHandler struct{}

func (d dummyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

func TestStartServerAndShutdown(t *testing.T) {
	srv := startServer(dummyHandler{}, "0") // random port
	if srv == nil {
		t.Fatalf("expected server")
	}

	// Give server a moment to start
	time.Sleep(50 * time.Millisecond)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && err != http.ErrServerClosed {
		t.Fatalf("shutdown err: %v", err)
	}
}

func TestGracefulShutdown_SignalPath(t *testing.T) {
	srv := startServer(dummyHandler{}, "0")

	cleaned := make(chan struct{}, 1)
	go func() {
		gracefulShutdown(context.Background(), srv, func() { close(cleaned) })
	}()

	// Give the goroutine time to set up signal notifications
	time.Sleep(50 * time.Millisecond)

	p, _ := os.FindProcess(os.Getpid())
	_ = p.Signal(syscall.SIGTERM)

	select {
	case <-cleaned:
	case <-time.After(2 * time.Second):
		t.Fatalf("cleanup not called after SIGTERM")
	}
}
