package dto

import (
	"errors"
	"testing"
	"time"
)

func TestErrorResponse_Error(t *testing.T) {
	e := ErrorResponse{Message: "bad input"}
	if e.Error() != "bad input" {
		t.Fatalf("want 'bad input' got %q", e.Error())
	}
	e2 := ErrorResponse{Message: "bad input", ErrorDetails: "ticker missing"}
	if e2.Error() != "bad input: ticker missing" {
		t.Fatalf("want 'bad input: ticker missing' got %q", e2.Error())
	}
}

func TestNewErrorResponse(t *testing.T) {
	// without inner error
	e := NewErrorResponse("msg", nil)
	if e.Message != "msg" || e.ErrorDetails != "" {
		t.Fatalf("unexpected %+v", e)
	}
	if e.Timestamp.IsZero() || time.Since(e.Timestamp) > time.Second {
		t.Fatalf("timestamp not set")
	}

	// with inner error
	err := errors.New("no data found")
	e2 := NewErrorResponse("msg", err)
	if e2.ErrorDetails != "no data found" || e2.Message != "msg" {
		t.Fatalf("unexpected %+v", e2)
	}
}
