package transport

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"
)

// serveOnce accepts a single connection on ln, reads one frame, and replies
// with the given result code and payload.
func serveOnce(t *testing.T, ln net.Listener, resultCode uint32, response any) {
	t.Helper()
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		if _, err := ReadFrame(conn); err != nil {
			return
		}
		WriteFrame(conn, resultCode, response)
	}()
}

func TestTCPClientLoginRoundTrip(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	serveOnce(t, ln, uint32(ResultOkay), LoginResponse{IdxPlayer: 3, Name: "Alice"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := Dial(ctx, ln.Addr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	resp, err := client.Login(ctx, LoginRequest{Name: "Alice"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.IdxPlayer != 3 || resp.Name != "Alice" {
		t.Errorf("Login response = %+v, want {3 Alice}", resp)
	}
}

func TestTCPClientSurfacesRuleViolation(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	serveOnce(t, ln, uint32(ResultBadCommand), struct{}{})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := Dial(ctx, ln.Addr().String())
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	err = client.Move(ctx, MoveRequest{VehicleID: 1})
	if err == nil {
		t.Fatal("expected an error for a BAD_COMMAND result")
	}
	if !errors.Is(err, ErrRuleViolation) {
		t.Errorf("expected a BAD_COMMAND result to match ErrRuleViolation, got %v", err)
	}
}
