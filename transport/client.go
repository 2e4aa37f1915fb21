package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Client is the session-level contract the sim/cmd layers drive: one call
// per server action, each blocking until the matching response frame
// arrives or the context's deadline passes. TCPClient applies only the
// deadline to the socket; canceling a context without a deadline does not
// interrupt a call in progress.
type Client interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	Logout(ctx context.Context) error
	Map(ctx context.Context) (MapResponse, error)
	GameState(ctx context.Context) (GameStateResponse, error)
	Turn(ctx context.Context) error
	Move(ctx context.Context, req MoveRequest) error
	Shoot(ctx context.Context, req ShootRequest) error
	Chat(ctx context.Context, req ChatRequest) error
	Close() error
}

// TCPClient is the length-prefixed-JSON-over-TCP Client implementation.
// Requests are serialized one at a time: the protocol is a strict
// request/response exchange over a single connection, never pipelined.
type TCPClient struct {
	conn   net.Conn
	mu     sync.Mutex
	id     uuid.UUID
	closed chan struct{}
	group  *errgroup.Group
}

// Dial opens a TCP connection to addr and returns a ready TCPClient.
func Dial(ctx context.Context, addr string) (*TCPClient, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", ErrTransport, addr, err)
	}

	c := &TCPClient{
		conn:   conn,
		id:     uuid.New(),
		closed: make(chan struct{}),
	}
	group := &errgroup.Group{}
	c.group = group
	// watchClose force-closes the connection once Close is called, so any
	// read/write blocked on the socket unblocks instead of leaking - net.Conn
	// has no context support of its own to cancel a blocked call directly.
	group.Go(c.watchClose)

	log.Printf("transport[%s]: connected to %s", c.id, addr)
	return c, nil
}

func (c *TCPClient) watchClose() error {
	<-c.closed
	return c.conn.Close()
}

func (c *TCPClient) roundTrip(ctx context.Context, action ActionCode, request, response any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if deadline, ok := ctx.Deadline(); ok {
		c.conn.SetDeadline(deadline)
	} else {
		c.conn.SetDeadline(time.Time{})
	}

	if err := WriteFrame(c.conn, uint32(action), request); err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	frame, err := ReadFrame(c.conn)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}

	result := ResultCode(frame.Code)
	if resultErr := NewResultError(action, result); resultErr != nil {
		log.Printf("transport[%s]: action %d rejected: %s", c.id, action, result)
		return resultErr
	}

	if response != nil {
		if err := json.Unmarshal(frame.Payload, response); err != nil {
			return fmt.Errorf("%w: decode response: %v", ErrTransport, err)
		}
	}
	return nil
}

// Login performs the ActionLogin exchange.
func (c *TCPClient) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var resp LoginResponse
	err := c.roundTrip(ctx, ActionLogin, req, &resp)
	return resp, err
}

// Logout performs the ActionLogout exchange.
func (c *TCPClient) Logout(ctx context.Context) error {
	return c.roundTrip(ctx, ActionLogout, struct{}{}, nil)
}

// Map performs the ActionMap exchange.
func (c *TCPClient) Map(ctx context.Context) (MapResponse, error) {
	var resp MapResponse
	err := c.roundTrip(ctx, ActionMap, struct{}{}, &resp)
	return resp, err
}

// GameState performs the ActionGameState exchange.
func (c *TCPClient) GameState(ctx context.Context) (GameStateResponse, error) {
	var resp GameStateResponse
	err := c.roundTrip(ctx, ActionGameState, struct{}{}, &resp)
	return resp, err
}

// Turn blocks until the server grants this player's turn or reports a
// timeout.
func (c *TCPClient) Turn(ctx context.Context) error {
	return c.roundTrip(ctx, ActionTurn, struct{}{}, nil)
}

// Move performs the ActionMove exchange.
func (c *TCPClient) Move(ctx context.Context, req MoveRequest) error {
	return c.roundTrip(ctx, ActionMove, req, nil)
}

// Shoot performs the ActionShoot exchange.
func (c *TCPClient) Shoot(ctx context.Context, req ShootRequest) error {
	return c.roundTrip(ctx, ActionShoot, req, nil)
}

// Chat performs the ActionChat exchange.
func (c *TCPClient) Chat(ctx context.Context, req ChatRequest) error {
	return c.roundTrip(ctx, ActionChat, req, nil)
}

// Close shuts the connection down and waits for the background watcher to
// finish.
func (c *TCPClient) Close() error {
	close(c.closed)
	err := c.group.Wait()
	log.Printf("transport[%s]: closed", c.id)
	return err
}
