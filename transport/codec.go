// Package transport implements the length-prefixed JSON-over-TCP wire
// protocol the HexTanks server speaks: every frame is a little-endian
// uint32 action or result code, a little-endian uint32 payload length, and
// a UTF-8 JSON payload of that length.
package transport

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
)

const headerSize = 8 // action/result code (4 bytes) + payload length (4 bytes)

// maxFrameSize bounds how large a single payload this codec will allocate
// for, guarding against a corrupt or hostile length prefix asking for an
// unreasonable read.
const maxFrameSize = 16 << 20 // 16 MiB

// Frame is one length-prefixed message, either outbound (Code is an
// ActionCode) or inbound (Code is a ResultCode).
type Frame struct {
	Code    uint32
	Payload []byte
}

// WriteFrame writes code and v, JSON-encoded, as one frame to w.
func WriteFrame(w io.Writer, code uint32, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("transport: encode payload: %w", err)
	}
	if len(payload) > maxFrameSize {
		return fmt.Errorf("transport: payload of %d bytes exceeds max frame size", len(payload))
	}

	header := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(header[0:4], code)
	binary.LittleEndian.PutUint32(header[4:8], uint32(len(payload)))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("transport: write header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("transport: write payload: %w", err)
	}
	return nil
}

// ReadFrame reads one length-prefixed frame from r.
func ReadFrame(r io.Reader) (Frame, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return Frame{}, fmt.Errorf("transport: read header: %w", err)
	}

	code := binary.LittleEndian.Uint32(header[0:4])
	length := binary.LittleEndian.Uint32(header[4:8])
	if length > maxFrameSize {
		return Frame{}, fmt.Errorf("transport: payload of %d bytes exceeds max frame size", length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Frame{}, fmt.Errorf("transport: read payload: %w", err)
	}

	return Frame{Code: code, Payload: payload}, nil
}
