package tcp

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-server/internal/config"
)

const (
	maxMessageSize = 64 * 1024
	headerSize     = 4
)

var (
	ErrUnknownFraming  = errors.New("unknown framing")
	ErrMessageTooLarge = errors.New("message too large")
)

// codec reads and writes one message at a time on a buffered stream.
type codec struct {
	read  func(r *bufio.Reader) ([]byte, error)
	write func(w *bufio.Writer, payload []byte) error
}

func newCodec(framing string) (codec, error) {
	switch framing {
	case config.FramingLine, "":
		return codec{read: readLine, write: writeLine}, nil
	case config.FramingLength:
		return codec{read: readLengthPrefixed, write: writeLengthPrefixed}, nil
	default:
		return codec{}, fmt.Errorf("%w: %q", ErrUnknownFraming, framing)
	}
}

// readLine returns the next '\n' terminated message without the terminator.
// A final unterminated message before EOF is still returned.
func readLine(r *bufio.Reader) ([]byte, error) {
	var line []byte

	for {
		chunk, err := r.ReadSlice('\n')
		line = append(line, chunk...)

		if len(line) > maxMessageSize {
			return nil, ErrMessageTooLarge
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}

		if err != nil {
			if errors.Is(err, io.EOF) && len(bytes.TrimSpace(line)) > 0 {
				return bytes.TrimRight(line, "\r\n"), nil
			}

			return nil, err
		}

		return bytes.TrimRight(line, "\r\n"), nil
	}
}

func writeLine(w *bufio.Writer, payload []byte) error {
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	if err := w.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}

	return nil
}

// readLengthPrefixed reads a 4 byte big-endian length followed by the payload.
func readLengthPrefixed(r *bufio.Reader) ([]byte, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	size := binary.BigEndian.Uint32(header)
	if size > maxMessageSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, size)
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	return payload, nil
}

func writeLengthPrefixed(w *bufio.Writer, payload []byte) error {
	if len(payload) > maxMessageSize {
		return fmt.Errorf("%w: %d bytes", ErrMessageTooLarge, len(payload))
	}

	header := make([]byte, headerSize)
	binary.BigEndian.PutUint32(header, uint32(len(payload)))

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}

	return nil
}
