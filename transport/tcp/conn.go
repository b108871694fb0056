package tcp

import (
	"bufio"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"
)

// Conn is the write side of one client connection. Sends from the session and
// from room broadcasts on other goroutines are serialized by mu.
type Conn struct {
	id           string
	conn         net.Conn
	codec        codec
	writeTimeout time.Duration

	mu     sync.Mutex
	writer *bufio.Writer

	closed atomic.Bool
}

func newConn(id string, conn net.Conn, codec codec, writeTimeout time.Duration) *Conn {
	return &Conn{
		id:           id,
		conn:         conn,
		codec:        codec,
		writeTimeout: writeTimeout,
		writer:       bufio.NewWriter(conn),
	}
}

func (that *Conn) ID() string {
	return that.id
}

func (that *Conn) Send(msg []byte) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed.Load() {
		return net.ErrClosed
	}

	if that.writeTimeout > 0 {
		if err := that.conn.SetWriteDeadline(time.Now().Add(that.writeTimeout)); err != nil {
			return fmt.Errorf("failed to set write deadline: %w", err)
		}
	}

	if err := that.codec.write(that.writer, msg); err != nil {
		return err
	}

	return nil
}

func (that *Conn) SendString(msg string) error {
	return that.Send([]byte(msg))
}

// Close does not take mu, so a send blocked on a dead peer is interrupted.
func (that *Conn) Close() error {
	if !that.closed.CompareAndSwap(false, true) {
		return nil
	}

	return that.conn.Close()
}
