package tictactoe

import (
	"errors"
	"io"
	"log/slog"
	"sync"
)

var errBrokenPipe = errors.New("broken pipe")

type fakeConn struct {
	id string

	mu   sync.Mutex
	msgs []string
	fail bool
}

func newFakeConn(id string) *fakeConn {
	return &fakeConn{id: id}
}

func (that *fakeConn) ID() string {
	return that.id
}

func (that *fakeConn) Send(msg []byte) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.fail {
		return errBrokenPipe
	}

	that.msgs = append(that.msgs, string(msg))

	return nil
}

func (that *fakeConn) Messages() []string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return append([]string(nil), that.msgs...)
}

func (that *fakeConn) Last() string {
	msgs := that.Messages()
	if len(msgs) == 0 {
		return ""
	}

	return msgs[len(msgs)-1]
}

func (that *fakeConn) Break() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.fail = true
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
