package tcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/rocketscienceinc/tictactoe-server/internal/config"
	"github.com/rocketscienceinc/tictactoe-server/internal/pkg"
)

type Server struct {
	logger *slog.Logger
	conf   config.Server
	games  gameManager
	users  userUseCase

	wg sync.WaitGroup
}

func New(logger *slog.Logger, conf config.Server, games gameManager, users userUseCase) *Server {
	return &Server{
		logger: logger,
		conf:   conf,
		games:  games,
		users:  users,
	}
}

// Start - listens on the configured address and serves until ctx is done.
func (that *Server) Start(ctx context.Context) error {
	var lc net.ListenConfig

	ln, err := lc.Listen(ctx, "tcp", that.conf.GetAddr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", that.conf.GetAddr(), err)
	}

	return that.Serve(ctx, ln)
}

// Serve accepts connections on ln and runs one session per connection.
// Cancelling ctx closes ln and every open connection.
func (that *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := that.logger.With("component", "tcp_server", "method", "Serve")

	codec, err := newCodec(that.conf.Framing)
	if err != nil {
		_ = ln.Close()
		return err
	}

	stop := context.AfterFunc(ctx, func() {
		_ = ln.Close()
	})
	defer stop()

	log.Info("accepting connections", "addr", ln.Addr().String(), "framing", that.conf.Framing)

	for {
		raw, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				that.wg.Wait()
				log.Info("listener closed")
				return nil
			}

			log.Warn("failed to accept connection", "error", err)
			continue
		}

		that.wg.Add(1)
		go func() {
			defer that.wg.Done()
			that.serveConn(ctx, codec, raw)
		}()
	}
}

// ServeConn runs a session on an already established connection.
func (that *Server) ServeConn(ctx context.Context, raw net.Conn) error {
	codec, err := newCodec(that.conf.Framing)
	if err != nil {
		_ = raw.Close()
		return err
	}

	that.serveConn(ctx, codec, raw)

	return nil
}

func (that *Server) serveConn(ctx context.Context, codec codec, raw net.Conn) {
	newSession(that.logger, that.conf, codec, pkg.GenerateConnectionID(), raw, that.games, that.users).Run(ctx)
}
