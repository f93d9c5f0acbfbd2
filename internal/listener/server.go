// Package listener accepts TCP connections one at a time, buffers a single
// HTTP message from each and hands the parsed result to a Handler.
//
// There is no worker pool and no keep-alive: every connection goes through
// accept, read until a short read, parse, handle and close before the next
// one is accepted.
package listener

import (
	"context"
	"io"
	"net"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/shapestone/shape-httpmsg/pkg/http"
)

// Handler receives the raw bytes of a message together with its parsed form.
// It is not called for messages that fail to parse.
type Handler func(raw []byte, msg http.Message) error

type Server struct {
	cfg     *Config
	log     zerolog.Logger
	handler Handler
}

// New creates a server. A nil cfg means Default(); a nil handler only logs.
func New(cfg *Config, logger zerolog.Logger, handler Handler) *Server {
	if cfg == nil {
		cfg = Default()
	}
	return &Server{
		cfg:     cfg,
		log:     logger,
		handler: handler,
	}
}

// ListenAndServe binds cfg.Addr and serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if err := s.cfg.Validate(); err != nil {
		return err
	}

	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return errors.Wrapf(err, "listener: bind %s", s.cfg.Addr)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections from ln until ctx is cancelled, which closes ln.
// It returns nil after cancellation and the accept error otherwise. ln is
// always closed on return.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	if err := s.cfg.Validate(); err != nil {
		_ = ln.Close()
		return err
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = ln.Close()
		case <-done:
		}
	}()
	defer ln.Close()

	s.log.Info().Str("addr", ln.Addr().String()).Msg("listening")

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.log.Info().Msg("listener stopped")
				return nil
			}
			return errors.Wrap(err, "listener: accept")
		}

		s.serveConn(conn)
	}
}

func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()

	log := s.log.With().Str("remote", conn.RemoteAddr().String()).Logger()

	if s.cfg.ReadTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(s.cfg.ReadTimeout)); err != nil {
			log.Warn().Err(err).Msg("set read deadline")
			return
		}
	}

	dec := http.NewDecoder(conn, s.cfg.ChunkSize)
	dec.SetMaxMessageSize(s.cfg.MaxMessageSize)

	raw, err := dec.ReadMessage()
	if err == io.EOF {
		log.Debug().Msg("connection closed before any data")
		return
	}
	if err != nil {
		log.Warn().Err(err).Msg("read failed")
		return
	}

	log = log.With().Int("bytes", len(raw)).Logger()

	msg, err := http.Parse(raw)
	if err != nil {
		ev := log.Warn().Err(err)
		var perr *http.ParseError
		if errors.As(err, &perr) {
			ev = ev.Stringer("error_kind", perr.Kind).Int("offset", perr.Offset)
		}
		ev.Msg("parse failed")
		return
	}

	log.Info().Stringer("kind", msg.Kind()).Msg("message parsed")

	if s.handler == nil {
		return
	}
	if err := s.handler(raw, msg); err != nil {
		log.Error().Err(err).Msg("handler failed")
	}
}
