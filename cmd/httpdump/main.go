// Command httpdump listens on a TCP address, reads one HTTP message per
// connection and prints each parsed message as a JSON line on stdout.
//
// Usage:
//
//	httpdump [-addr 127.0.0.1:8080] [-chunk 8] [-log-level info] [-pretty] [-tokens]
//
// HTTPDUMP_ADDR, HTTPDUMP_CHUNK and HTTPDUMP_LOG_LEVEL set the defaults for
// -addr, -chunk and -log-level; flags given on the command line win.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	json "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/shapestone/shape-httpmsg/internal/listener"
	"github.com/shapestone/shape-httpmsg/pkg/http"
)

type options struct {
	listener *listener.Config
	level    zerolog.Level
	pretty   bool
	tokens   bool
}

func parseOptions(args []string, getenv func(string) string) (*options, error) {
	cfg := listener.Default()
	level := "info"

	if v := getenv("HTTPDUMP_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := getenv("HTTPDUMP_CHUNK"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrapf(err, "HTTPDUMP_CHUNK %q", v)
		}
		cfg.ChunkSize = n
	}
	if v := getenv("HTTPDUMP_LOG_LEVEL"); v != "" {
		level = v
	}

	opts := &options{listener: cfg}

	fs := flag.NewFlagSet("httpdump", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "TCP address to listen on")
	fs.IntVar(&cfg.ChunkSize, "chunk", cfg.ChunkSize, "socket read size; a shorter read ends the message")
	fs.IntVar(&cfg.MaxMessageSize, "max-size", cfg.MaxMessageSize, "largest message to buffer, 0 for no limit")
	fs.DurationVar(&cfg.ReadTimeout, "read-timeout", cfg.ReadTimeout, "time allowed to read one message")
	fs.StringVar(&level, "log-level", level, "trace, debug, info, warn or error")
	fs.BoolVar(&opts.pretty, "pretty", false, "human readable logs")
	fs.BoolVar(&opts.tokens, "tokens", false, "log the start-line tokens of every message")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	opts.level = lvl

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

func newLogger(opts *options, w io.Writer) zerolog.Logger {
	if opts.pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).Level(opts.level).With().Timestamp().Logger()
}

// printer writes one JSON document per message.
func printer(out io.Writer, log zerolog.Logger, tokens bool) listener.Handler {
	enc := json.NewEncoder(out)
	return func(raw []byte, msg http.Message) error {
		if tokens {
			log.Info().Interface("tokens", http.Tokenize(string(raw))).Msg("start line")
		}
		return errors.Wrap(enc.Encode(msg), "write message")
	}
}

func main() {
	opts, err := parseOptions(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "httpdump: %v\n", err)
		os.Exit(2)
	}

	log := newLogger(opts, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := listener.New(opts.listener, log, printer(os.Stdout, log, opts.tokens))
	if err := srv.ListenAndServe(ctx); err != nil {
		log.Error().Err(err).Msg("listener failed")
		stop()
		os.Exit(1)
	}
}
