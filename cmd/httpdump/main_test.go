package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shapestone/shape-httpmsg/pkg/http"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestParseOptions_Defaults(t *testing.T) {
	opts, err := parseOptions(nil, env(nil))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", opts.listener.Addr)
	assert.Equal(t, 8, opts.listener.ChunkSize)
	assert.Equal(t, zerolog.InfoLevel, opts.level)
	assert.False(t, opts.pretty)
	assert.False(t, opts.tokens)
}

func TestParseOptions_EnvThenFlags(t *testing.T) {
	vars := map[string]string{
		"HTTPDUMP_ADDR":      "0.0.0.0:9000",
		"HTTPDUMP_CHUNK":     "64",
		"HTTPDUMP_LOG_LEVEL": "debug",
	}

	opts, err := parseOptions(nil, env(vars))
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", opts.listener.Addr)
	assert.Equal(t, 64, opts.listener.ChunkSize)
	assert.Equal(t, zerolog.DebugLevel, opts.level)

	opts, err = parseOptions([]string{"-chunk", "16", "-read-timeout", "1s", "-tokens", "-pretty"}, env(vars))
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", opts.listener.Addr)
	assert.Equal(t, 16, opts.listener.ChunkSize)
	assert.Equal(t, time.Second, opts.listener.ReadTimeout)
	assert.True(t, opts.tokens)
	assert.True(t, opts.pretty)
}

func TestParseOptions_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad env chunk", nil, map[string]string{"HTTPDUMP_CHUNK": "eight"}},
		{"zero chunk", []string{"-chunk", "0"}, nil},
		{"bad level", []string{"-log-level", "loud"}, nil},
		{"unknown flag", []string{"-verbose"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseOptions(tt.args, env(tt.env))
			assert.Error(t, err)
		})
	}
}

func TestPrinter(t *testing.T) {
	raw := []byte("GET /a HTTP/1.1\r\nHost: example.com\r\n\r\n")
	msg, err := http.Parse(raw)
	require.NoError(t, err)

	var out, logs bytes.Buffer
	handle := printer(&out, zerolog.New(&logs), true)
	require.NoError(t, handle(raw, msg))

	assert.JSONEq(t,
		`{"type":"request","method":"GET","resource":"/a","version":"HTTP/1.1","headers":{"Host":"example.com"}}`,
		out.String())
	assert.Contains(t, logs.String(), `"Kind":"Method","Value":"GET"`)
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&options{level: zerolog.WarnLevel}, &buf)
	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
