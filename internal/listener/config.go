package listener

import (
	"time"

	"github.com/pkg/errors"
)

// Config holds the listener settings.
type Config struct {
	// Addr is the TCP address to listen on.
	Addr string
	// ChunkSize is the size of a single socket read. A read that returns fewer
	// bytes ends the message.
	ChunkSize int
	// MaxMessageSize caps how many bytes are buffered for one message. Zero
	// disables the limit.
	MaxMessageSize int
	// ReadTimeout bounds the time spent reading one message. Zero disables it.
	ReadTimeout time.Duration
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Addr:           "127.0.0.1:8080",
		ChunkSize:      8,
		MaxMessageSize: 1 << 20, // 1mb is far more than any start line and header block needs
		ReadTimeout:    10 * time.Second,
	}
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	switch {
	case c.Addr == "":
		return errors.New("listener: empty address")
	case c.ChunkSize <= 0:
		return errors.Errorf("listener: chunk size must be positive, got %d", c.ChunkSize)
	case c.MaxMessageSize < 0:
		return errors.Errorf("listener: negative max message size %d", c.MaxMessageSize)
	case c.ReadTimeout < 0:
		return errors.Errorf("listener: negative read timeout %s", c.ReadTimeout)
	}
	return nil
}
