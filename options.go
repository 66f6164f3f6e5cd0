package fldigi

import (
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultHost is the address fldigi listens on by default.
	DefaultHost = "127.0.0.1"
	// DefaultPort is fldigi's default XML-RPC port.
	DefaultPort = 7362
	// DefaultTimeout bounds each remote call.
	DefaultTimeout = 5 * time.Second
)

type Options struct {
	// Host and Port of the fldigi XML-RPC server.
	Host string
	Port int

	// Timeout for individual remote calls.
	Timeout time.Duration

	// Logger receives debug-level dispatch tracing. Defaults to a no-op
	// logger.
	Logger zerolog.Logger

	// Transport overrides the default XML-RPC transport. Host, Port and
	// Timeout are ignored when set.
	Transport Transport
}

type Option func(*Options) error

func WithHost(host string) Option {
	return func(opts *Options) error {
		if host == "" {
			return ErrNoHost
		}
		opts.Host = host
		return nil
	}
}

func WithPort(port int) Option {
	return func(opts *Options) error {
		if port < 1 || port > 65535 {
			return ErrInvalidPort
		}
		opts.Port = port
		return nil
	}
}

func WithTimeout(d time.Duration) Option {
	return func(opts *Options) error {
		opts.Timeout = d
		return nil
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(opts *Options) error {
		opts.Logger = logger
		return nil
	}
}

func WithTransport(t Transport) Option {
	return func(opts *Options) error {
		opts.Transport = t
		return nil
	}
}
