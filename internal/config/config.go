package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
)

const (
	DefaultListenHost = "127.0.0.1"
	DefaultListenPort = 7070

	EnvListenHost = "GODB_LISTEN_HOST"
	EnvListenPort = "GODB_LISTEN_PORT"
	EnvLogLevel   = "GODB_LOG_LEVEL"
)

// Config holds the server process settings.
type Config struct {
	ListenHost string
	ListenPort int
	LogLevel   slog.Level
}

// Address returns host:port for net.Listen.
func (c Config) Address() string {
	return net.JoinHostPort(c.ListenHost, strconv.Itoa(c.ListenPort))
}

// Load builds a Config from defaults, then environment, then flags.
// getenv is os.Getenv outside of tests.
func Load(args []string, getenv func(string) string) (Config, error) {
	host := DefaultListenHost
	port := strconv.Itoa(DefaultListenPort)
	level := "info"

	if v := getenv(EnvListenHost); v != "" {
		host = v
	}
	if v := getenv(EnvListenPort); v != "" {
		port = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		level = v
	}

	fs := flag.NewFlagSet("godb-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&host, "host", host, "address to listen on")
	fs.StringVar(&port, "port", port, "TCP port to listen on")
	fs.StringVar(&level, "log-level", level, "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	cfg := Config{ListenHost: host}

	p, err := strconv.Atoi(port)
	if err != nil || p < 1 || p > 65535 {
		return Config{}, fmt.Errorf("invalid listen port %q", port)
	}
	cfg.ListenPort = p

	if err := cfg.LogLevel.UnmarshalText([]byte(level)); err != nil {
		return Config{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return cfg, nil
}
