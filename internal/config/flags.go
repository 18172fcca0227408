package config

import (
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
)

// NetAddress is a flag.Value accepting "host:port". An empty host binds
// all interfaces; a non-empty host must be "localhost" or an IP literal.
type NetAddress struct {
	Host string
	Port int
}

// String returns host:port, or "" for the zero address.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set implements flag.Value.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidNetAddress, s, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w %q", ErrInvalidPort, rawPort)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w %q", ErrInvalidHost, host)
	}

	a.Host, a.Port = host, port
	return nil
}

// parseFlags reads command line flags into a fresh StructuredConfig.
// Whatever follows the flags ends up in Args (the subcommand for the
// client and admin binaries).
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var httpAddr, grpcAddr NetAddress

	fs := flag.NewFlagSet("go-identity", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&httpAddr, "a", "HTTP listen address, host:port")
	fs.Var(&grpcAddr, "grpc-address", "gRPC listen address, host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "database DSN (postgres:// or sqlite://)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "path to JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "path to JSON config file")
	fs.StringVar(&cfg.App.PasswordHashKey, "password-hash-key", "", "HMAC key mixed into password hashes")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "HS256 signing key for access tokens")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "iss claim of issued tokens")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "access token lifetime")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "per-request timeout")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "server", "", "identity server base URL for the client")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = httpAddr.String()
	cfg.Server.GRPCAddress = grpcAddr.String()
	cfg.Args = fs.Args()
	return cfg, nil
}
