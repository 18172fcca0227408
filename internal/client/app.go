package client

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/go-identity/internal/adapter"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/tui"
)

const usage = `usage: identity-client <command>

commands:
  info            show the server version
  version         print build information
  register        create an account
  login           log in and print an access token
  me              show the account of $IDENTITY_TOKEN
  list [limit]    list accounts (requires $IDENTITY_TOKEN)`

type App struct {
	adapter   adapter.ServerAdapter
	prompt    CredentialsPrompt
	clipboard Clipboard
	out       io.Writer

	logger *logger.Logger
}

// NewApp builds the client. token, when set, is attached to authenticated
// requests; clipboard may be nil.
func NewApp(serverAdapter adapter.ServerAdapter, prompt CredentialsPrompt, clipboard Clipboard, token string, out io.Writer, logger *logger.Logger) *App {
	if token != "" {
		serverAdapter.SetToken(token)
	}
	return &App{
		adapter:   serverAdapter,
		prompt:    prompt,
		clipboard: clipboard,
		out:       out,
		logger:    logger,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return nil
	}

	switch args[0] {
	case "info":
		return a.info(ctx)
	case "register":
		return a.register(ctx)
	case "login":
		return a.login(ctx)
	case "me":
		return a.me(ctx)
	case "list":
		return a.list(ctx, args[1:])
	case "help", "-h", "--help":
		fmt.Fprintln(a.out, usage)
		return nil
	default:
		return fmt.Errorf("%w: %q\n%s", ErrUnknownCommand, args[0], usage)
	}
}

func (a *App) info(ctx context.Context) error {
	info, err := a.adapter.Info(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s (version %s)\n", info.Message, info.Version)
	return nil
}

func (a *App) register(ctx context.Context) error {
	credentials, err := a.prompt("Create account", true)
	if err != nil {
		return err
	}

	user, err := a.adapter.Register(ctx, credentials)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	fmt.Fprintln(a.out, tui.RenderUser(user))
	return nil
}

func (a *App) login(ctx context.Context) error {
	credentials, err := a.prompt("Log in", false)
	if err != nil {
		return err
	}

	token, err := a.adapter.Login(ctx, credentials)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Fprintf(a.out, "token expires at %s\n", time.Unix(token.Expire, 0).UTC().Format(time.RFC3339))
	fmt.Fprintln(a.out, token.Token)

	if a.clipboard != nil {
		if err = a.clipboard(token.Token); err != nil {
			a.logger.Warn().Err(err).Msg("token was not copied to the clipboard")
		} else {
			fmt.Fprintln(a.out, "token copied to the clipboard")
		}
	}
	return nil
}

func (a *App) me(ctx context.Context) error {
	user, err := a.adapter.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, tui.RenderUser(user))
	return nil
}

func (a *App) list(ctx context.Context, args []string) error {
	var limit uint64
	if len(args) > 0 {
		parsed, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLimit, args[0])
		}
		limit = parsed
	}

	users, err := a.adapter.ListUsers(ctx, limit)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, tui.RenderUsers(users))
	return nil
}
