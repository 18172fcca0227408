// Package admin implements the operator tool that creates and lists accounts
// directly against the store, bypassing the HTTP API.
package admin

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/internal/tui"
	"github.com/MKhiriev/go-identity/models"
)

const usage = `usage: identity-admin <command>

commands:
  create          create an enabled account (prompts for the details)
  list [limit]    list accounts`

type Admin struct {
	auth   service.AuthService
	users  service.UserService
	prompt Prompter
	out    io.Writer

	logger *logger.Logger
}

func New(services *service.Services, prompt Prompter, out io.Writer, logger *logger.Logger) *Admin {
	return &Admin{
		auth:   services.AuthService,
		users:  services.UserService,
		prompt: prompt,
		out:    out,
		logger: logger,
	}
}

func (a *Admin) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return nil
	}

	switch args[0] {
	case "create":
		return a.create(ctx)
	case "list":
		return a.list(ctx, args[1:])
	default:
		return fmt.Errorf("%w: %q\n%s", ErrUnknownCommand, args[0], usage)
	}
}

func (a *Admin) create(ctx context.Context) error {
	username, err := a.prompt.ReadLine("Username")
	if err != nil {
		return err
	}
	email, err := a.prompt.ReadLine("Email")
	if err != nil {
		return err
	}
	password, err := a.prompt.ReadPassword("Password")
	if err != nil {
		return err
	}
	confirmation, err := a.prompt.ReadPassword("Repeat password")
	if err != nil {
		return err
	}
	if password != confirmation {
		return ErrPasswordMismatch
	}

	user, err := a.auth.RegisterUser(ctx, models.Credentials{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}

	a.logger.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user created")
	fmt.Fprintf(a.out, "user %s created with id %d\n", user.Username, user.ID)
	return nil
}

func (a *Admin) list(ctx context.Context, args []string) error {
	var limit uint64
	if len(args) > 0 {
		parsed, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLimit, args[0])
		}
		limit = parsed
	}

	users, err := a.users.ListUsers(ctx, limit)
	if err != nil {
		return fmt.Errorf("listing users: %w", err)
	}

	fmt.Fprintln(a.out, tui.RenderUsers(users))
	return nil
}
