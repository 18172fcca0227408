package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/utils"
	"github.com/MKhiriev/go-identity/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds a REST [ServerAdapter] for the server at
// cfg.HTTPAddress. A bare "host:port" is treated as http.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

// normalizeBaseURL accepts "host:port" or an http(s) URL and returns it
// without a trailing slash.
func normalizeBaseURL(raw string) (string, error) {
	addr := strings.TrimSpace(raw)
	if addr == "" {
		return "", errors.New("address is empty")
	}
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}

	u, err := url.Parse(addr)
	switch {
	case err != nil:
		return "", err
	case u.Scheme != "http" && u.Scheme != "https":
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	case u.Host == "":
		return "", fmt.Errorf("no host in %q", raw)
	}

	u.Path = strings.TrimRight(u.Path, "/")
	return u.String(), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Info(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo
	resp, err := h.client.R().SetContext(ctx).Get("/api")
	if err != nil {
		return info, fmt.Errorf("info request: %w", err)
	}
	return info, decodeResponse(resp, &info)
}

// Register implements [ServerAdapter]. It posts to /api/user/register.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	var user models.User
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		Post("/api/user/register")
	if err != nil {
		return user, fmt.Errorf("register request: %w", err)
	}
	return user, decodeResponse(resp, &user)
}

// Login implements [ServerAdapter]. The token is read from the JSON body and
// the Authorization response header is ignored.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.IssuedToken, error) {
	var token models.IssuedToken
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.Credentials{Username: credentials.Username, Password: credentials.Password}).
		Post("/api/user/login")
	if err != nil {
		return token, fmt.Errorf("login request: %w", err)
	}
	if err = decodeResponse(resp, &token); err != nil {
		return models.IssuedToken{}, err
	}

	h.SetToken(token.Token)
	h.logger.Debug().Str("username", credentials.Username).Int64("exp", token.Expire).Msg("logged in")
	return token, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.User, error) {
	var user models.User
	resp, err := h.authedRequest(ctx).Get("/api/user/me")
	if err != nil {
		return user, fmt.Errorf("me request: %w", err)
	}
	return user, decodeResponse(resp, &user)
}

func (h *httpServerAdapter) ListUsers(ctx context.Context, limit uint64) ([]models.User, error) {
	req := h.authedRequest(ctx)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(limit, 10))
	}

	resp, err := req.Get("/api/user/list")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}

	var users []models.User
	if err = decodeResponse(resp, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", utils.BearerHeader(token))
	}
	return req
}

func decodeResponse(resp *resty.Response, out any) error {
	if err := mapHTTPError(resp); err != nil {
		return err
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return nil
}
