package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"blog-service/internal/client/store"
	"blog-service/internal/logger"
	"blog-service/internal/model"
)

const defaultTimeout = 15 * time.Second

const MsgNoToken = "No token found"

var ErrRequestInFlight = errors.New("request already in flight")

// Error is a failed call. Message is the server's message when it sent one.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// Client talks to the blog HTTP API. Auth and post fetches are dispatched into
// the store; at most one such request per slice runs at a time.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      *store.Store
	log        *logger.Logger

	authBusy atomic.Bool
	postBusy atomic.Bool
}

func NewClient(baseURL string, httpClient *http.Client, st *store.Store, log *logger.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		store:      st,
		log:        log,
	}
}

func (c *Client) Store() *store.Store {
	return c.store
}

type envelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	User    *model.User           `json:"user"`
	Token   string                `json:"token"`
	Post    *model.PostDetailed   `json:"post"`
	Posts   []*model.PostDetailed `json:"posts"`
}

type request struct {
	method string
	path   string
	body   any
	auth   bool
}

func (c *Client) do(ctx context.Context, req request) (*envelope, error) {
	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.auth {
		token := c.store.GetState().Auth.Token
		if token == "" {
			return nil, &Error{StatusCode: http.StatusUnauthorized, Message: MsgNoToken}
		}
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Debug("Request failed",
			slog.String("method", req.method),
			slog.String("path", req.path),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%s %s: %w", req.method, req.path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("Request completed",
		slog.String("method", req.method),
		slog.String("path", req.path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)))

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return nil, &Error{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &Error{StatusCode: resp.StatusCode, Message: msg}
	}
	return &env, nil
}

// begin marks the slice busy and reports whether the caller may proceed.
func begin(flag *atomic.Bool) bool {
	return flag.CompareAndSwap(false, true)
}
