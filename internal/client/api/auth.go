package api

import (
	"context"
	"net/http"
	"net/url"

	"blog-service/internal/client/store"
	"blog-service/internal/model"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, email, password string) error {
	if !begin(&c.authBusy) {
		return ErrRequestInFlight
	}
	defer c.authBusy.Store(false)

	c.store.Dispatch(store.Pending(store.LoginPending))

	env, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/login",
		body:   loginRequest{Email: email, Password: password},
	})
	if err != nil {
		c.store.Dispatch(store.Rejected(store.LoginRejected, err))
		return err
	}

	c.store.Dispatch(store.Fulfilled(store.LoginFulfilled, store.AuthPayload{User: env.User, Token: env.Token}))
	return nil
}

func (c *Client) Signup(ctx context.Context, dto *model.RegisterUserDTO) error {
	if !begin(&c.authBusy) {
		return ErrRequestInFlight
	}
	defer c.authBusy.Store(false)

	c.store.Dispatch(store.Pending(store.SignupPending))

	env, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/auth/signup",
		body:   dto,
	})
	if err != nil {
		c.store.Dispatch(store.Rejected(store.SignupRejected, err))
		return err
	}

	c.store.Dispatch(store.Fulfilled(store.SignupFulfilled, store.AuthPayload{User: env.User, Token: env.Token}))
	return nil
}

// GetCurrentUser loads the user behind the stored token. Any failure,
// including a missing token, drops the token so the caller has to log in again.
func (c *Client) GetCurrentUser(ctx context.Context) error {
	if !begin(&c.authBusy) {
		return ErrRequestInFlight
	}
	defer c.authBusy.Store(false)

	c.store.Dispatch(store.Pending(store.GetCurrentUserPending))

	env, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/auth/me",
		auth:   true,
	})
	if err != nil {
		c.store.Dispatch(store.Rejected(store.GetCurrentUserRejected, err))
		return err
	}

	c.store.Dispatch(store.Fulfilled(store.GetCurrentUserFulfilled, env.User))
	return nil
}

func (c *Client) Logout() {
	c.store.Dispatch(store.Action{Type: store.Logout})
}

// EnsureUser resolves the auth guard: it loads the current user when only a
// token is known and fails when there is no token at all.
func (c *Client) EnsureUser(ctx context.Context) error {
	switch c.store.RequireAuth() {
	case store.GuardAllow:
		return nil
	case store.GuardWait:
		return ErrRequestInFlight
	case store.GuardFetchUser:
		return c.GetCurrentUser(ctx)
	default:
		return &Error{StatusCode: http.StatusUnauthorized, Message: MsgNoToken}
	}
}

func (c *Client) GetUser(ctx context.Context, id string) (*model.User, error) {
	env, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/users/" + url.PathEscape(id),
	})
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

// UpdateProfile saves the profile and merges the result into the current user.
func (c *Client) UpdateProfile(ctx context.Context, dto *model.UpdateProfileDTO) (*model.User, error) {
	env, err := c.do(ctx, request{
		method: http.MethodPut,
		path:   "/users/profile",
		body:   dto,
		auth:   true,
	})
	if err != nil {
		return nil, err
	}

	if env.User != nil {
		c.store.Dispatch(store.Action{Type: store.UpdateUser, Payload: store.PatchFromUser(env.User)})
	}
	return env.User, nil
}
