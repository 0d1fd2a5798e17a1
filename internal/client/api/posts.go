package api

import (
	"context"
	"net/http"
	"net/url"

	"blog-service/internal/client/store"
	"blog-service/internal/model"
)

// FetchPosts loads the published feed into the post slice.
func (c *Client) FetchPosts(ctx context.Context) error {
	if !begin(&c.postBusy) {
		return ErrRequestInFlight
	}
	defer c.postBusy.Store(false)

	c.store.Dispatch(store.Pending(store.FetchPostsPending))

	env, err := c.do(ctx, request{method: http.MethodGet, path: "/posts"})
	if err != nil {
		c.store.Dispatch(store.Rejected(store.FetchPostsRejected, err))
		return err
	}

	c.store.Dispatch(store.Fulfilled(store.FetchPostsFulfilled, env.Posts))
	return nil
}

// FetchPost loads a single post into the post slice. The server counts this
// as a view.
func (c *Client) FetchPost(ctx context.Context, id string) error {
	if !begin(&c.postBusy) {
		return ErrRequestInFlight
	}
	defer c.postBusy.Store(false)

	c.store.Dispatch(store.Pending(store.FetchPostPending))

	env, err := c.do(ctx, request{method: http.MethodGet, path: "/posts/" + url.PathEscape(id)})
	if err != nil {
		c.store.Dispatch(store.Rejected(store.FetchPostRejected, err))
		return err
	}

	c.store.Dispatch(store.Fulfilled(store.FetchPostFulfilled, env.Post))
	return nil
}

func (c *Client) ListMyPosts(ctx context.Context) ([]*model.PostDetailed, error) {
	env, err := c.do(ctx, request{method: http.MethodGet, path: "/posts/mine", auth: true})
	if err != nil {
		return nil, err
	}
	return env.Posts, nil
}

func (c *Client) ListUserPosts(ctx context.Context, userID string) ([]*model.PostDetailed, error) {
	env, err := c.do(ctx, request{method: http.MethodGet, path: "/posts/by-user/" + url.PathEscape(userID)})
	if err != nil {
		return nil, err
	}
	return env.Posts, nil
}

// CreatePost, UpdatePost and DeletePost leave the post slice alone; callers
// re-fetch what they want to show.
func (c *Client) CreatePost(ctx context.Context, dto *model.UpdatePostDTO) (*model.PostDetailed, error) {
	env, err := c.do(ctx, request{method: http.MethodPost, path: "/posts", body: dto, auth: true})
	if err != nil {
		return nil, err
	}
	return env.Post, nil
}

func (c *Client) UpdatePost(ctx context.Context, id string, dto *model.UpdatePostDTO) (*model.PostDetailed, error) {
	env, err := c.do(ctx, request{
		method: http.MethodPut,
		path:   "/posts/" + url.PathEscape(id),
		body:   dto,
		auth:   true,
	})
	if err != nil {
		return nil, err
	}
	return env.Post, nil
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	_, err := c.do(ctx, request{method: http.MethodDelete, path: "/posts/" + url.PathEscape(id), auth: true})
	return err
}
