package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"blog-service/internal/client/api"
	"blog-service/internal/client/storage"
	"blog-service/internal/client/store"
	"blog-service/internal/logger"
	"blog-service/internal/model"
)

func newClient(c *cli.Context) *api.Client {
	env := "prod"
	if c.Bool("verbose") {
		env = "dev"
	}
	log := logger.NewWithWriter(env, os.Stderr)

	path := c.String("token-file")
	if path == "" {
		path = storage.DefaultTokenPath()
	}

	st := store.New(storage.NewFileTokenStorage(path), log)
	return api.NewClient(c.String("server"), nil, st, log)
}

// protected runs action only after the auth guard lets it through.
func protected(action func(c *cli.Context, client *api.Client) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		client := newClient(c)
		if err := client.EnsureUser(c.Context); err != nil {
			var apiErr *api.Error
			if errors.As(err, &apiErr) {
				return fmt.Errorf("%s, run `blogctl login` first", apiErr.Message)
			}
			return err
		}
		return action(c, client)
	}
}

func printJSON(c *cli.Context, v any) error {
	enc := json.NewEncoder(c.App.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func requireArg(c *cli.Context, name string) (string, error) {
	arg := c.Args().First()
	if arg == "" {
		return "", fmt.Errorf("missing %s argument", name)
	}
	return arg, nil
}

func signupCommand() *cli.Command {
	return &cli.Command{
		Name:  "signup",
		Usage: "create an account and log in",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "username", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
			&cli.StringFlag{Name: "name", Required: true},
		},
		Action: func(c *cli.Context) error {
			client := newClient(c)
			err := client.Signup(c.Context, &model.RegisterUserDTO{
				Email:    c.String("email"),
				Username: c.String("username"),
				Password: c.String("password"),
				Name:     c.String("name"),
			})
			if err != nil {
				return errors.New(client.Store().GetState().Auth.Error)
			}
			return printJSON(c, client.Store().GetState().Auth.User)
		},
	}
}

func loginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "log in and remember the token",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true},
			&cli.StringFlag{Name: "password", Required: true},
		},
		Action: func(c *cli.Context) error {
			client := newClient(c)
			if err := client.Login(c.Context, c.String("email"), c.String("password")); err != nil {
				return errors.New(client.Store().GetState().Auth.Error)
			}
			return printJSON(c, client.Store().GetState().Auth.User)
		},
	}
}

func logoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "forget the stored token",
		Action: func(c *cli.Context) error {
			newClient(c).Logout()
			return nil
		},
	}
}

func whoamiCommand() *cli.Command {
	return &cli.Command{
		Name:  "whoami",
		Usage: "show the logged in user",
		Action: protected(func(c *cli.Context, client *api.Client) error {
			return printJSON(c, client.Store().GetState().Auth.User)
		}),
	}
}

func profileCommand() *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "update your name, bio and avatar",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name"},
			&cli.StringFlag{Name: "bio"},
			&cli.StringFlag{Name: "avatar"},
		},
		Action: protected(func(c *cli.Context, client *api.Client) error {
			current := client.Store().GetState().Auth.User
			dto := &model.UpdateProfileDTO{
				Name:   current.Name,
				Bio:    current.Bio,
				Avatar: current.Avatar,
			}
			if c.IsSet("name") {
				dto.Name = c.String("name")
			}
			if c.IsSet("bio") {
				dto.Bio = c.String("bio")
			}
			if c.IsSet("avatar") {
				dto.Avatar = c.String("avatar")
			}

			if _, err := client.UpdateProfile(c.Context, dto); err != nil {
				return err
			}
			return printJSON(c, client.Store().GetState().Auth.User)
		}),
	}
}

func userCommand() *cli.Command {
	return &cli.Command{
		Name:      "user",
		Usage:     "show a user's public profile",
		ArgsUsage: "<user-id>",
		Action: func(c *cli.Context) error {
			id, err := requireArg(c, "user-id")
			if err != nil {
				return err
			}
			user, err := newClient(c).GetUser(c.Context, id)
			if err != nil {
				return err
			}
			return printJSON(c, user)
		},
	}
}

func postFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "title", Required: true},
		&cli.StringFlag{Name: "content", Required: true},
		&cli.StringFlag{Name: "category"},
	}
}

func postsCommand() *cli.Command {
	return &cli.Command{
		Name:  "posts",
		Usage: "browse and manage posts",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list published posts, newest first",
				Action: func(c *cli.Context) error {
					client := newClient(c)
					if err := client.FetchPosts(c.Context); err != nil {
						return errors.New(client.Store().GetState().Post.Error)
					}
					return printJSON(c, client.Store().GetState().Post.Posts)
				},
			},
			{
				Name:      "get",
				Usage:     "show a post and count a view",
				ArgsUsage: "<post-id>",
				Action: func(c *cli.Context) error {
					id, err := requireArg(c, "post-id")
					if err != nil {
						return err
					}
					client := newClient(c)
					if err := client.FetchPost(c.Context, id); err != nil {
						return errors.New(client.Store().GetState().Post.Error)
					}
					return printJSON(c, client.Store().GetState().Post.CurrentPost)
				},
			},
			{
				Name:  "mine",
				Usage: "list your posts including drafts",
				Action: protected(func(c *cli.Context, client *api.Client) error {
					posts, err := client.ListMyPosts(c.Context)
					if err != nil {
						return err
					}
					return printJSON(c, posts)
				}),
			},
			{
				Name:      "by-user",
				Usage:     "list a user's published posts",
				ArgsUsage: "<user-id>",
				Action: func(c *cli.Context) error {
					id, err := requireArg(c, "user-id")
					if err != nil {
						return err
					}
					posts, err := newClient(c).ListUserPosts(c.Context, id)
					if err != nil {
						return err
					}
					return printJSON(c, posts)
				},
			},
			{
				Name:  "create",
				Usage: "publish a new post",
				Flags: postFlags(),
				Action: protected(func(c *cli.Context, client *api.Client) error {
					post, err := client.CreatePost(c.Context, &model.UpdatePostDTO{
						Title:    c.String("title"),
						Content:  c.String("content"),
						Category: c.String("category"),
					})
					if err != nil {
						return err
					}
					return printJSON(c, post)
				}),
			},
			{
				Name:      "update",
				Usage:     "replace the title, content and category of your post",
				ArgsUsage: "<post-id>",
				Flags:     postFlags(),
				Action: protected(func(c *cli.Context, client *api.Client) error {
					id, err := requireArg(c, "post-id")
					if err != nil {
						return err
					}
					post, err := client.UpdatePost(c.Context, id, &model.UpdatePostDTO{
						Title:    c.String("title"),
						Content:  c.String("content"),
						Category: c.String("category"),
					})
					if err != nil {
						return err
					}
					return printJSON(c, post)
				}),
			},
			{
				Name:      "delete",
				Usage:     "delete your post",
				ArgsUsage: "<post-id>",
				Action: protected(func(c *cli.Context, client *api.Client) error {
					id, err := requireArg(c, "post-id")
					if err != nil {
						return err
					}
					if err := client.DeletePost(c.Context, id); err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "deleted %s\n", id)
					return nil
				}),
			},
		},
	}
}
