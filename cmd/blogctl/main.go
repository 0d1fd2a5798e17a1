package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "blogctl",
		Usage: "command line client for the blog API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Value:   "http://localhost:8080",
				Usage:   "blog API base URL",
				EnvVars: []string{"BLOG_SERVER"},
			},
			&cli.StringFlag{
				Name:    "token-file",
				Usage:   "where the auth token is kept (default ~/.blogctl/token)",
				EnvVars: []string{"BLOG_TOKEN_FILE"},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log requests and state changes to stderr",
			},
		},
		Commands: []*cli.Command{
			signupCommand(),
			loginCommand(),
			logoutCommand(),
			whoamiCommand(),
			profileCommand(),
			userCommand(),
			postsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
