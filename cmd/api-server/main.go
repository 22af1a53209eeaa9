package main

import (
	"LexNote/config"
	"LexNote/pkg/log"
	"LexNote/pkg/server"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	appProvider := InitServer(cfg)
	cliApp := &cli.App{
		Name: "api-server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "create-user",
				Usage: "create a login account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "username", Required: true},
					&cli.StringFlag{Name: "password", Required: true},
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "email"},
				},
				Action: func(ctx *cli.Context) error {
					auth := InitAuthService(cfg)
					id, err := auth.CreateUser(ctx.Context,
						ctx.String("username"),
						ctx.String("password"),
						ctx.String("name"),
						ctx.String("email"),
					)
					if err != nil {
						return err
					}
					log.L.Info("user created", zap.Int64("user_id", id))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
