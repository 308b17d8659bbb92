package cmd

import (
	"context"
	"os"

	"github.com/aureliajewels/jewelry-cms/app/configs"
	"github.com/aureliajewels/jewelry-cms/app/db/seeders"
	"github.com/aureliajewels/jewelry-cms/app/models/migrations"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func RunCli() {
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Run database migration",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					logrus.Info("Migration complete")
					return nil
				},
			},
			{
				Name:  "seed",
				Usage: "Seed the database with a superadmin, categories and demo content",
				Action: func(ctx context.Context, c *cli.Command) error {
					db, err := configs.OpenConnection()
					if err != nil {
						return err
					}
					if err := migrations.AutoMigrate(db); err != nil {
						return err
					}
					if err := seeders.Seed(db); err != nil {
						return err
					}
					logrus.Info("Seeding complete")
					return nil
				},
			},
			{
				Name:  "generate-keys",
				Usage: "Generate new session and CSRF keys for .env",
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := configs.GenerateAndPrintSessionKeys(); err != nil {
						return err
					}
					logrus.Info("Key generation complete. Copy the keys to your .env file.")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logrus.Fatal(err)
	}
}
