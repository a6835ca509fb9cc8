package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"Storefront/config"
	"Storefront/pkg/log"
	"Storefront/pkg/server"
	"Storefront/pkg/snowflake"
	"Storefront/service"
)

func configPath(ctx *cli.Context) string {
	if p := ctx.String("config"); p != "" {
		return p
	}
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

// withApp builds the application and opens its storage around action.
func withApp(action func(ctx *cli.Context, app *server.AppProvider) error) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		cfg := config.New(configPath(ctx))
		log.SetDebug(cfg.Debug())
		if err := snowflake.SetNode(cfg.Local.Node); err != nil {
			return fmt.Errorf("snowflake node %d: %w", cfg.Local.Node, err)
		}
		loc, err := cfg.App.Location()
		if err != nil {
			return fmt.Errorf("timezone %q: %w", cfg.App.Timezone, err)
		}
		app, err := InitServer(cfg)
		if err != nil {
			return err
		}
		app.Data.Location = loc
		return action(ctx, app)
	}
}

// withStorage is withApp for one-shot commands that need the stores open.
func withStorage(action func(ctx *cli.Context, app *server.AppProvider) error) cli.ActionFunc {
	return withApp(func(ctx *cli.Context, app *server.AppProvider) error {
		if err := app.Start(ctx.Context); err != nil {
			return err
		}
		defer app.Stop()
		return action(ctx, app)
	})
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	cliApp := &cli.App{
		Name:  "storefront",
		Usage: "local-first storefront data service",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "config file, defaults to configs/config.$APP_ENV.yaml", EnvVars: []string{"STOREFRONT_CONFIG"}},
		},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "start http server",
				Action: withApp(server.Run),
			},
			{
				Name:   "db-migrate",
				Usage:  "create or update the remote schema",
				Action: withApp(dbMigrate),
			},
			{
				Name:   "migrate",
				Usage:  "copy the local store into the remote database and switch to it",
				Action: withStorage(migrate),
			},
			{
				Name:   "mode",
				Usage:  "print the persistence mode",
				Action: withStorage(mode),
			},
			{
				Name:   "backup",
				Usage:  "store a full export in the backup slot",
				Action: withStorage(backup),
			},
			{
				Name:   "restore",
				Usage:  "import the stored backup",
				Action: withStorage(restore),
			},
			{
				Name:  "export",
				Usage: "write a full export as JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file, - for stdout", Value: "-"},
				},
				Action: withStorage(export),
			},
			{
				Name:  "import",
				Usage: "import an export document",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "in", Aliases: []string{"i"}, Usage: "input file", Required: true},
				},
				Action: withStorage(importData),
			},
			{
				Name:      "hash-password",
				Usage:     "print the bcrypt hash to use as jwt.admin_password",
				ArgsUsage: "<password>",
				Action:    hashPassword,
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("command failed", zap.Error(err))
	}
}

func dbMigrate(ctx *cli.Context, app *server.AppProvider) error {
	if err := app.Remote.AutoMigrate(ctx.Context); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.L.Info("remote schema up to date")
	return nil
}

func migrate(ctx *cli.Context, app *server.AppProvider) error {
	if err := dbMigrate(ctx, app); err != nil {
		return err
	}
	err := app.Migrator.MigrateLocalToRemote(ctx.Context, func(pct float64, msg string) {
		log.L.Info("migration progress", zap.Float64("percent", pct), zap.String("step", msg))
	})
	if errors.Is(err, service.ErrAlreadyMigrated) {
		log.L.Info("already migrated, remote database is authoritative")
		return nil
	}
	return err
}

func mode(ctx *cli.Context, app *server.AppProvider) error {
	_, err := fmt.Fprintln(ctx.App.Writer, app.Mode.Mode())
	return err
}

func backup(ctx *cli.Context, app *server.AppProvider) error {
	at, err := app.Data.BackupData(ctx.Context)
	if err != nil {
		return err
	}
	log.L.Info("backup stored", zap.Time("at", at))
	return nil
}

func restore(ctx *cli.Context, app *server.AppProvider) error {
	collections, err := app.Data.RestoreFromBackup(ctx.Context)
	if err != nil {
		return err
	}
	log.L.Info("backup restored", zap.Strings("collections", collections))
	return nil
}

func export(ctx *cli.Context, app *server.AppProvider) error {
	payload, err := app.Data.ExportJSON(ctx.Context)
	if err != nil {
		return err
	}
	out := ctx.String("out")
	if out == "-" {
		_, err = ctx.App.Writer.Write(append(payload, '\n'))
		return err
	}
	if err := os.WriteFile(out, payload, 0o644); err != nil {
		return err
	}
	log.L.Info("export written", zap.String("file", out), zap.Int("bytes", len(payload)))
	return nil
}

func importData(ctx *cli.Context, app *server.AppProvider) error {
	payload, err := os.ReadFile(ctx.String("in"))
	if err != nil {
		return err
	}
	collections, err := app.Data.ImportData(ctx.Context, payload)
	if err != nil {
		return err
	}
	log.L.Info("import done", zap.Strings("collections", collections))
	return nil
}

func hashPassword(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.Exit("usage: storefront hash-password <password>", 2)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(ctx.Args().First()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, string(hash))
	return err
}
