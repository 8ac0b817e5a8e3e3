package main

import (
	"context"
	"os"

	"finbook/internal/cli"
	"finbook/internal/core"
	applog "finbook/internal/log"
	"finbook/internal/repository"
	"finbook/internal/services"
)

func main() {
	ctx := context.Background()
	cli.LoadEnvFile()

	cfg := cli.LoadAndValidateConfig(cli.SetupLogger("info"))
	logger := cli.SetupLogger(cfg.LogLevel)

	store := cli.OpenStore(logger, cfg)
	defer store.Close()

	users := repository.NewUsers()
	auth := services.NewAuthService(users, store)
	auth.Hydrate(ctx)

	// First run: seed a couple of accounts so login is possible.
	if users.Len() == 0 {
		users.Add(core.NewUser("user1", "password1"))
		users.Add(core.NewUser("user2", "password2"))
		logger.Info("Seeded default users", applog.FieldUsers, users.Len())
	}

	var publisher services.AlertPublisher
	if client := cli.OpenAlertPublisher(logger, cfg); client != nil {
		publisher = client
		defer client.Close()
	}

	ledger := services.NewLedgerService(publisher)

	app := newApp(cfg, auth, ledger, os.Stdin, os.Stdout)
	app.Run(ctx)
}
