// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/l3montree-dev/issuetracker/accesscontrol"
	"github.com/l3montree-dev/issuetracker/cmd/issuetracker/api"
	"github.com/l3montree-dev/issuetracker/controllers"
	"github.com/l3montree-dev/issuetracker/database"
	"github.com/l3montree-dev/issuetracker/database/repositories"
	"github.com/l3montree-dev/issuetracker/monitoring"
	"github.com/l3montree-dev/issuetracker/router"
	"github.com/l3montree-dev/issuetracker/services"
	"github.com/l3montree-dev/issuetracker/shared"
	"go.uber.org/fx"

	_ "github.com/lib/pq"
)

var release string // Will be filled at build time

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	shutdownTracing, err := monitoring.InitTracing(context.Background())
	if err != nil {
		slog.Error("could not initialize tracing", "err", err)
		os.Exit(1)
	}

	db, closeDB, err := shared.DatabaseFactory()
	if err != nil {
		slog.Error("failed to setup database connection", "err", err)
		os.Exit(1)
	}

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "err", err)
			closeDB()
			os.Exit(1)
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		fx.Provide(api.NewServer),
		// registered first so it runs after the server has shut down
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{
				OnStop: func(ctx context.Context) error {
					closeDB()
					return shutdownTracing(ctx)
				},
			})
		}),
		repositories.Module,
		services.Module,
		accesscontrol.Module,
		controllers.ControllerModule,
		router.RouterModule,
	).Run()
}

func initSentry() {
	environment := shared.GetEnvOrDefault("ENVIRONMENT", "dev")

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              os.Getenv("ERROR_TRACKING_DSN"),
		Environment:      environment,
		Release:          release,
		Debug:            environment == "dev",
		AttachStacktrace: true,
		SendDefaultPII:   false,
	})
	if err != nil {
		slog.Error("failed to init sentry", "err", err)
	}
}
