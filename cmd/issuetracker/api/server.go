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

package api

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/l3montree-dev/issuetracker/middlewares"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NewServer builds the echo instance and ties it to the fx lifecycle.
// Routes are registered by the routers before OnStart runs.
func NewServer(lc fx.Lifecycle) *echo.Echo {
	server := middlewares.Server()

	if os.Getenv("PPROF_ENABLED") == "true" {
		middlewares.AddProfileEndpoints(server)
	}

	addr := ":" + shared.GetEnvOrDefault("PORT", "8080")
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				slog.Info("starting server", "addr", addr)
				if err := server.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
					slog.Error("server stopped unexpectedly", "err", err)
					os.Exit(1)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			slog.Info("shutting down server")
			return server.Shutdown(ctx)
		},
	})

	return server
}
