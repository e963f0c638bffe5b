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

package router

import (
	"os"
	"runtime"
	"time"

	"github.com/l3montree-dev/issuetracker/controllers"
	"github.com/l3montree-dev/issuetracker/database"
	"github.com/l3montree-dev/issuetracker/middlewares"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var startedAt = time.Now()

type APIV1Router struct {
	*echo.Group
}

func health(db shared.DB) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "failed to get database instance",
			})
		}

		if err := sqlDB.PingContext(ctx.Request().Context()); err != nil {
			return ctx.JSON(503, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}

		return ctx.JSON(200, map[string]string{
			"status": "healthy",
		})
	}
}

func info(db shared.DB) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		resp := InfoResponse{
			Runtime: RuntimeInfo{
				GoVersion:     runtime.Version(),
				NumGoroutines: runtime.NumGoroutine(),
				Mem: MemStats{
					Alloc:      mem.Alloc,
					TotalAlloc: mem.TotalAlloc,
					Sys:        mem.Sys,
					HeapAlloc:  mem.HeapAlloc,
				},
			},
			Process: ProcessInfo{
				PID:           os.Getpid(),
				UptimeSeconds: int(time.Since(startedAt).Seconds()),
			},
		}
		if host, _ := os.Hostname(); host != "" {
			resp.Process.Hostname = host
		}

		dbInfo := DatabaseInfo{Status: "unknown"}
		sqlDB, err := db.DB()
		if err != nil {
			errMsg := "failed to get database instance"
			dbInfo.Status = "unhealthy"
			dbInfo.Error = &errMsg
		} else if err := sqlDB.PingContext(ctx.Request().Context()); err != nil {
			errMsg := "database ping failed"
			dbInfo.Status = "unhealthy"
			dbInfo.Error = &errMsg
		} else {
			dbInfo.Status = "healthy"
			dbInfo.DBStats = sqlDB.Stats()

			if version, dirty, err := database.GetMigrationVersionWithDB(db); err == nil {
				dbInfo.MigrationVersion = &version
				dbInfo.MigrationDirty = &dirty
			} else {
				errStr := err.Error()
				dbInfo.MigrationError = &errStr
			}
		}
		resp.Database = dbInfo

		return ctx.JSON(200, resp)
	}
}

// NewAPIV1Router registers everything reachable without a session.
// Login and the access request intake are throttled per client ip.
func NewAPIV1Router(
	e *echo.Echo,
	db shared.DB,
	authController *controllers.AuthController,
	requestAccessController *controllers.RequestAccessController,
) APIV1Router {
	apiV1Router := e.Group("/api/v1")

	apiV1Router.GET("/health/", health(db))
	apiV1Router.GET("/info/", info(db))
	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))

	public := apiV1Router.Group("", middlewares.PublicRateLimiter())
	public.POST("/auth/login/", authController.Login)
	public.POST("/request-access/", requestAccessController.Create)

	return APIV1Router{Group: apiV1Router}
}
