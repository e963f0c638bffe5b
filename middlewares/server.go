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

package middlewares

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/monitoring"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

const internalServerErrorMessage = "internal server error"

func recovermiddleware() echo.MiddlewareFunc {
	return middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(ctx echo.Context, err error, stack []byte) error {
			monitoring.RecoverAndAlert("panic while handling "+ctx.Request().Method+" "+ctx.Path(), err)
			slog.Debug("panic stack", "stack", string(stack))
			return err
		},
	})
}

// requestDuration records every request by route template, not by raw url.
func requestDuration() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			status := ctx.Response().Status
			var he *echo.HTTPError
			if errors.As(err, &he) {
				status = he.Code
			} else if err != nil {
				status = http.StatusInternalServerError
			}
			monitoring.HTTPRequestDuration.
				WithLabelValues(ctx.Request().Method, ctx.Path(), strconv.Itoa(status)).
				Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// errorHandler answers every error with the {"error": "..."} envelope.
// Messages of 5xx errors never leave the process, they are sent to error tracking instead.
func errorHandler(err error, ctx echo.Context) {
	code := http.StatusInternalServerError
	message := internalServerErrorMessage

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError {
		monitoring.Alert(message, err)
		message = internalServerErrorMessage
	} else {
		// do the logging straight inside the error handler
		// this keeps controller methods clean
		slog.Warn(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)
	}

	if ctx.Response().Committed {
		return
	}

	if ctx.Request().Method == http.MethodHead {
		err = ctx.NoContent(code)
	} else {
		err = ctx.JSON(code, dtos.Response{Error: message})
	}
	if err != nil {
		slog.Error("could not send error response", "error", err)
	}
}

func registerMiddlewares(e *echo.Echo) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     []string{shared.GetEnvOrDefault("FRONTEND_URL", "http://localhost:3000")},
			AllowHeaders:     middleware.DefaultCORSConfig.AllowHeaders,
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))

	e.Use(otelecho.Middleware(monitoring.ServiceName))
	e.Use(logger())
	e.Use(requestDuration())
	e.Use(recovermiddleware())

	e.HTTPErrorHandler = errorHandler
}

func Server() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(99)
	registerMiddlewares(e)
	return e
}
