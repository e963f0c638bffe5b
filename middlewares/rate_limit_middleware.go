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
	"math"
	"strconv"
	"time"

	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const defaultPublicRateLimit = 5

func publicRateLimit() rate.Limit {
	raw := shared.GetEnvOrDefault("RATE_LIMIT_PUBLIC", strconv.Itoa(defaultPublicRateLimit))
	limit, err := strconv.ParseFloat(raw, 64)
	if err != nil || limit <= 0 {
		slog.Warn("invalid RATE_LIMIT_PUBLIC, using default", "value", raw, "default", defaultPublicRateLimit)
		return rate.Limit(defaultPublicRateLimit)
	}
	return rate.Limit(limit)
}

// PublicRateLimiter throttles the unauthenticated endpoints per client ip.
func PublicRateLimiter() echo.MiddlewareFunc {
	limit := publicRateLimit()
	return RateLimiter(limit, int(math.Ceil(float64(limit))))
}

func RateLimiter(limit rate.Limit, burst int) echo.MiddlewareFunc {
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      limit,
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		ErrorHandler: func(ctx echo.Context, err error) error {
			return echo.NewHTTPError(403, "could not identify client").WithInternal(err)
		},
		DenyHandler: func(ctx echo.Context, identifier string, err error) error {
			return echo.NewHTTPError(429, "too many requests").WithInternal(err)
		},
	})
}
