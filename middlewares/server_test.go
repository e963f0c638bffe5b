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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func serve(e *echo.Echo, method, target string) (*httptest.ResponseRecorder, dtos.Response) {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	var body dtos.Response
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestServer(t *testing.T) {
	e := Server()
	e.GET("/conflict/", func(ctx echo.Context) error {
		return echo.NewHTTPError(409, "Cannot delete department with active users")
	})
	e.GET("/boom/", func(ctx echo.Context) error {
		return echo.NewHTTPError(500, "could not read department").WithInternal(errors.New("pq: connection refused"))
	})
	e.GET("/plain/", func(ctx echo.Context) error {
		return errors.New("something unexpected")
	})
	e.GET("/panic/", func(ctx echo.Context) error {
		panic("nil map")
	})
	e.GET("/ok/", func(ctx echo.Context) error {
		return ctx.JSON(200, dtos.Response{Data: "fine"})
	})

	t.Run("http errors keep their code and message", func(t *testing.T) {
		rec, body := serve(e, http.MethodGet, "/conflict/")
		assert.Equal(t, 409, rec.Code)
		assert.Equal(t, "Cannot delete department with active users", body.Error)
	})

	t.Run("internal errors do not leak details", func(t *testing.T) {
		for _, path := range []string{"/boom/", "/plain/", "/panic/"} {
			rec, body := serve(e, http.MethodGet, path)
			assert.Equal(t, 500, rec.Code, path)
			assert.Equal(t, "internal server error", body.Error, path)
			assert.NotContains(t, rec.Body.String(), "pq:", path)
		}
	})

	t.Run("a missing trailing slash is added", func(t *testing.T) {
		rec, body := serve(e, http.MethodGet, "/ok")
		assert.Equal(t, 200, rec.Code)
		assert.Equal(t, "fine", body.Data)
	})

	t.Run("unknown routes answer with the envelope", func(t *testing.T) {
		rec, body := serve(e, http.MethodGet, "/nowhere/")
		assert.Equal(t, 404, rec.Code)
		assert.NotEmpty(t, body.Error)
	})
}

func TestRateLimiter(t *testing.T) {
	e := Server()
	e.POST("/request-access/", func(ctx echo.Context) error {
		return ctx.NoContent(201)
	}, RateLimiter(rate.Limit(1), 2))

	codes := make([]int, 0, 3)
	for range 3 {
		rec, _ := serve(e, http.MethodPost, "/request-access/")
		codes = append(codes, rec.Code)
	}
	require.Equal(t, []int{201, 201, 429}, codes)
}

func TestPublicRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_PUBLIC", "12.5")
	assert.Equal(t, rate.Limit(12.5), publicRateLimit())

	t.Setenv("RATE_LIMIT_PUBLIC", "fast")
	assert.Equal(t, rate.Limit(defaultPublicRateLimit), publicRateLimit())
}
