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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/accesscontrol"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/mocks"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"Bearer   abc ", "abc", true},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		token, ok := bearerToken(c.header)
		assert.Equal(t, c.ok, ok, c.header)
		assert.Equal(t, c.token, token, c.header)
	}
}

func TestSessionMiddleware(t *testing.T) {
	t.Run("should set the session of a valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer valid")
		ctx := echo.New().NewContext(req, httptest.NewRecorder())

		userID := uuid.New()
		tokenService := mocks.NewTokenService(t)
		tokenService.On("Verify", "valid").Return(accesscontrol.NewSession(userID, "jane@example.com", models.UserRoleManager), nil)

		var called bool
		err := SessionMiddleware(tokenService)(func(ctx echo.Context) error {
			called = true
			session := shared.GetSession(ctx)
			assert.Equal(t, userID, session.GetUserID())
			assert.Equal(t, models.UserRoleManager, session.GetRole())
			return nil
		})(ctx)

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("should answer 401 without a token", func(t *testing.T) {
		ctx := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		err := SessionMiddleware(mocks.NewTokenService(t))(func(ctx echo.Context) error {
			t.Fatal("next must not be called")
			return nil
		})(ctx)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, 401, he.Code)
	})

	t.Run("should answer 401 for a token that does not verify", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer expired")
		ctx := echo.New().NewContext(req, httptest.NewRecorder())

		tokenService := mocks.NewTokenService(t)
		tokenService.On("Verify", "expired").Return(nil, errors.New("token is expired"))

		err := SessionMiddleware(tokenService)(func(ctx echo.Context) error {
			t.Fatal("next must not be called")
			return nil
		})(ctx)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, 401, he.Code)
		assert.Equal(t, "invalid or expired token", he.Message)
	})
}
