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

package accesscontrol

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenService(t *testing.T) {
	user := models.User{Email: "jane@example.com", Role: models.UserRoleManager}
	user.ID = uuid.New()

	t.Run("a signed token verifies into the same principal", func(t *testing.T) {
		svc := NewJWTTokenServiceWithSecret("secret", time.Hour)
		token, err := svc.Sign(user)
		require.NoError(t, err)

		session, err := svc.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID, session.GetUserID())
		assert.Equal(t, user.Email, session.GetEmail())
		assert.Equal(t, models.UserRoleManager, session.GetRole())
	})

	t.Run("a token signed with another secret is rejected", func(t *testing.T) {
		token, err := NewJWTTokenServiceWithSecret("other", time.Hour).Sign(user)
		require.NoError(t, err)

		_, err = NewJWTTokenServiceWithSecret("secret", time.Hour).Verify(token)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("an expired token is rejected", func(t *testing.T) {
		svc := NewJWTTokenServiceWithSecret("secret", -time.Minute)
		token, err := svc.Sign(user)
		require.NoError(t, err)

		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := NewJWTTokenServiceWithSecret("secret", time.Hour).Verify("not-a-token")
		assert.Error(t, err)
	})

	t.Run("production requires a secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		t.Setenv("ENVIRONMENT", "production")
		_, err := NewJWTTokenService()
		assert.Error(t, err)
	})

	t.Run("JWT_TTL must be a duration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "secret")
		t.Setenv("JWT_TTL", "one day")
		_, err := NewJWTTokenService()
		assert.Error(t, err)
	})
}
