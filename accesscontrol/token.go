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
	"log/slog"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/pkg/errors"
)

const devSecret = "issuetracker-development-secret"

var _ shared.TokenService = &jwtTokenService{}

type Claims struct {
	UserID string          `json:"userId"`
	Email  string          `json:"email"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type jwtTokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTTokenService reads JWT_SECRET and JWT_TTL. Outside of production a missing
// secret falls back to a fixed development value.
func NewJWTTokenService() (*jwtTokenService, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		if os.Getenv("ENVIRONMENT") == "production" {
			return nil, errors.New("JWT_SECRET must be set in production")
		}
		slog.Warn("JWT_SECRET not set, using the development secret")
		secret = devSecret
	}

	ttl := 24 * time.Hour
	if raw := os.Getenv("JWT_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, errors.Wrap(err, "could not parse JWT_TTL")
		}
		ttl = parsed
	}

	return NewJWTTokenServiceWithSecret(secret, ttl), nil
}

func NewJWTTokenServiceWithSecret(secret string, ttl time.Duration) *jwtTokenService {
	return &jwtTokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *jwtTokenService) Sign(user models.User) (string, error) {
	now := time.Now()
	return jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}).SignedString(s.secret)
}

func (s *jwtTokenService) Verify(token string) (shared.AuthSession, error) {
	claims := Claims{}
	_, err := jwt.ParseWithClaims(token, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "token carries an invalid user id")
	}

	return NewSession(userID, claims.Email, claims.Role), nil
}
