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

package services

import (
	"sync"

	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/monitoring"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const invalidCredentialsMessage = "Invalid email or password"

// unknown emails are compared against this hash so they take as long as wrong passwords
var dummyHash = sync.OnceValue(func() []byte {
	hash, _ := bcrypt.GenerateFromPassword([]byte("issuetracker-dummy-password"), passwordHashCost)
	return hash
})

type AuthService struct {
	userRepository shared.UserRepository
	tokenService   shared.TokenService
}

var _ shared.AuthService = &AuthService{}

func NewAuthService(userRepository shared.UserRepository, tokenService shared.TokenService) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		tokenService:   tokenService,
	}
}

func (s *AuthService) Login(email, password string) (models.User, string, error) {
	user, err := s.userRepository.FindByEmail(email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, "", echo.NewHTTPError(500, "could not log in").WithInternal(err)
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
		monitoring.LoginFailedAmount.Inc()
		return models.User{}, "", echo.NewHTTPError(401, invalidCredentialsMessage)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		monitoring.LoginFailedAmount.Inc()
		return models.User{}, "", echo.NewHTTPError(401, invalidCredentialsMessage).WithInternal(err)
	}

	if !user.IsActive() {
		monitoring.LoginFailedAmount.Inc()
		return models.User{}, "", echo.NewHTTPError(401, invalidCredentialsMessage)
	}

	token, err := s.tokenService.Sign(user)
	if err != nil {
		return models.User{}, "", echo.NewHTTPError(500, "could not log in").WithInternal(err)
	}
	return user, token, nil
}
