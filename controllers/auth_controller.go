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

package controllers

import (
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/l3montree-dev/issuetracker/transformer"
)

type AuthController struct {
	authService shared.AuthService
}

func NewAuthController(authService shared.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

func (c *AuthController) Login(ctx shared.Context) error {
	var req dtos.LoginRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	user, token, err := c.authService.Login(req.Email, req.Password)
	if err != nil {
		return err
	}
	return respond(ctx, 200, dtos.LoginResponse{
		User:  transformer.UserModelToDTO(user),
		Token: token,
	})
}
