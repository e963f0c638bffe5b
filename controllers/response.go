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
	"github.com/labstack/echo/v4"
)

func respond(ctx shared.Context, code int, data any) error {
	return ctx.JSON(code, dtos.Response{Data: data})
}

func respondWithMessage(ctx shared.Context, code int, data any, message string) error {
	return ctx.JSON(code, dtos.Response{Data: data, Message: message})
}

func bind(ctx shared.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(400, "could not bind request").WithInternal(err)
	}
	return nil
}

// validate reports the first failing field only.
func validate(req any) error {
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, shared.ValidationMessage(err)).WithInternal(err)
	}
	return nil
}

func bindAndValidate(ctx shared.Context, req any) error {
	if err := bind(ctx, req); err != nil {
		return err
	}
	return validate(req)
}
