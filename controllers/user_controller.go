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
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/l3montree-dev/issuetracker/transformer"
	"github.com/labstack/echo/v4"
)

type UserController struct {
	userService shared.UserService
}

func NewUserController(userService shared.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

func userToAny(u models.User) any {
	return transformer.UserModelToDTO(u)
}

// checkRoleAssignment forbids granting a role above the one of the current session.
func checkRoleAssignment(ctx shared.Context, role models.UserRole) error {
	if role.Rank() > shared.GetSession(ctx).GetRole().Rank() {
		return echo.NewHTTPError(403, "you are not allowed to assign a role above your own")
	}
	return nil
}

func (c *UserController) Create(ctx shared.Context) error {
	var req dtos.UserCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	user := transformer.UserCreateRequestToModel(req)
	if err := checkRoleAssignment(ctx, user.Role); err != nil {
		return err
	}
	if err := c.userService.Create(&user, req.Password); err != nil {
		return err
	}
	return respond(ctx, 201, transformer.UserModelToDTO(user))
}

func (c *UserController) List(ctx shared.Context) error {
	organizationID, err := shared.GetUUIDQuery(ctx, "organizationId")
	if err != nil {
		return err
	}
	departmentID, err := shared.GetUUIDQuery(ctx, "departmentId")
	if err != nil {
		return err
	}
	relations, err := shared.GetRelations(ctx, models.UserRelations)
	if err != nil {
		return err
	}

	filter := dtos.UserFilter{
		OrganizationID: organizationID,
		DepartmentID:   departmentID,
		Role:           shared.GetStringQuery(ctx, "role"),
		Status:         shared.GetStringQuery(ctx, "status"),
		Search:         ctx.QueryParam("search"),
	}

	users, err := c.userService.List(filter, shared.GetPageInfo(ctx), relations)
	if err != nil {
		return err
	}
	return respond(ctx, 200, users.Map(userToAny))
}

func (c *UserController) Read(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	relations, err := shared.GetRelations(ctx, models.UserRelations)
	if err != nil {
		return err
	}

	user, err := c.userService.Read(id, relations)
	if err != nil {
		return err
	}
	return respond(ctx, 200, transformer.UserModelToDTO(user))
}

func (c *UserController) Update(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dtos.UserPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}
	if shared.IsSelfService(ctx) && (req.Role != nil || req.Status != nil || req.OrganizationID != nil || req.DepartmentID != nil) {
		return echo.NewHTTPError(403, "you are not allowed to change role, status, organization or department")
	}
	if req.Role != nil {
		if err := checkRoleAssignment(ctx, models.UserRole(*req.Role)); err != nil {
			return err
		}
	}

	user, err := c.userService.Update(id, req)
	if err != nil {
		return err
	}
	return respond(ctx, 200, transformer.UserModelToDTO(user))
}

// Delete deactivates the user. The row and everything the user authored stays.
func (c *UserController) Delete(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.userService.Deactivate(id); err != nil {
		return err
	}
	return respondWithMessage(ctx, 200, nil, "User deactivated successfully")
}

func (c *UserController) Whoami(ctx shared.Context) error {
	session := shared.GetSession(ctx)

	user, err := c.userService.Read(session.GetUserID(), []string{"Organization", "Department"})
	if err != nil {
		return err
	}
	return respond(ctx, 200, transformer.UserModelToDTO(user))
}
