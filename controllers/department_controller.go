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
	"github.com/l3montree-dev/issuetracker/utils"
)

type DepartmentController struct {
	departmentService shared.DepartmentService
}

func NewDepartmentController(departmentService shared.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

func (c *DepartmentController) Create(ctx shared.Context) error {
	var req dtos.DepartmentCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	department := transformer.DepartmentCreateRequestToModel(req)
	if err := c.departmentService.Create(&department); err != nil {
		return err
	}
	return respond(ctx, 201, transformer.DepartmentModelToDTO(department))
}

// List accepts an optional organizationId filter.
func (c *DepartmentController) List(ctx shared.Context) error {
	organizationID, err := shared.GetUUIDQuery(ctx, "organizationId")
	if err != nil {
		return err
	}
	relations, err := shared.GetRelations(ctx, models.DepartmentRelations)
	if err != nil {
		return err
	}

	departments, err := c.departmentService.List(organizationID, relations)
	if err != nil {
		return err
	}
	return respond(ctx, 200, utils.Map(departments, transformer.DepartmentModelToDTO))
}

func (c *DepartmentController) Read(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	relations, err := shared.GetRelations(ctx, models.DepartmentRelations)
	if err != nil {
		return err
	}

	department, err := c.departmentService.Read(id, relations)
	if err != nil {
		return err
	}
	return respond(ctx, 200, transformer.DepartmentModelToDTO(department))
}

func (c *DepartmentController) Update(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dtos.DepartmentPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	department, err := c.departmentService.Update(id, req)
	if err != nil {
		return err
	}
	return respond(ctx, 200, transformer.DepartmentModelToDTO(department))
}

func (c *DepartmentController) Delete(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.departmentService.Delete(id); err != nil {
		return err
	}
	return respondWithMessage(ctx, 200, nil, "Department deleted successfully")
}
