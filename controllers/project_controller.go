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
	"github.com/labstack/echo/v4"
)

type ProjectController struct {
	projectService shared.ProjectService
}

func NewProjectController(projectService shared.ProjectService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
	}
}

func (c *ProjectController) Create(ctx shared.Context) error {
	var req dtos.ProjectCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	project, err := transformer.ProjectCreateRequestToModel(req)
	if err != nil {
		return echo.NewHTTPError(400, "dates must be formatted as YYYY-MM-DD").WithInternal(err)
	}
	if err := c.projectService.Create(&project, req.TeamMemberIDs); err != nil {
		return err
	}
	return respond(ctx, 201, transformer.ProjectModelToDTO(project))
}

func (c *ProjectController) List(ctx shared.Context) error {
	departmentID, err := shared.GetUUIDQuery(ctx, "departmentId")
	if err != nil {
		return err
	}
	relations, err := shared.GetRelations(ctx, models.ProjectRelations)
	if err != nil {
		return err
	}

	projects, err := c.projectService.List(departmentID, relations)
	if err != nil {
		return err
	}
	return respond(ctx, 200, utils.Map(projects, transformer.ProjectModelToDTO))
}

func (c *ProjectController) Read(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	relations, err := shared.GetRelations(ctx, models.ProjectRelations)
	if err != nil {
		return err
	}

	project, err := c.projectService.Read(id, relations)
	if err != nil {
		return err
	}
	return respond(ctx, 200, transformer.ProjectModelToDTO(project))
}

func (c *ProjectController) Update(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dtos.ProjectPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	project, err := c.projectService.Update(id, req)
	if err != nil {
		return err
	}
	return respond(ctx, 200, transformer.ProjectModelToDTO(project))
}

func (c *ProjectController) Delete(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.projectService.Delete(id); err != nil {
		return err
	}
	return respondWithMessage(ctx, 200, nil, "Project deleted successfully")
}
