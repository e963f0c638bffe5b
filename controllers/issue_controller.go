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

type IssueController struct {
	issueService shared.IssueService
}

func NewIssueController(issueService shared.IssueService) *IssueController {
	return &IssueController{
		issueService: issueService,
	}
}

func issueToAny(i models.Issue) any {
	return transformer.IssueModelToDTO(i)
}

// issueFilter reads the list query parameters. assignedToMe=true narrows to the issues of the caller.
func issueFilter(ctx shared.Context) (dtos.IssueFilter, error) {
	filter := dtos.IssueFilter{
		Status:   shared.GetStringQuery(ctx, "status"),
		Priority: shared.GetStringQuery(ctx, "priority"),
		Type:     shared.GetStringQuery(ctx, "type"),
		Search:   ctx.QueryParam("search"),
	}

	var err error
	if filter.AssigneeID, err = shared.GetUUIDQuery(ctx, "assigneeId"); err != nil {
		return filter, err
	}
	if filter.ReporterID, err = shared.GetUUIDQuery(ctx, "reporterId"); err != nil {
		return filter, err
	}
	if filter.DepartmentID, err = shared.GetUUIDQuery(ctx, "departmentId"); err != nil {
		return filter, err
	}
	if filter.ProjectID, err = shared.GetUUIDQuery(ctx, "projectId"); err != nil {
		return filter, err
	}

	if ctx.QueryParam("assignedToMe") == "true" {
		me := shared.GetSession(ctx).GetUserID()
		filter.AssigneeID = &me
	}
	return filter, nil
}

func (c *IssueController) Create(ctx shared.Context) error {
	var req dtos.IssueCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	issue := transformer.IssueCreateRequestToModel(req, shared.GetSession(ctx).GetUserID())
	if err := c.issueService.Create(&issue); err != nil {
		return err
	}
	return respond(ctx, 201, transformer.IssueModelToDTO(issue))
}

func (c *IssueController) List(ctx shared.Context) error {
	filter, err := issueFilter(ctx)
	if err != nil {
		return err
	}
	if filter.Status != nil {
		if err := shared.V.Var(*filter.Status, "oneof=OPEN IN_PROGRESS UNDER_REVIEW BLOCKED RESOLVED CLOSED"); err != nil {
			return echo.NewHTTPError(400, "invalid status").WithInternal(err)
		}
	}
	relations, err := shared.GetRelations(ctx, models.IssueRelations)
	if err != nil {
		return err
	}

	issues, err := c.issueService.List(filter, shared.GetPageInfo(ctx), relations)
	if err != nil {
		return err
	}
	return respond(ctx, 200, issues.Map(issueToAny))
}

func (c *IssueController) Read(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	relations, err := shared.GetRelations(ctx, models.IssueRelations)
	if err != nil {
		return err
	}

	issue, err := c.issueService.Read(id, relations)
	if err != nil {
		return err
	}
	return respond(ctx, 200, transformer.IssueModelToDTO(issue))
}

func (c *IssueController) Update(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dtos.IssuePatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	issue, err := c.issueService.Update(id, req)
	if err != nil {
		return err
	}
	return respond(ctx, 200, transformer.IssueModelToDTO(issue))
}

func (c *IssueController) Delete(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.issueService.Delete(id); err != nil {
		return err
	}
	return respondWithMessage(ctx, 200, nil, "Issue deleted successfully")
}
