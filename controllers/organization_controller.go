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

type OrganizationController struct {
	organizationService shared.OrganizationService
	statisticsService   shared.StatisticsService
}

func NewOrganizationController(organizationService shared.OrganizationService, statisticsService shared.StatisticsService) *OrganizationController {
	return &OrganizationController{
		organizationService: organizationService,
		statisticsService:   statisticsService,
	}
}

func (c *OrganizationController) Create(ctx shared.Context) error {
	var req dtos.OrganizationCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	org := transformer.OrganizationCreateRequestToModel(req)
	if err := c.organizationService.Create(&org); err != nil {
		return err
	}
	return respond(ctx, 201, transformer.OrganizationModelToDTO(org))
}

func (c *OrganizationController) List(ctx shared.Context) error {
	relations, err := shared.GetRelations(ctx, models.OrganizationRelations)
	if err != nil {
		return err
	}

	orgs, err := c.organizationService.List(relations)
	if err != nil {
		return err
	}
	return respond(ctx, 200, utils.Map(orgs, transformer.OrganizationModelToDTO))
}

func (c *OrganizationController) Read(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	relations, err := shared.GetRelations(ctx, models.OrganizationRelations)
	if err != nil {
		return err
	}

	org, err := c.organizationService.Read(id, relations)
	if err != nil {
		return err
	}
	return respond(ctx, 200, transformer.OrganizationModelToDTO(org))
}

func (c *OrganizationController) Update(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dtos.OrganizationPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	org, err := c.organizationService.Update(id, req)
	if err != nil {
		return err
	}
	return respond(ctx, 200, transformer.OrganizationModelToDTO(org))
}

func (c *OrganizationController) Delete(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.organizationService.Delete(id); err != nil {
		return err
	}
	return respondWithMessage(ctx, 200, nil, "Organization deleted successfully")
}

func (c *OrganizationController) Stats(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	stats, err := c.statisticsService.OrganizationStats(id)
	if err != nil {
		return err
	}
	return respond(ctx, 200, stats)
}
