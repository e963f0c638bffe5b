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

type RequestAccessController struct {
	requestAccessService shared.RequestAccessService
}

func NewRequestAccessController(requestAccessService shared.RequestAccessService) *RequestAccessController {
	return &RequestAccessController{
		requestAccessService: requestAccessService,
	}
}

func requestAccessToAny(r models.RequestAccess) any {
	return transformer.RequestAccessModelToDTO(r)
}

// Create is public.
func (c *RequestAccessController) Create(ctx shared.Context) error {
	var req dtos.RequestAccessCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	request := transformer.RequestAccessCreateRequestToModel(req)
	if err := c.requestAccessService.Create(&request); err != nil {
		return err
	}
	return respondWithMessage(ctx, 201, transformer.RequestAccessModelToDTO(request), "Request submitted successfully")
}

func (c *RequestAccessController) List(ctx shared.Context) error {
	var status *models.RequestAccessStatus
	if raw := shared.GetStringQuery(ctx, "status"); raw != nil {
		if err := shared.V.Var(*raw, "oneof=PENDING APPROVED REJECTED"); err != nil {
			return echo.NewHTTPError(400, "status must be one of: PENDING, APPROVED, REJECTED").WithInternal(err)
		}
		s := models.RequestAccessStatus(*raw)
		status = &s
	}

	requests, err := c.requestAccessService.List(status, shared.GetPageInfo(ctx))
	if err != nil {
		return err
	}
	return respond(ctx, 200, requests.Map(requestAccessToAny))
}

func (c *RequestAccessController) Read(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	request, err := c.requestAccessService.Read(id)
	if err != nil {
		return err
	}
	return respond(ctx, 200, transformer.RequestAccessModelToDTO(request))
}

func (c *RequestAccessController) Decide(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dtos.RequestAccessStatusRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	request, err := c.requestAccessService.Decide(id, models.RequestAccessStatus(req.Status))
	if err != nil {
		return err
	}
	return respondWithMessage(ctx, 200, transformer.RequestAccessModelToDTO(request), "Request updated successfully")
}

func (c *RequestAccessController) Reset(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	request, err := c.requestAccessService.Reset(id)
	if err != nil {
		return err
	}
	return respondWithMessage(ctx, 200, transformer.RequestAccessModelToDTO(request), "Request reset to pending")
}

func (c *RequestAccessController) Stats(ctx shared.Context) error {
	stats, err := c.requestAccessService.Stats()
	if err != nil {
		return err
	}
	return respond(ctx, 200, stats)
}
