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
	"github.com/l3montree-dev/issuetracker/shared"
)

type StatisticsController struct {
	statisticsService shared.StatisticsService
}

func NewStatisticsController(statisticsService shared.StatisticsService) *StatisticsController {
	return &StatisticsController{
		statisticsService: statisticsService,
	}
}

func (c *StatisticsController) OrgAdminStats(ctx shared.Context) error {
	stats, err := c.statisticsService.OrgAdminStats()
	if err != nil {
		return err
	}
	return respond(ctx, 200, stats)
}

func (c *StatisticsController) Activity(ctx shared.Context) error {
	activity, err := c.statisticsService.Activity()
	if err != nil {
		return err
	}
	return respond(ctx, 200, activity)
}

func (c *StatisticsController) DepartmentOverviews(ctx shared.Context) error {
	overviews, err := c.statisticsService.DepartmentOverviews()
	if err != nil {
		return err
	}
	return respond(ctx, 200, overviews)
}

func (c *StatisticsController) DepartmentOverview(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	overview, err := c.statisticsService.DepartmentOverview(id)
	if err != nil {
		return err
	}
	return respond(ctx, 200, overview)
}

func (c *StatisticsController) ProjectOverviews(ctx shared.Context) error {
	overviews, err := c.statisticsService.ProjectOverviews()
	if err != nil {
		return err
	}
	return respond(ctx, 200, overviews)
}

func (c *StatisticsController) ProjectOverview(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	overview, err := c.statisticsService.ProjectOverview(id)
	if err != nil {
		return err
	}
	return respond(ctx, 200, overview)
}

// TeamMembers accepts an optional departmentId filter.
func (c *StatisticsController) TeamMembers(ctx shared.Context) error {
	departmentID, err := shared.GetUUIDQuery(ctx, "departmentId")
	if err != nil {
		return err
	}

	members, err := c.statisticsService.TeamMembers(departmentID)
	if err != nil {
		return err
	}
	return respond(ctx, 200, members)
}

func (c *StatisticsController) TeamStats(ctx shared.Context) error {
	departmentID, err := shared.GetUUIDQuery(ctx, "departmentId")
	if err != nil {
		return err
	}

	stats, err := c.statisticsService.TeamStats(departmentID)
	if err != nil {
		return err
	}
	return respond(ctx, 200, stats)
}
