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

package transformer

import (
	"time"

	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/utils"
	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

func parseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

func formatDate(d datatypes.Date) string {
	return time.Time(d).Format(dateLayout)
}

func ProjectCreateRequestToModel(c dtos.ProjectCreateRequest) (models.Project, error) {
	startDate, err := parseDate(c.StartDate)
	if err != nil {
		return models.Project{}, err
	}
	endDate, err := parseDate(c.EndDate)
	if err != nil {
		return models.Project{}, err
	}

	status := models.ProjectStatusActive
	if c.Status != "" {
		status = models.ProjectStatus(c.Status)
	}
	priority := models.ProjectPriorityMedium
	if c.Priority != "" {
		priority = models.ProjectPriority(c.Priority)
	}

	return models.Project{
		Name:         c.Name,
		Description:  c.Description,
		Status:       status,
		Priority:     priority,
		StartDate:    startDate,
		EndDate:      endDate,
		DepartmentID: c.DepartmentID,
	}, nil
}

// ApplyProjectPatchRequestToModel does not touch the team members. Those are replaced by the service.
func ApplyProjectPatchRequestToModel(p dtos.ProjectPatchRequest, project *models.Project) (bool, error) {
	updated := false

	if p.Name != nil {
		updated = true
		project.Name = *p.Name
	}

	if p.Description != nil {
		updated = true
		project.Description = *p.Description
	}

	if p.Status != nil {
		updated = true
		project.Status = models.ProjectStatus(*p.Status)
	}

	if p.Priority != nil {
		updated = true
		project.Priority = models.ProjectPriority(*p.Priority)
	}

	if p.StartDate != nil {
		d, err := parseDate(*p.StartDate)
		if err != nil {
			return false, err
		}
		updated = true
		project.StartDate = d
	}

	if p.EndDate != nil {
		d, err := parseDate(*p.EndDate)
		if err != nil {
			return false, err
		}
		updated = true
		project.EndDate = d
	}

	if p.DepartmentID != nil {
		updated = true
		project.DepartmentID = *p.DepartmentID
		project.Department = nil
	}

	return updated, nil
}

func ProjectModelToDTO(project models.Project) dtos.ProjectDTO {
	var department *dtos.DepartmentDTO
	if project.Department != nil {
		department = utils.Ptr(DepartmentModelToDTO(*project.Department))
	}

	return dtos.ProjectDTO{
		ID:           project.ID,
		Name:         project.Name,
		Description:  project.Description,
		Status:       string(project.Status),
		Priority:     string(project.Priority),
		StartDate:    formatDate(project.StartDate),
		EndDate:      formatDate(project.EndDate),
		DepartmentID: project.DepartmentID,
		CreatedAt:    project.CreatedAt,
		UpdatedAt:    project.UpdatedAt,
		Department:   department,
		TeamMembers:  utils.Map(project.TeamMembers, UserModelToDTO),
		Issues:       utils.Map(project.Issues, IssueModelToDTO),
	}
}
