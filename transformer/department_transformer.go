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
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/utils"
)

func DepartmentCreateRequestToModel(c dtos.DepartmentCreateRequest) models.Department {
	return models.Department{
		Name:           c.Name,
		Description:    c.Description,
		OrganizationID: c.OrganizationID,
	}
}

func ApplyDepartmentPatchRequestToModel(p dtos.DepartmentPatchRequest, department *models.Department) bool {
	updated := false

	if p.Name != nil {
		updated = true
		department.Name = *p.Name
	}

	if p.Description != nil {
		updated = true
		department.Description = p.Description
	}

	if p.OrganizationID != nil {
		updated = true
		department.OrganizationID = p.OrganizationID
		department.Organization = nil
	}

	return updated
}

func DepartmentModelToDTO(department models.Department) dtos.DepartmentDTO {
	var organization *dtos.OrganizationDTO
	if department.Organization != nil {
		organization = utils.Ptr(OrganizationModelToDTO(*department.Organization))
	}

	return dtos.DepartmentDTO{
		ID:             department.ID,
		Name:           department.Name,
		Description:    department.Description,
		OrganizationID: department.OrganizationID,
		CreatedAt:      department.CreatedAt,
		UpdatedAt:      department.UpdatedAt,
		Organization:   organization,
		Users:          utils.Map(department.Users, UserModelToDTO),
		Issues:         utils.Map(department.Issues, IssueModelToDTO),
		Projects:       utils.Map(department.Projects, ProjectModelToDTO),
	}
}
