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
	"github.com/gosimple/slug"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/utils"
)

func OrganizationCreateRequestToModel(c dtos.OrganizationCreateRequest) models.Organization {
	return models.Organization{
		Name:        c.Name,
		Slug:        slug.Make(c.Name),
		Description: c.Description,
	}
}

// the slug stays stable on rename so links keep working
func ApplyOrganizationPatchRequestToModel(p dtos.OrganizationPatchRequest, org *models.Organization) bool {
	updated := false

	if p.Name != nil {
		updated = true
		org.Name = *p.Name
	}

	if p.Description != nil {
		updated = true
		org.Description = p.Description
	}

	return updated
}

func OrganizationModelToDTO(org models.Organization) dtos.OrganizationDTO {
	return dtos.OrganizationDTO{
		ID:          org.ID,
		Name:        org.Name,
		Slug:        org.Slug,
		Description: org.Description,
		CreatedAt:   org.CreatedAt,
		UpdatedAt:   org.UpdatedAt,
		Departments: utils.Map(org.Departments, DepartmentModelToDTO),
		Users:       utils.Map(org.Users, UserModelToDTO),
	}
}
