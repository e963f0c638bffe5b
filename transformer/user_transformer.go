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
	"strings"

	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/utils"
)

// NormalizeEmail is the form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserCreateRequestToModel leaves the password empty. It is hashed by the user service.
func UserCreateRequestToModel(c dtos.UserCreateRequest) models.User {
	role := models.UserRoleEmployee
	if c.Role != "" {
		role = models.UserRole(c.Role)
	}
	status := models.UserStatusActive
	if c.Status != "" {
		status = models.UserStatus(c.Status)
	}

	return models.User{
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Email:          NormalizeEmail(c.Email),
		Role:           role,
		Status:         status,
		OrganizationID: c.OrganizationID,
		DepartmentID:   c.DepartmentID,
	}
}

// ApplyUserPatchRequestToModel ignores the password field, see UserService.Update.
func ApplyUserPatchRequestToModel(p dtos.UserPatchRequest, user *models.User) bool {
	updated := false

	if p.FirstName != nil {
		updated = true
		user.FirstName = *p.FirstName
	}

	if p.LastName != nil {
		updated = true
		user.LastName = *p.LastName
	}

	if p.Email != nil {
		updated = true
		user.Email = NormalizeEmail(*p.Email)
	}

	if p.Role != nil {
		updated = true
		user.Role = models.UserRole(*p.Role)
	}

	if p.Status != nil {
		updated = true
		user.Status = models.UserStatus(*p.Status)
	}

	if p.OrganizationID != nil {
		updated = true
		user.OrganizationID = p.OrganizationID
		user.Organization = nil
	}

	if p.DepartmentID != nil {
		updated = true
		user.DepartmentID = p.DepartmentID
		user.Department = nil
	}

	return updated
}

func UserModelToDTO(user models.User) dtos.UserDTO {
	var organization *dtos.OrganizationDTO
	if user.Organization != nil {
		organization = utils.Ptr(OrganizationModelToDTO(*user.Organization))
	}
	var department *dtos.DepartmentDTO
	if user.Department != nil {
		department = utils.Ptr(DepartmentModelToDTO(*user.Department))
	}

	return dtos.UserDTO{
		ID:             user.ID,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Email:          user.Email,
		Role:           string(user.Role),
		Status:         string(user.Status),
		OrganizationID: user.OrganizationID,
		DepartmentID:   user.DepartmentID,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
		Organization:   organization,
		Department:     department,
		AssignedIssues: utils.Map(user.AssignedIssues, IssueModelToDTO),
		ReportedIssues: utils.Map(user.ReportedIssues, IssueModelToDTO),
		Comments:       utils.Map(user.Comments, CommentModelToDTO),
	}
}
