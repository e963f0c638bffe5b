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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type DepartmentCreateRequest struct {
	Name           string     `json:"name" validate:"required,min=1,max=255"`
	Description    *string    `json:"description" validate:"omitempty,max=2000"`
	OrganizationID *uuid.UUID `json:"organizationId"`
}

type DepartmentPatchRequest struct {
	Name           *string    `json:"name" validate:"omitempty,min=1,max=255"`
	Description    *string    `json:"description" validate:"omitempty,max=2000"`
	OrganizationID *uuid.UUID `json:"organizationId"`
}

type DepartmentDTO struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Description    *string    `json:"description"`
	OrganizationID *uuid.UUID `json:"organizationId"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`

	Organization *OrganizationDTO `json:"organization,omitempty"`
	Users        []UserDTO        `json:"users,omitempty"`
	Issues       []IssueDTO       `json:"issues,omitempty"`
	Projects     []ProjectDTO     `json:"projects,omitempty"`
}

// DepartmentOverview is the org admin dashboard row of a department.
type DepartmentOverview struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    *string   `json:"description"`
	TotalMembers   int64     `json:"totalMembers"`
	ActiveIssues   int64     `json:"activeIssues"`
	TotalIssues    int64     `json:"totalIssues"`
	ResolvedIssues int64     `json:"resolvedIssues"`
	CompletionRate int       `json:"completionRate"`
	CreatedAt      time.Time `json:"createdAt"`
}
