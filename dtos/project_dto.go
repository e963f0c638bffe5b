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

type ProjectCreateRequest struct {
	Name          string      `json:"name" validate:"required,min=1,max=255"`
	Description   string      `json:"description" validate:"max=2000"`
	Status        string      `json:"status" validate:"omitempty,oneof=active completed on-hold"`
	Priority      string      `json:"priority" validate:"omitempty,oneof=low medium high"`
	StartDate     string      `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate       string      `json:"endDate" validate:"required,datetime=2006-01-02"`
	DepartmentID  uuid.UUID   `json:"departmentId" validate:"required"`
	TeamMemberIDs []uuid.UUID `json:"teamMemberIds"`
}

type ProjectPatchRequest struct {
	Name          *string      `json:"name" validate:"omitempty,min=1,max=255"`
	Description   *string      `json:"description" validate:"omitempty,max=2000"`
	Status        *string      `json:"status" validate:"omitempty,oneof=active completed on-hold"`
	Priority      *string      `json:"priority" validate:"omitempty,oneof=low medium high"`
	StartDate     *string      `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate       *string      `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	DepartmentID  *uuid.UUID   `json:"departmentId"`
	TeamMemberIDs *[]uuid.UUID `json:"teamMemberIds"`
}

type ProjectDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	StartDate    string    `json:"startDate"`
	EndDate      string    `json:"endDate"`
	DepartmentID uuid.UUID `json:"departmentId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Department  *DepartmentDTO `json:"department,omitempty"`
	TeamMembers []UserDTO      `json:"teamMembers,omitempty"`
	Issues      []IssueDTO     `json:"issues,omitempty"`
}

// ProjectOverview is the org admin dashboard row of a project.
type ProjectOverview struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	Priority        string    `json:"priority"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	DepartmentID    uuid.UUID `json:"departmentId"`
	DepartmentName  string    `json:"departmentName"`
	Progress        int       `json:"progress"`
	TotalIssues     int64     `json:"totalIssues"`
	CompletedIssues int64     `json:"completedIssues"`
	TeamMembers     int64     `json:"teamMembers"`
}
