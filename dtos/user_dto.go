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

type UserCreateRequest struct {
	FirstName      string     `json:"firstName" validate:"required,min=1,max=255"`
	LastName       string     `json:"lastName" validate:"required,min=1,max=255"`
	Email          string     `json:"email" validate:"required,email"`
	Password       string     `json:"password" validate:"required,min=8,max=72"`
	Role           string     `json:"role" validate:"omitempty,oneof=SUPER_ADMIN ADMIN MANAGER EMPLOYEE"`
	Status         string     `json:"status" validate:"omitempty,oneof=active inactive"`
	OrganizationID *uuid.UUID `json:"organizationId"`
	DepartmentID   *uuid.UUID `json:"departmentId"`
}

type UserPatchRequest struct {
	FirstName      *string    `json:"firstName" validate:"omitempty,min=1,max=255"`
	LastName       *string    `json:"lastName" validate:"omitempty,min=1,max=255"`
	Email          *string    `json:"email" validate:"omitempty,email"`
	Password       *string    `json:"password" validate:"omitempty,min=8,max=72"`
	Role           *string    `json:"role" validate:"omitempty,oneof=SUPER_ADMIN ADMIN MANAGER EMPLOYEE"`
	Status         *string    `json:"status" validate:"omitempty,oneof=active inactive"`
	OrganizationID *uuid.UUID `json:"organizationId"`
	DepartmentID   *uuid.UUID `json:"departmentId"`
}

// UserDTO never carries the password hash.
type UserDTO struct {
	ID             uuid.UUID  `json:"id"`
	FirstName      string     `json:"firstName"`
	LastName       string     `json:"lastName"`
	Email          string     `json:"email"`
	Role           string     `json:"role"`
	Status         string     `json:"status"`
	OrganizationID *uuid.UUID `json:"organizationId"`
	DepartmentID   *uuid.UUID `json:"departmentId"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`

	Organization   *OrganizationDTO `json:"organization,omitempty"`
	Department     *DepartmentDTO   `json:"department,omitempty"`
	AssignedIssues []IssueDTO       `json:"assignedIssues,omitempty"`
	ReportedIssues []IssueDTO       `json:"reportedIssues,omitempty"`
	Comments       []CommentDTO     `json:"comments,omitempty"`
}

type UserFilter struct {
	OrganizationID *uuid.UUID
	DepartmentID   *uuid.UUID
	Role           *string
	Status         *string
	Search         string
}
