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

type IssueCreateRequest struct {
	Title        string     `json:"title" validate:"required,min=1,max=255"`
	Description  string     `json:"description" validate:"required,min=1"`
	Status       string     `json:"status" validate:"omitempty,oneof=OPEN IN_PROGRESS UNDER_REVIEW BLOCKED RESOLVED CLOSED"`
	Priority     string     `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Type         string     `json:"type" validate:"omitempty,oneof=BUG FEATURE ENHANCEMENT TASK"`
	DueDate      *time.Time `json:"dueDate"`
	AssigneeID   *uuid.UUID `json:"assigneeId"`
	ReporterID   *uuid.UUID `json:"reporterId"`
	DepartmentID *uuid.UUID `json:"departmentId"`
	ProjectID    *uuid.UUID `json:"projectId"`
}

type IssuePatchRequest struct {
	Title        *string    `json:"title" validate:"omitempty,min=1,max=255"`
	Description  *string    `json:"description" validate:"omitempty,min=1"`
	Status       *string    `json:"status" validate:"omitempty,oneof=OPEN IN_PROGRESS UNDER_REVIEW BLOCKED RESOLVED CLOSED"`
	Priority     *string    `json:"priority" validate:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Type         *string    `json:"type" validate:"omitempty,oneof=BUG FEATURE ENHANCEMENT TASK"`
	DueDate      *time.Time `json:"dueDate"`
	AssigneeID   *uuid.UUID `json:"assigneeId"`
	DepartmentID *uuid.UUID `json:"departmentId"`
	ProjectID    *uuid.UUID `json:"projectId"`
}

type IssueDTO struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	Type         string     `json:"type"`
	DueDate      *time.Time `json:"dueDate"`
	AssigneeID   *uuid.UUID `json:"assigneeId"`
	ReporterID   uuid.UUID  `json:"reporterId"`
	DepartmentID *uuid.UUID `json:"departmentId"`
	ProjectID    *uuid.UUID `json:"projectId"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`

	Assignee    *UserDTO        `json:"assignee,omitempty"`
	Reporter    *UserDTO        `json:"reporter,omitempty"`
	Department  *DepartmentDTO  `json:"department,omitempty"`
	Project     *ProjectDTO     `json:"project,omitempty"`
	Comments    []CommentDTO    `json:"comments,omitempty"`
	Attachments []AttachmentDTO `json:"attachments,omitempty"`
}

// IssueFilter holds the list query parameters. Nil fields do not filter.
type IssueFilter struct {
	AssigneeID   *uuid.UUID
	ReporterID   *uuid.UUID
	DepartmentID *uuid.UUID
	ProjectID    *uuid.UUID
	Status       *string
	Priority     *string
	Type         *string
	Search       string
}
