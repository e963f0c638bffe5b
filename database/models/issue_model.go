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

package models

import (
	"time"

	"github.com/google/uuid"
)

type IssueStatus string

const (
	IssueStatusOpen        IssueStatus = "OPEN"
	IssueStatusInProgress  IssueStatus = "IN_PROGRESS"
	IssueStatusUnderReview IssueStatus = "UNDER_REVIEW"
	IssueStatusBlocked     IssueStatus = "BLOCKED"
	IssueStatusResolved    IssueStatus = "RESOLVED"
	IssueStatusClosed      IssueStatus = "CLOSED"
)

type IssuePriority string

const (
	IssuePriorityLow      IssuePriority = "LOW"
	IssuePriorityMedium   IssuePriority = "MEDIUM"
	IssuePriorityHigh     IssuePriority = "HIGH"
	IssuePriorityCritical IssuePriority = "CRITICAL"
)

type IssueType string

const (
	IssueTypeBug         IssueType = "BUG"
	IssueTypeFeature     IssueType = "FEATURE"
	IssueTypeEnhancement IssueType = "ENHANCEMENT"
	IssueTypeTask        IssueType = "TASK"
)

type Issue struct {
	Model
	Title       string        `json:"title" gorm:"type:text;not null"`
	Description string        `json:"description" gorm:"type:text;not null"`
	Status      IssueStatus   `json:"status" gorm:"type:text;not null;default:'OPEN'"`
	Priority    IssuePriority `json:"priority" gorm:"type:text;not null;default:'MEDIUM'"`
	Type        IssueType     `json:"type" gorm:"type:text;not null;default:'TASK'"`
	DueDate     *time.Time    `json:"dueDate"`

	AssigneeID   *uuid.UUID  `json:"assigneeId" gorm:"type:uuid"`
	Assignee     *User       `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
	ReporterID   uuid.UUID   `json:"reporterId" gorm:"type:uuid;not null"`
	Reporter     *User       `json:"reporter,omitempty" gorm:"foreignKey:ReporterID"`
	DepartmentID *uuid.UUID  `json:"departmentId" gorm:"type:uuid"`
	Department   *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`
	ProjectID    *uuid.UUID  `json:"projectId" gorm:"type:uuid"`
	Project      *Project    `json:"project,omitempty" gorm:"foreignKey:ProjectID"`

	Comments    []Comment    `json:"comments" gorm:"foreignKey:IssueID;constraint:OnDelete:CASCADE"`
	Attachments []Attachment `json:"attachments" gorm:"foreignKey:IssueID;constraint:OnDelete:CASCADE"`
}

func (m Issue) TableName() string {
	return "issues"
}

var IssueRelations = []string{"Assignee", "Reporter", "Department", "Project", "Comments", "Comments.User", "Attachments"}
