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
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOnHold    ProjectStatus = "on-hold"
)

type ProjectPriority string

const (
	ProjectPriorityLow    ProjectPriority = "low"
	ProjectPriorityMedium ProjectPriority = "medium"
	ProjectPriorityHigh   ProjectPriority = "high"
)

type Project struct {
	Model
	Name        string          `json:"name" gorm:"type:text;not null"`
	Description string          `json:"description" gorm:"type:text;not null;default:''"`
	Status      ProjectStatus   `json:"status" gorm:"type:text;not null;default:'active'"`
	Priority    ProjectPriority `json:"priority" gorm:"type:text;not null;default:'medium'"`
	StartDate   datatypes.Date  `json:"startDate" gorm:"not null"`
	EndDate     datatypes.Date  `json:"endDate" gorm:"not null"`

	DepartmentID uuid.UUID   `json:"departmentId" gorm:"type:uuid;not null"`
	Department   *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`

	TeamMembers []User  `json:"teamMembers" gorm:"many2many:project_team_members;joinForeignKey:ProjectID;joinReferences:UserID"`
	Issues      []Issue `json:"issues" gorm:"foreignKey:ProjectID"`
}

func (m Project) TableName() string {
	return "projects"
}

var ProjectRelations = []string{"Department", "TeamMembers", "Issues"}
