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

import "github.com/google/uuid"

type UserRole string

const (
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
	UserRoleAdmin      UserRole = "ADMIN"
	UserRoleManager    UserRole = "MANAGER"
	UserRoleEmployee   UserRole = "EMPLOYEE"
)

// Rank orders roles by privilege, an unknown role ranks lowest.
func (r UserRole) Rank() int {
	switch r {
	case UserRoleSuperAdmin:
		return 4
	case UserRoleAdmin:
		return 3
	case UserRoleManager:
		return 2
	case UserRoleEmployee:
		return 1
	}
	return 0
}

type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
)

type User struct {
	Model
	FirstName string `json:"firstName" gorm:"type:text;not null"`
	LastName  string `json:"lastName" gorm:"type:text;not null"`
	Email     string `json:"email" gorm:"type:text;uniqueIndex;not null"`
	// bcrypt hash, never serialized
	Password string     `json:"-" gorm:"type:text;not null"`
	Role     UserRole   `json:"role" gorm:"type:text;not null;default:'EMPLOYEE'"`
	Status   UserStatus `json:"status" gorm:"type:text;not null;default:'active'"`

	OrganizationID *uuid.UUID    `json:"organizationId" gorm:"type:uuid"`
	Organization   *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	DepartmentID   *uuid.UUID    `json:"departmentId" gorm:"type:uuid"`
	Department     *Department   `json:"department,omitempty" gorm:"foreignKey:DepartmentID"`

	AssignedIssues []Issue   `json:"assignedIssues" gorm:"foreignKey:AssigneeID"`
	ReportedIssues []Issue   `json:"reportedIssues" gorm:"foreignKey:ReporterID"`
	Comments       []Comment `json:"comments" gorm:"foreignKey:UserID"`
}

func (m User) TableName() string {
	return "users"
}

func (m User) FullName() string {
	return m.FirstName + " " + m.LastName
}

func (m User) IsActive() bool {
	return m.Status == UserStatusActive
}

var UserRelations = []string{"Organization", "Department", "AssignedIssues", "ReportedIssues", "Comments"}
