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

type Department struct {
	Model
	Name        string  `json:"name" gorm:"type:text;not null"`
	Description *string `json:"description" gorm:"type:text"`

	OrganizationID *uuid.UUID    `json:"organizationId" gorm:"type:uuid"`
	Organization   *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`

	Users    []User    `json:"users" gorm:"foreignKey:DepartmentID"`
	Issues   []Issue   `json:"issues" gorm:"foreignKey:DepartmentID"`
	Projects []Project `json:"projects" gorm:"foreignKey:DepartmentID"`
}

func (m Department) TableName() string {
	return "departments"
}

var DepartmentRelations = []string{"Organization", "Users", "Issues", "Projects"}
