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

type Organization struct {
	Model
	Name        string  `json:"name" gorm:"type:text;not null"`
	Slug        string  `json:"slug" gorm:"type:text;uniqueIndex;not null"`
	Description *string `json:"description" gorm:"type:text"`

	Departments []Department `json:"departments" gorm:"foreignKey:OrganizationID"`
	Users       []User       `json:"users" gorm:"foreignKey:OrganizationID"`
}

func (m Organization) TableName() string {
	return "organizations"
}

// OrganizationRelations lists the relations that may be eager loaded on read.
var OrganizationRelations = []string{"Departments", "Users"}
