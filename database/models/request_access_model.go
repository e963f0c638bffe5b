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

type RequestAccessStatus string

const (
	RequestAccessStatusPending  RequestAccessStatus = "PENDING"
	RequestAccessStatusApproved RequestAccessStatus = "APPROVED"
	RequestAccessStatusRejected RequestAccessStatus = "REJECTED"
)

type RequestAccess struct {
	Model
	CompanyName string              `json:"companyName" gorm:"type:text;not null"`
	Name        string              `json:"name" gorm:"type:text;not null"`
	Email       string              `json:"email" gorm:"type:text;uniqueIndex;not null"`
	Phone       string              `json:"phone" gorm:"type:text;not null"`
	TeamSize    string              `json:"teamSize" gorm:"type:text;not null"`
	Message     *string             `json:"message" gorm:"type:text"`
	Status      RequestAccessStatus `json:"status" gorm:"type:text;not null;default:'PENDING'"`
}

func (m RequestAccess) TableName() string {
	return "request_access"
}
