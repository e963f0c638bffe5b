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

// Attachment only stores metadata. The file itself lives wherever FileURL points.
type Attachment struct {
	Model
	FileName string `json:"fileName" gorm:"type:text;not null"`
	FileURL  string `json:"fileUrl" gorm:"type:text;not null"`
	FileType string `json:"fileType" gorm:"type:text;not null"`
	FileSize int64  `json:"fileSize" gorm:"not null"`

	IssueID uuid.UUID  `json:"issueId" gorm:"type:uuid;not null"`
	Issue   *Issue     `json:"issue,omitempty" gorm:"foreignKey:IssueID"`
	UserID  *uuid.UUID `json:"userId" gorm:"type:uuid"`
	User    *User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (m Attachment) TableName() string {
	return "attachments"
}

var AttachmentRelations = []string{"Issue", "User"}
