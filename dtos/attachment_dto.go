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

type AttachmentCreateRequest struct {
	FileName string    `json:"fileName" validate:"required,min=1,max=255"`
	FileURL  string    `json:"fileUrl" validate:"required,min=1"`
	FileType string    `json:"fileType" validate:"required,min=1,max=255"`
	FileSize int64     `json:"fileSize" validate:"gte=0"`
	IssueID  uuid.UUID `json:"issueId" validate:"required"`
}

type AttachmentDTO struct {
	ID        uuid.UUID  `json:"id"`
	FileName  string     `json:"fileName"`
	FileURL   string     `json:"fileUrl"`
	FileType  string     `json:"fileType"`
	FileSize  int64      `json:"fileSize"`
	IssueID   uuid.UUID  `json:"issueId"`
	UserID    *uuid.UUID `json:"userId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`

	Issue *IssueDTO `json:"issue,omitempty"`
	User  *UserDTO  `json:"user,omitempty"`
}
