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

type CommentCreateRequest struct {
	Content string    `json:"content" validate:"required,min=1,max=10000"`
	IssueID uuid.UUID `json:"issueId" validate:"required"`
}

type CommentPatchRequest struct {
	Content *string `json:"content" validate:"required,min=1,max=10000"`
}

type CommentDTO struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	UserID    uuid.UUID `json:"userId"`
	IssueID   uuid.UUID `json:"issueId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User  *UserDTO  `json:"user,omitempty"`
	Issue *IssueDTO `json:"issue,omitempty"`
}
