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

package transformer

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/utils"
)

func CommentCreateRequestToModel(c dtos.CommentCreateRequest, userID uuid.UUID) models.Comment {
	return models.Comment{
		Content: c.Content,
		IssueID: c.IssueID,
		UserID:  userID,
	}
}

func ApplyCommentPatchRequestToModel(p dtos.CommentPatchRequest, comment *models.Comment) bool {
	if p.Content == nil {
		return false
	}
	comment.Content = *p.Content
	return true
}

func CommentModelToDTO(comment models.Comment) dtos.CommentDTO {
	var user *dtos.UserDTO
	if comment.User != nil {
		user = utils.Ptr(UserModelToDTO(*comment.User))
	}
	var issue *dtos.IssueDTO
	if comment.Issue != nil {
		issue = utils.Ptr(IssueModelToDTO(*comment.Issue))
	}

	return dtos.CommentDTO{
		ID:        comment.ID,
		Content:   comment.Content,
		UserID:    comment.UserID,
		IssueID:   comment.IssueID,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
		User:      user,
		Issue:     issue,
	}
}
