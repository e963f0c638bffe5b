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

func AttachmentCreateRequestToModel(c dtos.AttachmentCreateRequest, userID uuid.UUID) models.Attachment {
	return models.Attachment{
		FileName: c.FileName,
		FileURL:  c.FileURL,
		FileType: c.FileType,
		FileSize: c.FileSize,
		IssueID:  c.IssueID,
		UserID:   &userID,
	}
}

func AttachmentModelToDTO(attachment models.Attachment) dtos.AttachmentDTO {
	var issue *dtos.IssueDTO
	if attachment.Issue != nil {
		issue = utils.Ptr(IssueModelToDTO(*attachment.Issue))
	}
	var user *dtos.UserDTO
	if attachment.User != nil {
		user = utils.Ptr(UserModelToDTO(*attachment.User))
	}

	return dtos.AttachmentDTO{
		ID:        attachment.ID,
		FileName:  attachment.FileName,
		FileURL:   attachment.FileURL,
		FileType:  attachment.FileType,
		FileSize:  attachment.FileSize,
		IssueID:   attachment.IssueID,
		UserID:    attachment.UserID,
		CreatedAt: attachment.CreatedAt,
		UpdatedAt: attachment.UpdatedAt,
		Issue:     issue,
		User:      user,
	}
}
