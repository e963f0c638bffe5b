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

package services

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/labstack/echo/v4"
)

type AttachmentService struct {
	attachmentRepository shared.AttachmentRepository
	issueRepository      shared.IssueRepository
	userRepository       shared.UserRepository
}

var _ shared.AttachmentService = &AttachmentService{}

func NewAttachmentService(attachmentRepository shared.AttachmentRepository, issueRepository shared.IssueRepository, userRepository shared.UserRepository) *AttachmentService {
	return &AttachmentService{
		attachmentRepository: attachmentRepository,
		issueRepository:      issueRepository,
		userRepository:       userRepository,
	}
}

func (s *AttachmentService) Create(attachment *models.Attachment) error {
	if err := ensureExists(s.issueRepository.Read, &attachment.IssueID, "Issue"); err != nil {
		return err
	}
	if err := ensureExists(s.userRepository.Read, attachment.UserID, "User"); err != nil {
		return err
	}

	if err := s.attachmentRepository.Create(nil, attachment); err != nil {
		return echo.NewHTTPError(500, "Failed to upload attachment").WithInternal(err)
	}
	return nil
}

func (s *AttachmentService) Delete(id uuid.UUID) error {
	if _, err := s.attachmentRepository.Read(id); err != nil {
		return readError(err, "Attachment")
	}
	if err := s.attachmentRepository.Delete(nil, id); err != nil {
		return echo.NewHTTPError(500, "Failed to delete attachment").WithInternal(err)
	}
	return nil
}

// DeleteFromIssue only deletes the attachment if it belongs to the issue.
func (s *AttachmentService) DeleteFromIssue(issueID uuid.UUID, attachmentID uuid.UUID) error {
	if err := ensureExists(s.issueRepository.Read, &issueID, "Issue"); err != nil {
		return err
	}
	attachment, err := s.attachmentRepository.Read(attachmentID)
	if err != nil {
		return readError(err, "Attachment")
	}
	if attachment.IssueID != issueID {
		return echo.NewHTTPError(404, "Attachment not found")
	}
	if err := s.attachmentRepository.Delete(nil, attachmentID); err != nil {
		return echo.NewHTTPError(500, "Failed to delete attachment").WithInternal(err)
	}
	return nil
}

func (s *AttachmentService) Read(id uuid.UUID, relations []string) (models.Attachment, error) {
	attachment, err := s.attachmentRepository.ReadWithRelations(id, relations)
	if err != nil {
		return attachment, readError(err, "Attachment")
	}
	return attachment, nil
}

func (s *AttachmentService) List(issueID *uuid.UUID, relations []string) ([]models.Attachment, error) {
	if err := ensureExists(s.issueRepository.Read, issueID, "Issue"); err != nil {
		return nil, err
	}
	attachments, err := s.attachmentRepository.FindMany(issueID, relations)
	if err != nil {
		return nil, echo.NewHTTPError(500, "Failed to fetch attachments").WithInternal(err)
	}
	return attachments, nil
}
