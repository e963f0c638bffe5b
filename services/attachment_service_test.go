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
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestAttachmentServiceDeleteFromIssue(t *testing.T) {
	issueID := uuid.New()
	attachmentID := uuid.New()

	t.Run("should answer 404 if the attachment belongs to another issue", func(t *testing.T) {
		attachmentRepository := mocks.NewAttachmentRepository(t)
		attachmentRepository.On("Read", attachmentID).Return(models.Attachment{Model: models.Model{ID: attachmentID}, IssueID: uuid.New()}, nil)
		issueRepository := mocks.NewIssueRepository(t)
		issueRepository.On("Read", issueID).Return(models.Issue{}, nil)

		err := NewAttachmentService(attachmentRepository, issueRepository, nil).DeleteFromIssue(issueID, attachmentID)

		requireHTTPError(t, err, 404, "Attachment not found")
		attachmentRepository.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("should answer 404 for a missing issue", func(t *testing.T) {
		issueRepository := mocks.NewIssueRepository(t)
		issueRepository.On("Read", issueID).Return(models.Issue{}, gorm.ErrRecordNotFound)

		err := NewAttachmentService(mocks.NewAttachmentRepository(t), issueRepository, nil).DeleteFromIssue(issueID, attachmentID)

		requireHTTPError(t, err, 404, "Issue not found")
	})

	t.Run("should delete an attachment of the issue", func(t *testing.T) {
		attachmentRepository := mocks.NewAttachmentRepository(t)
		attachmentRepository.On("Read", attachmentID).Return(models.Attachment{Model: models.Model{ID: attachmentID}, IssueID: issueID}, nil)
		attachmentRepository.On("Delete", mock.Anything, attachmentID).Return(nil)
		issueRepository := mocks.NewIssueRepository(t)
		issueRepository.On("Read", issueID).Return(models.Issue{}, nil)

		err := NewAttachmentService(attachmentRepository, issueRepository, nil).DeleteFromIssue(issueID, attachmentID)

		assert.NoError(t, err)
	})
}

func TestAttachmentServiceCreate(t *testing.T) {
	issueID := uuid.New()

	t.Run("should allow an attachment without uploader", func(t *testing.T) {
		attachmentRepository := mocks.NewAttachmentRepository(t)
		attachmentRepository.On("Create", mock.Anything, mock.Anything).Return(nil)
		issueRepository := mocks.NewIssueRepository(t)
		issueRepository.On("Read", issueID).Return(models.Issue{}, nil)

		err := NewAttachmentService(attachmentRepository, issueRepository, mocks.NewUserRepository(t)).Create(&models.Attachment{FileName: "a.png", IssueID: issueID})

		assert.NoError(t, err)
	})
}
