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
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestIssueServiceCreate(t *testing.T) {
	reporterID := uuid.New()

	t.Run("should answer 404 for an unknown assignee", func(t *testing.T) {
		assigneeID := uuid.New()
		userRepository := mocks.NewUserRepository(t)
		userRepository.On("Read", reporterID).Return(models.User{}, nil)
		userRepository.On("Read", assigneeID).Return(models.User{}, gorm.ErrRecordNotFound)
		issueRepository := mocks.NewIssueRepository(t)

		issue := models.Issue{Title: "Broken login", Description: "500 on submit", ReporterID: reporterID, AssigneeID: &assigneeID}
		err := NewIssueService(issueRepository, userRepository, mocks.NewDepartmentRepository(t), mocks.NewProjectRepository(t)).Create(&issue)

		requireHTTPError(t, err, 404, "Assignee not found")
		issueRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should create an issue without optional references", func(t *testing.T) {
		userRepository := mocks.NewUserRepository(t)
		userRepository.On("Read", reporterID).Return(models.User{}, nil)
		issueRepository := mocks.NewIssueRepository(t)
		issueRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		issue := models.Issue{Title: "Broken login", Description: "500 on submit", ReporterID: reporterID}
		err := NewIssueService(issueRepository, userRepository, mocks.NewDepartmentRepository(t), mocks.NewProjectRepository(t)).Create(&issue)

		assert.NoError(t, err)
	})
}

func TestIssueServiceUpdate(t *testing.T) {
	t.Run("any status can follow any other status", func(t *testing.T) {
		issue := models.Issue{Model: models.Model{ID: uuid.New()}, Title: "Broken login", Status: models.IssueStatusOpen}

		issueRepository := mocks.NewIssueRepository(t)
		issueRepository.On("Read", issue.ID).Return(func(uuid.UUID) (models.Issue, error) {
			return issue, nil
		})
		issueRepository.On("Save", mock.Anything, mock.Anything).Return(func(_ *gorm.DB, saved *models.Issue) error {
			issue = *saved
			return nil
		})
		s := NewIssueService(issueRepository, mocks.NewUserRepository(t), mocks.NewDepartmentRepository(t), mocks.NewProjectRepository(t))

		for _, status := range []models.IssueStatus{models.IssueStatusClosed, models.IssueStatusOpen, models.IssueStatusResolved, models.IssueStatusInProgress} {
			next := string(status)
			updated, err := s.Update(issue.ID, dtos.IssuePatchRequest{Status: &next})
			require.NoError(t, err)
			assert.Equal(t, status, updated.Status)
		}
		assert.Equal(t, models.IssueStatusInProgress, issue.Status)
	})

	t.Run("an empty patch does not write", func(t *testing.T) {
		issue := models.Issue{Model: models.Model{ID: uuid.New()}, Title: "Broken login"}
		issueRepository := mocks.NewIssueRepository(t)
		issueRepository.On("Read", issue.ID).Return(issue, nil)

		updated, err := NewIssueService(issueRepository, mocks.NewUserRepository(t), mocks.NewDepartmentRepository(t), mocks.NewProjectRepository(t)).Update(issue.ID, dtos.IssuePatchRequest{})

		require.NoError(t, err)
		assert.Equal(t, "Broken login", updated.Title)
		issueRepository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("should answer 404 for a missing issue", func(t *testing.T) {
		id := uuid.New()
		issueRepository := mocks.NewIssueRepository(t)
		issueRepository.On("Read", id).Return(models.Issue{}, gorm.ErrRecordNotFound)

		_, err := NewIssueService(issueRepository, nil, nil, nil).Update(id, dtos.IssuePatchRequest{})

		requireHTTPError(t, err, 404, "Issue not found")
	})
}

func TestIssueServiceDelete(t *testing.T) {
	id := uuid.New()
	issueRepository := mocks.NewIssueRepository(t)
	issueRepository.On("Read", id).Return(models.Issue{Model: models.Model{ID: id}}, nil)
	issueRepository.On("Delete", mock.Anything, id).Return(nil)

	assert.NoError(t, NewIssueService(issueRepository, nil, nil, nil).Delete(id))
}
