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
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRequestAccessServiceCreate(t *testing.T) {
	t.Run("should store a new request as pending", func(t *testing.T) {
		repository := mocks.NewRequestAccessRepository(t)
		repository.On("FindByEmail", "ceo@acme.io").Return(models.RequestAccess{}, gorm.ErrRecordNotFound)
		repository.On("Create", mock.Anything, mock.Anything).Return(nil)

		request := models.RequestAccess{Email: "ceo@acme.io", Status: models.RequestAccessStatusApproved}
		err := NewRequestAccessService(repository).Create(&request)

		require.NoError(t, err)
		assert.Equal(t, models.RequestAccessStatusPending, request.Status)
	})

	t.Run("should answer 409 for a known email", func(t *testing.T) {
		repository := mocks.NewRequestAccessRepository(t)
		repository.On("FindByEmail", "ceo@acme.io").Return(models.RequestAccess{}, nil)

		err := NewRequestAccessService(repository).Create(&models.RequestAccess{Email: "ceo@acme.io"})

		requireHTTPError(t, err, 409, "A request with this email already exists")
	})
}

func TestRequestAccessServiceDecide(t *testing.T) {
	id := uuid.New()

	t.Run("should approve a pending request", func(t *testing.T) {
		repository := mocks.NewRequestAccessRepository(t)
		repository.On("Read", id).Return(models.RequestAccess{Model: models.Model{ID: id}, Status: models.RequestAccessStatusPending}, nil)
		repository.On("Save", mock.Anything, mock.Anything).Return(nil)

		request, err := NewRequestAccessService(repository).Decide(id, models.RequestAccessStatusApproved)

		require.NoError(t, err)
		assert.Equal(t, models.RequestAccessStatusApproved, request.Status)
	})

	t.Run("should not decide twice", func(t *testing.T) {
		repository := mocks.NewRequestAccessRepository(t)
		repository.On("Read", id).Return(models.RequestAccess{Model: models.Model{ID: id}, Status: models.RequestAccessStatusRejected}, nil)

		_, err := NewRequestAccessService(repository).Decide(id, models.RequestAccessStatusApproved)

		requireHTTPError(t, err, 409, "request is already REJECTED")
	})

	t.Run("pending is not a decision", func(t *testing.T) {
		_, err := NewRequestAccessService(mocks.NewRequestAccessRepository(t)).Decide(id, models.RequestAccessStatusPending)

		requireHTTPError(t, err, 400, "")
	})

	t.Run("should answer 404 for a missing request", func(t *testing.T) {
		repository := mocks.NewRequestAccessRepository(t)
		repository.On("Read", id).Return(models.RequestAccess{}, gorm.ErrRecordNotFound)

		_, err := NewRequestAccessService(repository).Decide(id, models.RequestAccessStatusRejected)

		requireHTTPError(t, err, 404, "Request not found")
	})
}

func TestRequestAccessServiceReset(t *testing.T) {
	id := uuid.New()
	repository := mocks.NewRequestAccessRepository(t)
	repository.On("Read", id).Return(models.RequestAccess{Model: models.Model{ID: id}, Status: models.RequestAccessStatusApproved}, nil)
	repository.On("Save", mock.Anything, mock.Anything).Return(nil)

	request, err := NewRequestAccessService(repository).Reset(id)

	require.NoError(t, err)
	assert.Equal(t, models.RequestAccessStatusPending, request.Status)
}

func TestRequestAccessServiceStats(t *testing.T) {
	repository := mocks.NewRequestAccessRepository(t)
	repository.On("CountByStatus").Return(map[models.RequestAccessStatus]int64{
		models.RequestAccessStatusPending:  3,
		models.RequestAccessStatusApproved: 2,
	}, nil)

	stats, err := NewRequestAccessService(repository).Stats()

	require.NoError(t, err)
	assert.Equal(t, int64(5), stats.TotalRequests)
	assert.Equal(t, int64(3), stats.PendingRequests)
	assert.Equal(t, int64(2), stats.ApprovedRequests)
	assert.Equal(t, int64(0), stats.RejectedRequests)
}
