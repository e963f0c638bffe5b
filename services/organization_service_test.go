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
	"github.com/l3montree-dev/issuetracker/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func TestOrganizationServiceCreate(t *testing.T) {
	t.Run("should derive the slug from the name and take the first free one", func(t *testing.T) {
		organizationRepository := mocks.NewOrganizationRepository(t)
		organizationRepository.On("FirstFreeSlug", "acme-corp").Return("acme-corp-1", nil)
		organizationRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		org := models.Organization{Name: "Acme Corp"}
		err := NewOrganizationService(organizationRepository).Create(&org)

		assert.NoError(t, err)
		assert.Equal(t, "acme-corp-1", org.Slug)
	})

	t.Run("should reject a name without letters or digits", func(t *testing.T) {
		organizationRepository := mocks.NewOrganizationRepository(t)

		err := NewOrganizationService(organizationRepository).Create(&models.Organization{Name: "!!!"})

		requireHTTPError(t, err, 400, "")
		organizationRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should answer 409 if the slug was taken concurrently", func(t *testing.T) {
		organizationRepository := mocks.NewOrganizationRepository(t)
		organizationRepository.On("FirstFreeSlug", "acme").Return("acme", nil)
		organizationRepository.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

		err := NewOrganizationService(organizationRepository).Create(&models.Organization{Name: "Acme"})

		requireHTTPError(t, err, 409, "organization with that slug already exists")
	})
}

func TestOrganizationServiceUpdate(t *testing.T) {
	id := uuid.New()

	t.Run("should keep the slug when renaming", func(t *testing.T) {
		organizationRepository := mocks.NewOrganizationRepository(t)
		organizationRepository.On("Read", id).Return(models.Organization{Model: models.Model{ID: id}, Name: "Acme", Slug: "acme"}, nil)
		organizationRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		org, err := NewOrganizationService(organizationRepository).Update(id, dtos.OrganizationPatchRequest{Name: utils.Ptr("Acme Industries")})

		assert.NoError(t, err)
		assert.Equal(t, "Acme Industries", org.Name)
		assert.Equal(t, "acme", org.Slug)
	})

	t.Run("should not save an empty patch", func(t *testing.T) {
		organizationRepository := mocks.NewOrganizationRepository(t)
		organizationRepository.On("Read", id).Return(models.Organization{Model: models.Model{ID: id}, Name: "Acme"}, nil)

		_, err := NewOrganizationService(organizationRepository).Update(id, dtos.OrganizationPatchRequest{})

		assert.NoError(t, err)
		organizationRepository.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("should answer 404 for a missing organization", func(t *testing.T) {
		organizationRepository := mocks.NewOrganizationRepository(t)
		organizationRepository.On("Read", id).Return(models.Organization{}, gorm.ErrRecordNotFound)

		_, err := NewOrganizationService(organizationRepository).Update(id, dtos.OrganizationPatchRequest{Name: utils.Ptr("x")})

		requireHTTPError(t, err, 404, "Organization not found")
	})
}
