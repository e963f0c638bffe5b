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
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func TestUserServiceCreate(t *testing.T) {
	t.Run("should store a bcrypt hash instead of the password", func(t *testing.T) {
		userRepository := mocks.NewUserRepository(t)
		userRepository.On("FindByEmail", "jane@example.com").Return(models.User{}, gorm.ErrRecordNotFound)
		userRepository.On("Create", mock.Anything, mock.Anything).Return(nil)

		user := models.User{FirstName: "Jane", LastName: "Doe", Email: "jane@example.com"}
		err := NewUserService(userRepository, mocks.NewOrganizationRepository(t), mocks.NewDepartmentRepository(t)).Create(&user, "secret-password")

		require.NoError(t, err)
		assert.NotEqual(t, "secret-password", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret-password")))
	})

	t.Run("should answer 409 if the email is taken", func(t *testing.T) {
		userRepository := mocks.NewUserRepository(t)
		userRepository.On("FindByEmail", "jane@example.com").Return(models.User{Model: models.Model{ID: uuid.New()}}, nil)

		user := models.User{Email: "jane@example.com"}
		err := NewUserService(userRepository, mocks.NewOrganizationRepository(t), mocks.NewDepartmentRepository(t)).Create(&user, "secret-password")

		requireHTTPError(t, err, 409, "User with this email already exists")
		userRepository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("should answer 404 if the department does not exist", func(t *testing.T) {
		departmentID := uuid.New()
		departmentRepository := mocks.NewDepartmentRepository(t)
		departmentRepository.On("Read", departmentID).Return(models.Department{}, gorm.ErrRecordNotFound)

		user := models.User{Email: "jane@example.com", DepartmentID: &departmentID}
		err := NewUserService(mocks.NewUserRepository(t), mocks.NewOrganizationRepository(t), departmentRepository).Create(&user, "secret-password")

		requireHTTPError(t, err, 404, "Department not found")
	})
}

func TestUserServiceUpdate(t *testing.T) {
	user := models.User{Model: models.Model{ID: uuid.New()}, FirstName: "Jane", Email: "jane@example.com", Password: "old-hash"}

	t.Run("keeping the own email is not a conflict", func(t *testing.T) {
		userRepository := mocks.NewUserRepository(t)
		userRepository.On("Read", user.ID).Return(user, nil)
		userRepository.On("FindByEmail", "jane@example.com").Return(user, nil)
		userRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		email, name := "jane@example.com", "Janet"
		updated, err := NewUserService(userRepository, mocks.NewOrganizationRepository(t), mocks.NewDepartmentRepository(t)).Update(user.ID, dtos.UserPatchRequest{Email: &email, FirstName: &name})

		require.NoError(t, err)
		assert.Equal(t, "Janet", updated.FirstName)
		assert.Equal(t, "old-hash", updated.Password)
	})

	t.Run("a new password is hashed", func(t *testing.T) {
		userRepository := mocks.NewUserRepository(t)
		userRepository.On("Read", user.ID).Return(user, nil)
		userRepository.On("Save", mock.Anything, mock.Anything).Return(nil)

		password := "another-password"
		updated, err := NewUserService(userRepository, mocks.NewOrganizationRepository(t), mocks.NewDepartmentRepository(t)).Update(user.ID, dtos.UserPatchRequest{Password: &password})

		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte(password)))
	})
}

func TestUserServiceDeactivate(t *testing.T) {
	user := models.User{Model: models.Model{ID: uuid.New()}, Status: models.UserStatusActive}

	userRepository := mocks.NewUserRepository(t)
	userRepository.On("Read", user.ID).Return(user, nil)
	userRepository.On("Save", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Status == models.UserStatusInactive
	})).Return(nil)

	err := NewUserService(userRepository, nil, nil).Deactivate(user.ID)

	assert.NoError(t, err)
	userRepository.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUserServiceEnsureUser(t *testing.T) {
	userRepository := mocks.NewUserRepository(t)
	userRepository.On("FindByEmail", "root@example.com").Return(models.User{Model: models.Model{ID: uuid.New()}}, nil)

	created, err := NewUserService(userRepository, nil, nil).EnsureUser(&models.User{Email: "root@example.com"}, "secret-password")

	assert.NoError(t, err)
	assert.False(t, created)
}

func TestUserServiceEnsureUserNormalizesEmail(t *testing.T) {
	userRepository := mocks.NewUserRepository(t)
	userRepository.On("FindByEmail", "admin@acme.io").Return(models.User{}, gorm.ErrRecordNotFound)
	userRepository.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.Email == "admin@acme.io"
	})).Return(nil)

	user := models.User{Email: " Admin@Acme.io ", Role: models.UserRoleSuperAdmin}
	created, err := NewUserService(userRepository, mocks.NewOrganizationRepository(t), mocks.NewDepartmentRepository(t)).EnsureUser(&user, "secret-password")

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "admin@acme.io", user.Email)
}
