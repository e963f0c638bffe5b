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

package controllers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/mocks"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserControllerCreate(t *testing.T) {
	t.Run("the response never contains the password", func(t *testing.T) {
		ctx, rec := jsonContext(http.MethodPost, "/users/", `{"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com", "password": "secret-password"}`)
		withSession(ctx, models.UserRoleAdmin)

		userService := mocks.NewUserService(t)
		userService.On("Create", mock.Anything, "secret-password").Return(func(u *models.User, _ string) error {
			u.Password = "$2a$12$hash"
			return nil
		})

		err := NewUserController(userService).Create(ctx)

		require.NoError(t, err)
		assert.Equal(t, 201, rec.Code)
		assert.NotContains(t, rec.Body.String(), "password")
		assert.NotContains(t, rec.Body.String(), "hash")
	})

	t.Run("passwords need at least 8 characters", func(t *testing.T) {
		ctx, _ := jsonContext(http.MethodPost, "/users/", `{"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com", "password": "short"}`)

		err := NewUserController(nil).Create(ctx)

		assertHTTPError(t, err, 400, "password must be at least 8 characters")
	})

	t.Run("admins cannot create super admins", func(t *testing.T) {
		ctx, _ := jsonContext(http.MethodPost, "/users/", `{"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com", "password": "secret-password", "role": "SUPER_ADMIN"}`)
		withSession(ctx, models.UserRoleAdmin)

		err := NewUserController(mocks.NewUserService(t)).Create(ctx)

		assertHTTPError(t, err, 403, "you are not allowed to assign a role above your own")
	})
}

func TestUserControllerUpdate(t *testing.T) {
	id := uuid.New()

	t.Run("users cannot promote themselves", func(t *testing.T) {
		ctx, _ := jsonContext(http.MethodPut, "/users/"+id.String()+"/", `{"role": "ADMIN"}`)
		withID(ctx, id)
		shared.SetSelfService(ctx)

		err := NewUserController(nil).Update(ctx)

		assertHTTPError(t, err, 403, "")
	})

	t.Run("admins cannot grant a role above their own", func(t *testing.T) {
		ctx, _ := jsonContext(http.MethodPut, "/users/"+id.String()+"/", `{"role": "SUPER_ADMIN"}`)
		withID(ctx, id)
		withSession(ctx, models.UserRoleAdmin)

		err := NewUserController(mocks.NewUserService(t)).Update(ctx)

		assertHTTPError(t, err, 403, "you are not allowed to assign a role above your own")
	})

	t.Run("admins can promote a user up to their own role", func(t *testing.T) {
		ctx, _ := jsonContext(http.MethodPut, "/users/"+id.String()+"/", `{"role": "ADMIN"}`)
		withID(ctx, id)
		withSession(ctx, models.UserRoleAdmin)

		role := "ADMIN"
		userService := mocks.NewUserService(t)
		userService.On("Update", id, dtos.UserPatchRequest{Role: &role}).Return(models.User{Model: models.Model{ID: id}, Role: models.UserRoleAdmin}, nil)

		err := NewUserController(userService).Update(ctx)

		require.NoError(t, err)
	})

	t.Run("users can change their own name", func(t *testing.T) {
		ctx, rec := jsonContext(http.MethodPut, "/users/"+id.String()+"/", `{"firstName": "Janet"}`)
		withID(ctx, id)
		shared.SetSelfService(ctx)

		name := "Janet"
		userService := mocks.NewUserService(t)
		userService.On("Update", id, dtos.UserPatchRequest{FirstName: &name}).Return(models.User{Model: models.Model{ID: id}, FirstName: name}, nil)

		err := NewUserController(userService).Update(ctx)

		require.NoError(t, err)
		var user dtos.UserDTO
		decodeEnvelope(t, rec, &user)
		assert.Equal(t, "Janet", user.FirstName)
	})
}

func TestUserControllerDelete(t *testing.T) {
	id := uuid.New()
	ctx, rec := jsonContext(http.MethodDelete, "/users/"+id.String()+"/", "")
	withID(ctx, id)

	userService := mocks.NewUserService(t)
	userService.On("Deactivate", id).Return(nil)

	err := NewUserController(userService).Delete(ctx)

	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
}

func TestUserControllerWhoami(t *testing.T) {
	ctx, rec := jsonContext(http.MethodGet, "/whoami/", "")
	userID := withSession(ctx, models.UserRoleManager)

	userService := mocks.NewUserService(t)
	userService.On("Read", userID, []string{"Organization", "Department"}).Return(models.User{Model: models.Model{ID: userID}, Role: models.UserRoleManager}, nil)

	err := NewUserController(userService).Whoami(ctx)

	require.NoError(t, err)
	var user dtos.UserDTO
	decodeEnvelope(t, rec, &user)
	assert.Equal(t, userID, user.ID)
	assert.Equal(t, "MANAGER", user.Role)
}
