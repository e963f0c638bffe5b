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

package mocks

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/stretchr/testify/mock"
)

type AuthSession struct {
	mock.Mock
}

var _ shared.AuthSession = &AuthSession{}

func NewAuthSession(t testingT) *AuthSession {
	m := &AuthSession{}
	register(&m.Mock, t)
	return m
}

func (_m *AuthSession) GetUserID() uuid.UUID {
	ret := _m.Called()
	return ret.Get(0).(uuid.UUID)
}

func (_m *AuthSession) GetEmail() string {
	ret := _m.Called()
	return ret.String(0)
}

func (_m *AuthSession) GetRole() models.UserRole {
	ret := _m.Called()
	return ret.Get(0).(models.UserRole)
}

type AccessControl struct {
	mock.Mock
}

var _ shared.AccessControl = &AccessControl{}

func NewAccessControl(t testingT) *AccessControl {
	m := &AccessControl{}
	register(&m.Mock, t)
	return m
}

func (_m *AccessControl) IsAllowed(role models.UserRole, object shared.Object, action shared.Action) (bool, error) {
	ret := _m.Called(role, object, action)
	return ret.Bool(0), ret.Error(1)
}

type TokenService struct {
	mock.Mock
}

var _ shared.TokenService = &TokenService{}

func NewTokenService(t testingT) *TokenService {
	m := &TokenService{}
	register(&m.Mock, t)
	return m
}

func (_m *TokenService) Sign(user models.User) (string, error) {
	ret := _m.Called(user)
	return ret.String(0), ret.Error(1)
}

func (_m *TokenService) Verify(token string) (shared.AuthSession, error) {
	ret := _m.Called(token)

	var r0 shared.AuthSession
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(shared.AuthSession)
	}
	return r0, ret.Error(1)
}
