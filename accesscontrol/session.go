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

package accesscontrol

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/shared"
)

var _ shared.AuthSession = session{}

type session struct {
	userID uuid.UUID
	email  string
	role   models.UserRole
}

func NewSession(userID uuid.UUID, email string, role models.UserRole) session {
	return session{
		userID: userID,
		email:  email,
		role:   role,
	}
}

func (s session) GetUserID() uuid.UUID {
	return s.userID
}

func (s session) GetEmail() string {
	return s.email
}

func (s session) GetRole() models.UserRole {
	return s.role
}
