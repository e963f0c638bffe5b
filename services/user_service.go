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
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/l3montree-dev/issuetracker/transformer"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const passwordHashCost = 12

const emailTakenMessage = "User with this email already exists"

func hashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), passwordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

type UserService struct {
	userRepository         shared.UserRepository
	organizationRepository shared.OrganizationRepository
	departmentRepository   shared.DepartmentRepository
}

var _ shared.UserService = &UserService{}

func NewUserService(userRepository shared.UserRepository, organizationRepository shared.OrganizationRepository, departmentRepository shared.DepartmentRepository) *UserService {
	return &UserService{
		userRepository:         userRepository,
		organizationRepository: organizationRepository,
		departmentRepository:   departmentRepository,
	}
}

func (s *UserService) ensureReferences(organizationID, departmentID *uuid.UUID) error {
	if err := ensureExists(s.organizationRepository.Read, organizationID, "Organization"); err != nil {
		return err
	}
	return ensureExists(s.departmentRepository.Read, departmentID, "Department")
}

// emailTaken reports whether another user than exceptID already uses the email.
func (s *UserService) emailTaken(email string, exceptID uuid.UUID) (bool, error) {
	existing, err := s.userRepository.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != exceptID, nil
}

func (s *UserService) Create(user *models.User, plainPassword string) error {
	user.Email = transformer.NormalizeEmail(user.Email)
	if err := s.ensureReferences(user.OrganizationID, user.DepartmentID); err != nil {
		return err
	}

	taken, err := s.emailTaken(user.Email, uuid.Nil)
	if err != nil {
		return echo.NewHTTPError(500, "could not create user").WithInternal(err)
	}
	if taken {
		return echo.NewHTTPError(409, emailTakenMessage)
	}

	if user.Password, err = hashPassword(plainPassword); err != nil {
		return echo.NewHTTPError(500, "could not create user").WithInternal(err)
	}

	if err := s.userRepository.Create(nil, user); err != nil {
		return writeError(err, emailTakenMessage, "could not create user")
	}
	return nil
}

func (s *UserService) Update(id uuid.UUID, req dtos.UserPatchRequest) (models.User, error) {
	user, err := s.userRepository.Read(id)
	if err != nil {
		return user, readError(err, "User")
	}

	if err := s.ensureReferences(req.OrganizationID, req.DepartmentID); err != nil {
		return user, err
	}

	if req.Email != nil {
		taken, err := s.emailTaken(*req.Email, user.ID)
		if err != nil {
			return user, echo.NewHTTPError(500, "could not update user").WithInternal(err)
		}
		if taken {
			return user, echo.NewHTTPError(409, emailTakenMessage)
		}
	}

	updated := transformer.ApplyUserPatchRequestToModel(req, &user)
	if req.Password != nil {
		if user.Password, err = hashPassword(*req.Password); err != nil {
			return user, echo.NewHTTPError(500, "could not update user").WithInternal(err)
		}
		updated = true
	}
	if !updated {
		return user, nil
	}

	if err := s.userRepository.Save(nil, &user); err != nil {
		return user, writeError(err, emailTakenMessage, "could not update user")
	}
	return user, nil
}

// Deactivate is the delete of a user, the row stays.
func (s *UserService) Deactivate(id uuid.UUID) error {
	user, err := s.userRepository.Read(id)
	if err != nil {
		return readError(err, "User")
	}
	if !user.IsActive() {
		return nil
	}

	user.Status = models.UserStatusInactive
	if err := s.userRepository.Save(nil, &user); err != nil {
		return echo.NewHTTPError(500, "Failed to deactivate user").WithInternal(err)
	}
	return nil
}

func (s *UserService) Read(id uuid.UUID, relations []string) (models.User, error) {
	user, err := s.userRepository.ReadWithRelations(id, relations)
	if err != nil {
		return user, readError(err, "User")
	}
	return user, nil
}

func (s *UserService) List(filter dtos.UserFilter, pageInfo shared.PageInfo, relations []string) (shared.Paged[models.User], error) {
	users, err := s.userRepository.FindMany(filter, pageInfo, relations)
	if err != nil {
		return users, echo.NewHTTPError(500, "could not fetch users").WithInternal(err)
	}
	return users, nil
}

func (s *UserService) EnsureUser(user *models.User, plainPassword string) (bool, error) {
	user.Email = transformer.NormalizeEmail(user.Email)
	taken, err := s.emailTaken(user.Email, uuid.Nil)
	if err != nil {
		return false, errors.Wrap(err, "could not look up user")
	}
	if taken {
		return false, nil
	}
	if err := s.Create(user, plainPassword); err != nil {
		return false, err
	}
	return true, nil
}
