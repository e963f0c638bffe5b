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
	"gorm.io/gorm"
)

type DepartmentService struct {
	departmentRepository   shared.DepartmentRepository
	organizationRepository shared.OrganizationRepository
}

var _ shared.DepartmentService = &DepartmentService{}

func NewDepartmentService(departmentRepository shared.DepartmentRepository, organizationRepository shared.OrganizationRepository) *DepartmentService {
	return &DepartmentService{
		departmentRepository:   departmentRepository,
		organizationRepository: organizationRepository,
	}
}

func (s *DepartmentService) Create(department *models.Department) error {
	if err := ensureExists(s.organizationRepository.Read, department.OrganizationID, "Organization"); err != nil {
		return err
	}

	if err := s.departmentRepository.Create(nil, department); err != nil {
		return echo.NewHTTPError(500, "could not create department").WithInternal(err)
	}
	return nil
}

func (s *DepartmentService) Update(id uuid.UUID, req dtos.DepartmentPatchRequest) (models.Department, error) {
	department, err := s.departmentRepository.Read(id)
	if err != nil {
		return department, readError(err, "Department")
	}

	if err := ensureExists(s.organizationRepository.Read, req.OrganizationID, "Organization"); err != nil {
		return department, err
	}

	if !transformer.ApplyDepartmentPatchRequestToModel(req, &department) {
		return department, nil
	}

	if err := s.departmentRepository.Save(nil, &department); err != nil {
		return department, echo.NewHTTPError(500, "could not update department").WithInternal(err)
	}
	return department, nil
}

// Delete refuses while any user or project still belongs to the department.
func (s *DepartmentService) Delete(id uuid.UUID) error {
	err := s.departmentRepository.Transaction(func(tx *gorm.DB) error {
		count, err := s.departmentRepository.CountUsers(tx, id)
		if err != nil {
			return readError(err, "Department")
		}
		if count > 0 {
			return echo.NewHTTPError(409, "Cannot delete department with active users")
		}
		projects, err := s.departmentRepository.CountProjects(tx, id)
		if err != nil {
			return err
		}
		if projects > 0 {
			return echo.NewHTTPError(409, "Cannot delete department with projects")
		}
		return s.departmentRepository.Delete(tx, id)
	})
	if err != nil {
		return passThrough(err, "could not delete department")
	}
	return nil
}

func (s *DepartmentService) Read(id uuid.UUID, relations []string) (models.Department, error) {
	department, err := s.departmentRepository.ReadWithRelations(id, relations)
	if err != nil {
		return department, readError(err, "Department")
	}
	return department, nil
}

func (s *DepartmentService) List(organizationID *uuid.UUID, relations []string) ([]models.Department, error) {
	departments, err := s.departmentRepository.FindMany(organizationID, relations)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not fetch departments").WithInternal(err)
	}
	return departments, nil
}
