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
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/l3montree-dev/issuetracker/transformer"
	"github.com/l3montree-dev/issuetracker/utils"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type ProjectService struct {
	projectRepository    shared.ProjectRepository
	departmentRepository shared.DepartmentRepository
	userRepository       shared.UserRepository
}

var _ shared.ProjectService = &ProjectService{}

func NewProjectService(projectRepository shared.ProjectRepository, departmentRepository shared.DepartmentRepository, userRepository shared.UserRepository) *ProjectService {
	return &ProjectService{
		projectRepository:    projectRepository,
		departmentRepository: departmentRepository,
		userRepository:       userRepository,
	}
}

// teamMembers loads every user of ids and fails with 404 if one is missing.
func (s *ProjectService) teamMembers(ids []uuid.UUID) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	unique := utils.UniqBy(ids, func(id uuid.UUID) uuid.UUID { return id })

	users, err := s.userRepository.List(unique)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not fetch team members").WithInternal(err)
	}
	if len(users) != len(unique) {
		return nil, echo.NewHTTPError(404, "User not found")
	}
	return users, nil
}

func endsBeforeStart(project models.Project) bool {
	return time.Time(project.EndDate).Before(time.Time(project.StartDate))
}

func (s *ProjectService) Create(project *models.Project, teamMemberIDs []uuid.UUID) error {
	if err := ensureExists(s.departmentRepository.Read, &project.DepartmentID, "Department"); err != nil {
		return err
	}
	if endsBeforeStart(*project) {
		return echo.NewHTTPError(400, "endDate must not be before startDate")
	}

	members, err := s.teamMembers(teamMemberIDs)
	if err != nil {
		return err
	}

	err = s.projectRepository.Transaction(func(tx *gorm.DB) error {
		if err := s.projectRepository.Create(tx, project); err != nil {
			return err
		}
		if len(members) == 0 {
			return nil
		}
		if err := s.projectRepository.ReplaceTeamMembers(tx, project, members); err != nil {
			return err
		}
		project.TeamMembers = members
		return nil
	})
	if err != nil {
		return passThrough(err, "could not create project")
	}
	return nil
}

func (s *ProjectService) Update(id uuid.UUID, req dtos.ProjectPatchRequest) (models.Project, error) {
	project, err := s.projectRepository.Read(id)
	if err != nil {
		return project, readError(err, "Project")
	}

	if err := ensureExists(s.departmentRepository.Read, req.DepartmentID, "Department"); err != nil {
		return project, err
	}

	var members []models.User
	if req.TeamMemberIDs != nil {
		if members, err = s.teamMembers(*req.TeamMemberIDs); err != nil {
			return project, err
		}
	}

	updated, err := transformer.ApplyProjectPatchRequestToModel(req, &project)
	if err != nil {
		return project, echo.NewHTTPError(400, "dates must be formatted as YYYY-MM-DD").WithInternal(err)
	}
	if endsBeforeStart(project) {
		return project, echo.NewHTTPError(400, "endDate must not be before startDate")
	}
	if !updated && req.TeamMemberIDs == nil {
		return project, nil
	}

	err = s.projectRepository.Transaction(func(tx *gorm.DB) error {
		if updated {
			if err := s.projectRepository.Save(tx, &project); err != nil {
				return err
			}
		}
		if req.TeamMemberIDs != nil {
			if err := s.projectRepository.ReplaceTeamMembers(tx, &project, members); err != nil {
				return err
			}
			project.TeamMembers = members
		}
		return nil
	})
	if err != nil {
		return project, passThrough(err, "could not update project")
	}
	return project, nil
}

// Delete refuses while the project still has issues that are not resolved.
func (s *ProjectService) Delete(id uuid.UUID) error {
	err := s.projectRepository.Transaction(func(tx *gorm.DB) error {
		count, err := s.projectRepository.CountUnresolvedIssues(tx, id)
		if err != nil {
			return readError(err, "Project")
		}
		if count > 0 {
			return echo.NewHTTPError(409, "Cannot delete project with active issues")
		}
		return s.projectRepository.Delete(tx, id)
	})
	if err != nil {
		return passThrough(err, "could not delete project")
	}
	return nil
}

func (s *ProjectService) Read(id uuid.UUID, relations []string) (models.Project, error) {
	project, err := s.projectRepository.ReadWithRelations(id, relations)
	if err != nil {
		return project, readError(err, "Project")
	}
	return project, nil
}

func (s *ProjectService) List(departmentID *uuid.UUID, relations []string) ([]models.Project, error) {
	projects, err := s.projectRepository.FindMany(departmentID, relations)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not fetch projects").WithInternal(err)
	}
	return projects, nil
}
