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
	"github.com/l3montree-dev/issuetracker/monitoring"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/l3montree-dev/issuetracker/transformer"
	"github.com/labstack/echo/v4"
)

type IssueService struct {
	issueRepository      shared.IssueRepository
	userRepository       shared.UserRepository
	departmentRepository shared.DepartmentRepository
	projectRepository    shared.ProjectRepository
}

var _ shared.IssueService = &IssueService{}

func NewIssueService(issueRepository shared.IssueRepository, userRepository shared.UserRepository, departmentRepository shared.DepartmentRepository, projectRepository shared.ProjectRepository) *IssueService {
	return &IssueService{
		issueRepository:      issueRepository,
		userRepository:       userRepository,
		departmentRepository: departmentRepository,
		projectRepository:    projectRepository,
	}
}

func (s *IssueService) ensureReferences(assigneeID, departmentID, projectID *uuid.UUID) error {
	if err := ensureExists(s.userRepository.Read, assigneeID, "Assignee"); err != nil {
		return err
	}
	if err := ensureExists(s.departmentRepository.Read, departmentID, "Department"); err != nil {
		return err
	}
	return ensureExists(s.projectRepository.Read, projectID, "Project")
}

func (s *IssueService) Create(issue *models.Issue) error {
	if err := ensureExists(s.userRepository.Read, &issue.ReporterID, "Reporter"); err != nil {
		return err
	}
	if err := s.ensureReferences(issue.AssigneeID, issue.DepartmentID, issue.ProjectID); err != nil {
		return err
	}

	if err := s.issueRepository.Create(nil, issue); err != nil {
		return echo.NewHTTPError(500, "Failed to create issue").WithInternal(err)
	}
	monitoring.IssueCreatedAmount.Inc()
	return nil
}

func (s *IssueService) Update(id uuid.UUID, req dtos.IssuePatchRequest) (models.Issue, error) {
	issue, err := s.issueRepository.Read(id)
	if err != nil {
		return issue, readError(err, "Issue")
	}

	if err := s.ensureReferences(req.AssigneeID, req.DepartmentID, req.ProjectID); err != nil {
		return issue, err
	}

	previousStatus := issue.Status
	if !transformer.ApplyIssuePatchRequestToModel(req, &issue) {
		return issue, nil
	}

	if err := s.issueRepository.Save(nil, &issue); err != nil {
		return issue, echo.NewHTTPError(500, "Failed to update issue").WithInternal(err)
	}

	monitoring.IssueUpdatedAmount.Inc()
	if issue.Status != previousStatus {
		monitoring.IssueStatusChangedAmount.WithLabelValues(string(issue.Status)).Inc()
	}
	return issue, nil
}

// Delete removes the issue together with its comments and attachments.
func (s *IssueService) Delete(id uuid.UUID) error {
	if _, err := s.issueRepository.Read(id); err != nil {
		return readError(err, "Issue")
	}
	if err := s.issueRepository.Delete(nil, id); err != nil {
		return echo.NewHTTPError(500, "Failed to delete issue").WithInternal(err)
	}
	monitoring.IssueDeletedAmount.Inc()
	return nil
}

func (s *IssueService) Read(id uuid.UUID, relations []string) (models.Issue, error) {
	issue, err := s.issueRepository.ReadWithRelations(id, relations)
	if err != nil {
		return issue, readError(err, "Issue")
	}
	return issue, nil
}

func (s *IssueService) List(filter dtos.IssueFilter, pageInfo shared.PageInfo, relations []string) (shared.Paged[models.Issue], error) {
	issues, err := s.issueRepository.FindMany(filter, pageInfo, relations)
	if err != nil {
		return issues, echo.NewHTTPError(500, "Failed to fetch issues").WithInternal(err)
	}
	return issues, nil
}
