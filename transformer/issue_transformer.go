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

package transformer

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/utils"
)

func IssueCreateRequestToModel(c dtos.IssueCreateRequest, reporterID uuid.UUID) models.Issue {
	status := models.IssueStatusOpen
	if c.Status != "" {
		status = models.IssueStatus(c.Status)
	}
	priority := models.IssuePriorityMedium
	if c.Priority != "" {
		priority = models.IssuePriority(c.Priority)
	}
	issueType := models.IssueTypeTask
	if c.Type != "" {
		issueType = models.IssueType(c.Type)
	}
	if c.ReporterID != nil {
		reporterID = *c.ReporterID
	}

	return models.Issue{
		Title:        c.Title,
		Description:  c.Description,
		Status:       status,
		Priority:     priority,
		Type:         issueType,
		DueDate:      c.DueDate,
		AssigneeID:   c.AssigneeID,
		ReporterID:   reporterID,
		DepartmentID: c.DepartmentID,
		ProjectID:    c.ProjectID,
	}
}

// any status may follow any other status
func ApplyIssuePatchRequestToModel(p dtos.IssuePatchRequest, issue *models.Issue) bool {
	updated := false

	if p.Title != nil {
		updated = true
		issue.Title = *p.Title
	}

	if p.Description != nil {
		updated = true
		issue.Description = *p.Description
	}

	if p.Status != nil {
		updated = true
		issue.Status = models.IssueStatus(*p.Status)
	}

	if p.Priority != nil {
		updated = true
		issue.Priority = models.IssuePriority(*p.Priority)
	}

	if p.Type != nil {
		updated = true
		issue.Type = models.IssueType(*p.Type)
	}

	if p.DueDate != nil {
		updated = true
		issue.DueDate = p.DueDate
	}

	if p.AssigneeID != nil {
		updated = true
		issue.AssigneeID = p.AssigneeID
		issue.Assignee = nil
	}

	if p.DepartmentID != nil {
		updated = true
		issue.DepartmentID = p.DepartmentID
		issue.Department = nil
	}

	if p.ProjectID != nil {
		updated = true
		issue.ProjectID = p.ProjectID
		issue.Project = nil
	}

	return updated
}

func IssueModelToDTO(issue models.Issue) dtos.IssueDTO {
	var assignee, reporter *dtos.UserDTO
	if issue.Assignee != nil {
		assignee = utils.Ptr(UserModelToDTO(*issue.Assignee))
	}
	if issue.Reporter != nil {
		reporter = utils.Ptr(UserModelToDTO(*issue.Reporter))
	}
	var department *dtos.DepartmentDTO
	if issue.Department != nil {
		department = utils.Ptr(DepartmentModelToDTO(*issue.Department))
	}
	var project *dtos.ProjectDTO
	if issue.Project != nil {
		project = utils.Ptr(ProjectModelToDTO(*issue.Project))
	}

	return dtos.IssueDTO{
		ID:           issue.ID,
		Title:        issue.Title,
		Description:  issue.Description,
		Status:       string(issue.Status),
		Priority:     string(issue.Priority),
		Type:         string(issue.Type),
		DueDate:      issue.DueDate,
		AssigneeID:   issue.AssigneeID,
		ReporterID:   issue.ReporterID,
		DepartmentID: issue.DepartmentID,
		ProjectID:    issue.ProjectID,
		CreatedAt:    issue.CreatedAt,
		UpdatedAt:    issue.UpdatedAt,
		Assignee:     assignee,
		Reporter:     reporter,
		Department:   department,
		Project:      project,
		Comments:     utils.Map(issue.Comments, CommentModelToDTO),
		Attachments:  utils.Map(issue.Attachments, AttachmentModelToDTO),
	}
}
