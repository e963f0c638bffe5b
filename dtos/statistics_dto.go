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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type OrgAdminStats struct {
	TotalUsers       int64 `json:"totalUsers"`
	TotalDepartments int64 `json:"totalDepartments"`
	TotalProjects    int64 `json:"totalProjects"`
	TotalIssues      int64 `json:"totalIssues"`
	ActiveIssues     int64 `json:"activeIssues"`
	ResolvedIssues   int64 `json:"resolvedIssues"`
	CompletionRate   int   `json:"completionRate"`
}

type ActivityType string

const (
	ActivityTypeUserJoined        ActivityType = "user_joined"
	ActivityTypeDepartmentCreated ActivityType = "department_created"
	ActivityTypeIssueResolved     ActivityType = "issue_resolved"
)

type ActivityItem struct {
	ID          uuid.UUID    `json:"id"`
	Type        ActivityType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
}

type AssignedIssuesCount struct {
	Total      int64 `json:"total"`
	Open       int64 `json:"open"`
	InProgress int64 `json:"inProgress"`
	Resolved   int64 `json:"resolved"`
}

type TeamMemberDTO struct {
	UserDTO
	AssignedIssuesCount AssignedIssuesCount `json:"assignedIssuesCount"`
}

type TeamStats struct {
	TotalMembers   int64 `json:"totalMembers"`
	TotalIssues    int64 `json:"totalIssues"`
	OpenIssues     int64 `json:"openIssues"`
	InProgress     int64 `json:"inProgressIssues"`
	ResolvedIssues int64 `json:"resolvedIssues"`
	CompletionRate int   `json:"completionRate"`
}

// IssueScope narrows the issues an aggregation runs over. Nil fields do not narrow.
type IssueScope struct {
	OrganizationID *uuid.UUID
	DepartmentID   *uuid.UUID
	ProjectID      *uuid.UUID
	AssigneeID     *uuid.UUID
}

// IssueGrouping is the foreign key column issues get grouped by.
type IssueGrouping string

const (
	GroupByDepartment IssueGrouping = "department_id"
	GroupByProject    IssueGrouping = "project_id"
	GroupByAssignee   IssueGrouping = "assignee_id"
)

type GroupedStatusCount struct {
	GroupID uuid.UUID `json:"groupId"`
	Status  string    `json:"status"`
	Count   int64     `json:"count"`
}
