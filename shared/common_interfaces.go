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

package shared

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/utils"
	"github.com/labstack/echo/v4"
)

type OrganizationRepository interface {
	utils.Repository[uuid.UUID, models.Organization, DB]
	FindMany(relations []string) ([]models.Organization, error)
	FirstFreeSlug(slug string) (string, error)
}

type DepartmentRepository interface {
	utils.Repository[uuid.UUID, models.Department, DB]
	FindMany(organizationID *uuid.UUID, relations []string) ([]models.Department, error)
	CountUsers(tx DB, departmentID uuid.UUID) (int64, error)
	CountProjects(tx DB, departmentID uuid.UUID) (int64, error)
}

type ProjectRepository interface {
	utils.Repository[uuid.UUID, models.Project, DB]
	FindMany(departmentID *uuid.UUID, relations []string) ([]models.Project, error)
	CountUnresolvedIssues(tx DB, projectID uuid.UUID) (int64, error)
	ReplaceTeamMembers(tx DB, project *models.Project, members []models.User) error
}

type UserRepository interface {
	utils.Repository[uuid.UUID, models.User, DB]
	FindByEmail(email string) (models.User, error)
	FindMany(filter dtos.UserFilter, pageInfo PageInfo, relations []string) (Paged[models.User], error)
}

type IssueRepository interface {
	utils.Repository[uuid.UUID, models.Issue, DB]
	FindMany(filter dtos.IssueFilter, pageInfo PageInfo, relations []string) (Paged[models.Issue], error)
}

type CommentRepository interface {
	utils.Repository[uuid.UUID, models.Comment, DB]
	FindMany(issueID *uuid.UUID, relations []string) ([]models.Comment, error)
}

type AttachmentRepository interface {
	utils.Repository[uuid.UUID, models.Attachment, DB]
	FindMany(issueID *uuid.UUID, relations []string) ([]models.Attachment, error)
}

type RequestAccessRepository interface {
	utils.Repository[uuid.UUID, models.RequestAccess, DB]
	FindByEmail(email string) (models.RequestAccess, error)
	FindMany(status *models.RequestAccessStatus, pageInfo PageInfo) (Paged[models.RequestAccess], error)
	CountByStatus() (map[models.RequestAccessStatus]int64, error)
}

type StatisticsRepository interface {
	CountIssuesByStatus(scope dtos.IssueScope) (map[models.IssueStatus]int64, error)
	CountIssuesByStatusGroupedBy(grouping dtos.IssueGrouping, scope dtos.IssueScope) ([]dtos.GroupedStatusCount, error)
	CountUsers(organizationID *uuid.UUID, departmentID *uuid.UUID) (int64, error)
	CountDepartments(organizationID *uuid.UUID) (int64, error)
	CountProjects() (int64, error)
	CountUsersByDepartment() (map[uuid.UUID]int64, error)
	CountTeamMembersByProject() (map[uuid.UUID]int64, error)
	FindTeamMembers(departmentID *uuid.UUID) ([]models.User, error)
	RecentUsers(limit int) ([]models.User, error)
	RecentDepartments(limit int) ([]models.Department, error)
	RecentlyResolvedIssues(limit int) ([]models.Issue, error)
}

type OrganizationService interface {
	Create(org *models.Organization) error
	Update(id uuid.UUID, req dtos.OrganizationPatchRequest) (models.Organization, error)
	Delete(id uuid.UUID) error
	Read(id uuid.UUID, relations []string) (models.Organization, error)
	List(relations []string) ([]models.Organization, error)
}

type DepartmentService interface {
	Create(department *models.Department) error
	Update(id uuid.UUID, req dtos.DepartmentPatchRequest) (models.Department, error)
	Delete(id uuid.UUID) error
	Read(id uuid.UUID, relations []string) (models.Department, error)
	List(organizationID *uuid.UUID, relations []string) ([]models.Department, error)
}

type ProjectService interface {
	Create(project *models.Project, teamMemberIDs []uuid.UUID) error
	Update(id uuid.UUID, req dtos.ProjectPatchRequest) (models.Project, error)
	Delete(id uuid.UUID) error
	Read(id uuid.UUID, relations []string) (models.Project, error)
	List(departmentID *uuid.UUID, relations []string) ([]models.Project, error)
}

type UserService interface {
	Create(user *models.User, plainPassword string) error
	Update(id uuid.UUID, req dtos.UserPatchRequest) (models.User, error)
	Deactivate(id uuid.UUID) error
	Read(id uuid.UUID, relations []string) (models.User, error)
	List(filter dtos.UserFilter, pageInfo PageInfo, relations []string) (Paged[models.User], error)
	// EnsureUser creates the user unless the email is already taken. It reports whether a user was created.
	EnsureUser(user *models.User, plainPassword string) (bool, error)
}

type IssueService interface {
	Create(issue *models.Issue) error
	Update(id uuid.UUID, req dtos.IssuePatchRequest) (models.Issue, error)
	Delete(id uuid.UUID) error
	Read(id uuid.UUID, relations []string) (models.Issue, error)
	List(filter dtos.IssueFilter, pageInfo PageInfo, relations []string) (Paged[models.Issue], error)
}

type CommentService interface {
	Create(comment *models.Comment) error
	Update(id uuid.UUID, req dtos.CommentPatchRequest) (models.Comment, error)
	Delete(id uuid.UUID) error
	Read(id uuid.UUID, relations []string) (models.Comment, error)
	List(issueID *uuid.UUID, relations []string) ([]models.Comment, error)
}

type AttachmentService interface {
	Create(attachment *models.Attachment) error
	Delete(id uuid.UUID) error
	DeleteFromIssue(issueID uuid.UUID, attachmentID uuid.UUID) error
	Read(id uuid.UUID, relations []string) (models.Attachment, error)
	List(issueID *uuid.UUID, relations []string) ([]models.Attachment, error)
}

type AuthService interface {
	Login(email, password string) (models.User, string, error)
}

type RequestAccessService interface {
	Create(request *models.RequestAccess) error
	List(status *models.RequestAccessStatus, pageInfo PageInfo) (Paged[models.RequestAccess], error)
	Read(id uuid.UUID) (models.RequestAccess, error)
	Decide(id uuid.UUID, status models.RequestAccessStatus) (models.RequestAccess, error)
	Reset(id uuid.UUID) (models.RequestAccess, error)
	Stats() (dtos.AdminStats, error)
}

type StatisticsService interface {
	OrgAdminStats() (dtos.OrgAdminStats, error)
	Activity() ([]dtos.ActivityItem, error)
	DepartmentOverviews() ([]dtos.DepartmentOverview, error)
	DepartmentOverview(id uuid.UUID) (dtos.DepartmentOverview, error)
	ProjectOverviews() ([]dtos.ProjectOverview, error)
	ProjectOverview(id uuid.UUID) (dtos.ProjectOverview, error)
	OrganizationStats(id uuid.UUID) (dtos.OrganizationStats, error)
	TeamMembers(departmentID *uuid.UUID) ([]dtos.TeamMemberDTO, error)
	TeamStats(departmentID *uuid.UUID) (dtos.TeamStats, error)
}

type TokenService interface {
	Sign(user models.User) (string, error)
	Verify(token string) (AuthSession, error)
}

type AccessControl interface {
	IsAllowed(role models.UserRole, object Object, action Action) (bool, error)
}

type RBACMiddleware = func(obj Object, act Action) echo.MiddlewareFunc

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

type Object string

const (
	ObjectOrganization  Object = "organization"
	ObjectDepartment    Object = "department"
	ObjectProject       Object = "project"
	ObjectUser          Object = "user"
	ObjectIssue         Object = "issue"
	ObjectComment       Object = "comment"
	ObjectAttachment    Object = "attachment"
	ObjectAccessRequest Object = "access-request"
	ObjectStatistics    Object = "statistics"
	ObjectOrgAdmin      Object = "org-admin"
)
