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
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/shared"
	"gorm.io/gorm"
)

type OrganizationRepository struct {
	Repository[models.Organization]
}

func NewOrganizationRepository(t testingT) *OrganizationRepository {
	m := &OrganizationRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *OrganizationRepository) FindMany(relations []string) ([]models.Organization, error) {
	ret := _m.MethodCalled("FindMany", relations)

	var r0 []models.Organization
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Organization)
	}
	return r0, ret.Error(1)
}

func (_m *OrganizationRepository) FirstFreeSlug(slug string) (string, error) {
	ret := _m.MethodCalled("FirstFreeSlug", slug)
	return ret.String(0), ret.Error(1)
}

type DepartmentRepository struct {
	Repository[models.Department]
}

func NewDepartmentRepository(t testingT) *DepartmentRepository {
	m := &DepartmentRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *DepartmentRepository) FindMany(organizationID *uuid.UUID, relations []string) ([]models.Department, error) {
	ret := _m.MethodCalled("FindMany", organizationID, relations)

	var r0 []models.Department
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Department)
	}
	return r0, ret.Error(1)
}

func (_m *DepartmentRepository) CountUsers(tx *gorm.DB, departmentID uuid.UUID) (int64, error) {
	ret := _m.MethodCalled("CountUsers", tx, departmentID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *DepartmentRepository) CountProjects(tx *gorm.DB, departmentID uuid.UUID) (int64, error) {
	ret := _m.MethodCalled("CountProjects", tx, departmentID)
	return ret.Get(0).(int64), ret.Error(1)
}

type ProjectRepository struct {
	Repository[models.Project]
}

func NewProjectRepository(t testingT) *ProjectRepository {
	m := &ProjectRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *ProjectRepository) FindMany(departmentID *uuid.UUID, relations []string) ([]models.Project, error) {
	ret := _m.MethodCalled("FindMany", departmentID, relations)

	var r0 []models.Project
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Project)
	}
	return r0, ret.Error(1)
}

func (_m *ProjectRepository) CountUnresolvedIssues(tx *gorm.DB, projectID uuid.UUID) (int64, error) {
	ret := _m.MethodCalled("CountUnresolvedIssues", tx, projectID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *ProjectRepository) ReplaceTeamMembers(tx *gorm.DB, project *models.Project, members []models.User) error {
	ret := _m.MethodCalled("ReplaceTeamMembers", tx, project, members)
	return ret.Error(0)
}

type UserRepository struct {
	Repository[models.User]
}

func NewUserRepository(t testingT) *UserRepository {
	m := &UserRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *UserRepository) FindByEmail(email string) (models.User, error) {
	ret := _m.MethodCalled("FindByEmail", email)

	var r0 models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.User)
	}
	return r0, ret.Error(1)
}

func (_m *UserRepository) FindMany(filter dtos.UserFilter, pageInfo shared.PageInfo, relations []string) (shared.Paged[models.User], error) {
	ret := _m.MethodCalled("FindMany", filter, pageInfo, relations)

	var r0 shared.Paged[models.User]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(shared.Paged[models.User])
	}
	return r0, ret.Error(1)
}

type IssueRepository struct {
	Repository[models.Issue]
}

func NewIssueRepository(t testingT) *IssueRepository {
	m := &IssueRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *IssueRepository) FindMany(filter dtos.IssueFilter, pageInfo shared.PageInfo, relations []string) (shared.Paged[models.Issue], error) {
	ret := _m.MethodCalled("FindMany", filter, pageInfo, relations)

	var r0 shared.Paged[models.Issue]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(shared.Paged[models.Issue])
	}
	return r0, ret.Error(1)
}

type CommentRepository struct {
	Repository[models.Comment]
}

func NewCommentRepository(t testingT) *CommentRepository {
	m := &CommentRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *CommentRepository) FindMany(issueID *uuid.UUID, relations []string) ([]models.Comment, error) {
	ret := _m.MethodCalled("FindMany", issueID, relations)

	var r0 []models.Comment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Comment)
	}
	return r0, ret.Error(1)
}

type AttachmentRepository struct {
	Repository[models.Attachment]
}

func NewAttachmentRepository(t testingT) *AttachmentRepository {
	m := &AttachmentRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *AttachmentRepository) FindMany(issueID *uuid.UUID, relations []string) ([]models.Attachment, error) {
	ret := _m.MethodCalled("FindMany", issueID, relations)

	var r0 []models.Attachment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Attachment)
	}
	return r0, ret.Error(1)
}

type RequestAccessRepository struct {
	Repository[models.RequestAccess]
}

func NewRequestAccessRepository(t testingT) *RequestAccessRepository {
	m := &RequestAccessRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *RequestAccessRepository) FindByEmail(email string) (models.RequestAccess, error) {
	ret := _m.MethodCalled("FindByEmail", email)

	var r0 models.RequestAccess
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.RequestAccess)
	}
	return r0, ret.Error(1)
}

func (_m *RequestAccessRepository) FindMany(status *models.RequestAccessStatus, pageInfo shared.PageInfo) (shared.Paged[models.RequestAccess], error) {
	ret := _m.MethodCalled("FindMany", status, pageInfo)

	var r0 shared.Paged[models.RequestAccess]
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(shared.Paged[models.RequestAccess])
	}
	return r0, ret.Error(1)
}

func (_m *RequestAccessRepository) CountByStatus() (map[models.RequestAccessStatus]int64, error) {
	ret := _m.MethodCalled("CountByStatus")

	var r0 map[models.RequestAccessStatus]int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[models.RequestAccessStatus]int64)
	}
	return r0, ret.Error(1)
}

var (
	_ shared.OrganizationRepository  = &OrganizationRepository{}
	_ shared.DepartmentRepository    = &DepartmentRepository{}
	_ shared.ProjectRepository       = &ProjectRepository{}
	_ shared.UserRepository          = &UserRepository{}
	_ shared.IssueRepository         = &IssueRepository{}
	_ shared.CommentRepository       = &CommentRepository{}
	_ shared.AttachmentRepository    = &AttachmentRepository{}
	_ shared.RequestAccessRepository = &RequestAccessRepository{}
)
