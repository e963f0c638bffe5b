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
	"github.com/stretchr/testify/mock"
)

// getOrZero returns the typed value at index or the zero value if the mock returned nil.
func getOrZero[T any](ret mock.Arguments, index int) T {
	var r T
	if v := ret.Get(index); v != nil {
		r = v.(T)
	}
	return r
}

type OrganizationService struct {
	mock.Mock
}

var _ shared.OrganizationService = &OrganizationService{}

func NewOrganizationService(t testingT) *OrganizationService {
	m := &OrganizationService{}
	register(&m.Mock, t)
	return m
}

func (_m *OrganizationService) Create(org *models.Organization) error {
	return _m.Called(org).Error(0)
}

func (_m *OrganizationService) Update(id uuid.UUID, req dtos.OrganizationPatchRequest) (models.Organization, error) {
	ret := _m.Called(id, req)
	return getOrZero[models.Organization](ret, 0), ret.Error(1)
}

func (_m *OrganizationService) Delete(id uuid.UUID) error {
	return _m.Called(id).Error(0)
}

func (_m *OrganizationService) Read(id uuid.UUID, relations []string) (models.Organization, error) {
	ret := _m.Called(id, relations)
	return getOrZero[models.Organization](ret, 0), ret.Error(1)
}

func (_m *OrganizationService) List(relations []string) ([]models.Organization, error) {
	ret := _m.Called(relations)
	return getOrZero[[]models.Organization](ret, 0), ret.Error(1)
}

type DepartmentService struct {
	mock.Mock
}

var _ shared.DepartmentService = &DepartmentService{}

func NewDepartmentService(t testingT) *DepartmentService {
	m := &DepartmentService{}
	register(&m.Mock, t)
	return m
}

func (_m *DepartmentService) Create(department *models.Department) error {
	return _m.Called(department).Error(0)
}

func (_m *DepartmentService) Update(id uuid.UUID, req dtos.DepartmentPatchRequest) (models.Department, error) {
	ret := _m.Called(id, req)
	return getOrZero[models.Department](ret, 0), ret.Error(1)
}

func (_m *DepartmentService) Delete(id uuid.UUID) error {
	return _m.Called(id).Error(0)
}

func (_m *DepartmentService) Read(id uuid.UUID, relations []string) (models.Department, error) {
	ret := _m.Called(id, relations)
	return getOrZero[models.Department](ret, 0), ret.Error(1)
}

func (_m *DepartmentService) List(organizationID *uuid.UUID, relations []string) ([]models.Department, error) {
	ret := _m.Called(organizationID, relations)
	return getOrZero[[]models.Department](ret, 0), ret.Error(1)
}

type ProjectService struct {
	mock.Mock
}

var _ shared.ProjectService = &ProjectService{}

func NewProjectService(t testingT) *ProjectService {
	m := &ProjectService{}
	register(&m.Mock, t)
	return m
}

func (_m *ProjectService) Create(project *models.Project, teamMemberIDs []uuid.UUID) error {
	return _m.Called(project, teamMemberIDs).Error(0)
}

func (_m *ProjectService) Update(id uuid.UUID, req dtos.ProjectPatchRequest) (models.Project, error) {
	ret := _m.Called(id, req)
	return getOrZero[models.Project](ret, 0), ret.Error(1)
}

func (_m *ProjectService) Delete(id uuid.UUID) error {
	return _m.Called(id).Error(0)
}

func (_m *ProjectService) Read(id uuid.UUID, relations []string) (models.Project, error) {
	ret := _m.Called(id, relations)
	return getOrZero[models.Project](ret, 0), ret.Error(1)
}

func (_m *ProjectService) List(departmentID *uuid.UUID, relations []string) ([]models.Project, error) {
	ret := _m.Called(departmentID, relations)
	return getOrZero[[]models.Project](ret, 0), ret.Error(1)
}

type UserService struct {
	mock.Mock
}

var _ shared.UserService = &UserService{}

func NewUserService(t testingT) *UserService {
	m := &UserService{}
	register(&m.Mock, t)
	return m
}

func (_m *UserService) Create(user *models.User, plainPassword string) error {
	ret := _m.Called(user, plainPassword)
	if rf, ok := ret.Get(0).(func(*models.User, string) error); ok {
		return rf(user, plainPassword)
	}
	return ret.Error(0)
}

func (_m *UserService) Update(id uuid.UUID, req dtos.UserPatchRequest) (models.User, error) {
	ret := _m.Called(id, req)
	return getOrZero[models.User](ret, 0), ret.Error(1)
}

func (_m *UserService) Deactivate(id uuid.UUID) error {
	return _m.Called(id).Error(0)
}

func (_m *UserService) Read(id uuid.UUID, relations []string) (models.User, error) {
	ret := _m.Called(id, relations)
	return getOrZero[models.User](ret, 0), ret.Error(1)
}

func (_m *UserService) List(filter dtos.UserFilter, pageInfo shared.PageInfo, relations []string) (shared.Paged[models.User], error) {
	ret := _m.Called(filter, pageInfo, relations)
	return getOrZero[shared.Paged[models.User]](ret, 0), ret.Error(1)
}

func (_m *UserService) EnsureUser(user *models.User, plainPassword string) (bool, error) {
	ret := _m.Called(user, plainPassword)
	return ret.Bool(0), ret.Error(1)
}

type IssueService struct {
	mock.Mock
}

var _ shared.IssueService = &IssueService{}

func NewIssueService(t testingT) *IssueService {
	m := &IssueService{}
	register(&m.Mock, t)
	return m
}

func (_m *IssueService) Create(issue *models.Issue) error {
	return _m.Called(issue).Error(0)
}

func (_m *IssueService) Update(id uuid.UUID, req dtos.IssuePatchRequest) (models.Issue, error) {
	ret := _m.Called(id, req)
	return getOrZero[models.Issue](ret, 0), ret.Error(1)
}

func (_m *IssueService) Delete(id uuid.UUID) error {
	return _m.Called(id).Error(0)
}

func (_m *IssueService) Read(id uuid.UUID, relations []string) (models.Issue, error) {
	ret := _m.Called(id, relations)
	return getOrZero[models.Issue](ret, 0), ret.Error(1)
}

func (_m *IssueService) List(filter dtos.IssueFilter, pageInfo shared.PageInfo, relations []string) (shared.Paged[models.Issue], error) {
	ret := _m.Called(filter, pageInfo, relations)
	return getOrZero[shared.Paged[models.Issue]](ret, 0), ret.Error(1)
}

type CommentService struct {
	mock.Mock
}

var _ shared.CommentService = &CommentService{}

func NewCommentService(t testingT) *CommentService {
	m := &CommentService{}
	register(&m.Mock, t)
	return m
}

func (_m *CommentService) Create(comment *models.Comment) error {
	return _m.Called(comment).Error(0)
}

func (_m *CommentService) Update(id uuid.UUID, req dtos.CommentPatchRequest) (models.Comment, error) {
	ret := _m.Called(id, req)
	return getOrZero[models.Comment](ret, 0), ret.Error(1)
}

func (_m *CommentService) Delete(id uuid.UUID) error {
	return _m.Called(id).Error(0)
}

func (_m *CommentService) Read(id uuid.UUID, relations []string) (models.Comment, error) {
	ret := _m.Called(id, relations)
	return getOrZero[models.Comment](ret, 0), ret.Error(1)
}

func (_m *CommentService) List(issueID *uuid.UUID, relations []string) ([]models.Comment, error) {
	ret := _m.Called(issueID, relations)
	return getOrZero[[]models.Comment](ret, 0), ret.Error(1)
}

type AttachmentService struct {
	mock.Mock
}

var _ shared.AttachmentService = &AttachmentService{}

func NewAttachmentService(t testingT) *AttachmentService {
	m := &AttachmentService{}
	register(&m.Mock, t)
	return m
}

func (_m *AttachmentService) Create(attachment *models.Attachment) error {
	return _m.Called(attachment).Error(0)
}

func (_m *AttachmentService) Delete(id uuid.UUID) error {
	return _m.Called(id).Error(0)
}

func (_m *AttachmentService) DeleteFromIssue(issueID uuid.UUID, attachmentID uuid.UUID) error {
	return _m.Called(issueID, attachmentID).Error(0)
}

func (_m *AttachmentService) Read(id uuid.UUID, relations []string) (models.Attachment, error) {
	ret := _m.Called(id, relations)
	return getOrZero[models.Attachment](ret, 0), ret.Error(1)
}

func (_m *AttachmentService) List(issueID *uuid.UUID, relations []string) ([]models.Attachment, error) {
	ret := _m.Called(issueID, relations)
	return getOrZero[[]models.Attachment](ret, 0), ret.Error(1)
}

type AuthService struct {
	mock.Mock
}

var _ shared.AuthService = &AuthService{}

func NewAuthService(t testingT) *AuthService {
	m := &AuthService{}
	register(&m.Mock, t)
	return m
}

func (_m *AuthService) Login(email, password string) (models.User, string, error) {
	ret := _m.Called(email, password)
	return getOrZero[models.User](ret, 0), ret.String(1), ret.Error(2)
}

type RequestAccessService struct {
	mock.Mock
}

var _ shared.RequestAccessService = &RequestAccessService{}

func NewRequestAccessService(t testingT) *RequestAccessService {
	m := &RequestAccessService{}
	register(&m.Mock, t)
	return m
}

func (_m *RequestAccessService) Create(request *models.RequestAccess) error {
	ret := _m.Called(request)
	if rf, ok := ret.Get(0).(func(*models.RequestAccess) error); ok {
		return rf(request)
	}
	return ret.Error(0)
}

func (_m *RequestAccessService) List(status *models.RequestAccessStatus, pageInfo shared.PageInfo) (shared.Paged[models.RequestAccess], error) {
	ret := _m.Called(status, pageInfo)
	return getOrZero[shared.Paged[models.RequestAccess]](ret, 0), ret.Error(1)
}

func (_m *RequestAccessService) Read(id uuid.UUID) (models.RequestAccess, error) {
	ret := _m.Called(id)
	return getOrZero[models.RequestAccess](ret, 0), ret.Error(1)
}

func (_m *RequestAccessService) Decide(id uuid.UUID, status models.RequestAccessStatus) (models.RequestAccess, error) {
	ret := _m.Called(id, status)
	return getOrZero[models.RequestAccess](ret, 0), ret.Error(1)
}

func (_m *RequestAccessService) Reset(id uuid.UUID) (models.RequestAccess, error) {
	ret := _m.Called(id)
	return getOrZero[models.RequestAccess](ret, 0), ret.Error(1)
}

func (_m *RequestAccessService) Stats() (dtos.AdminStats, error) {
	ret := _m.Called()
	return getOrZero[dtos.AdminStats](ret, 0), ret.Error(1)
}

type StatisticsService struct {
	mock.Mock
}

var _ shared.StatisticsService = &StatisticsService{}

func NewStatisticsService(t testingT) *StatisticsService {
	m := &StatisticsService{}
	register(&m.Mock, t)
	return m
}

func (_m *StatisticsService) OrgAdminStats() (dtos.OrgAdminStats, error) {
	ret := _m.Called()
	return getOrZero[dtos.OrgAdminStats](ret, 0), ret.Error(1)
}

func (_m *StatisticsService) Activity() ([]dtos.ActivityItem, error) {
	ret := _m.Called()
	return getOrZero[[]dtos.ActivityItem](ret, 0), ret.Error(1)
}

func (_m *StatisticsService) DepartmentOverviews() ([]dtos.DepartmentOverview, error) {
	ret := _m.Called()
	return getOrZero[[]dtos.DepartmentOverview](ret, 0), ret.Error(1)
}

func (_m *StatisticsService) DepartmentOverview(id uuid.UUID) (dtos.DepartmentOverview, error) {
	ret := _m.Called(id)
	return getOrZero[dtos.DepartmentOverview](ret, 0), ret.Error(1)
}

func (_m *StatisticsService) ProjectOverviews() ([]dtos.ProjectOverview, error) {
	ret := _m.Called()
	return getOrZero[[]dtos.ProjectOverview](ret, 0), ret.Error(1)
}

func (_m *StatisticsService) ProjectOverview(id uuid.UUID) (dtos.ProjectOverview, error) {
	ret := _m.Called(id)
	return getOrZero[dtos.ProjectOverview](ret, 0), ret.Error(1)
}

func (_m *StatisticsService) OrganizationStats(id uuid.UUID) (dtos.OrganizationStats, error) {
	ret := _m.Called(id)
	return getOrZero[dtos.OrganizationStats](ret, 0), ret.Error(1)
}

func (_m *StatisticsService) TeamMembers(departmentID *uuid.UUID) ([]dtos.TeamMemberDTO, error) {
	ret := _m.Called(departmentID)
	return getOrZero[[]dtos.TeamMemberDTO](ret, 0), ret.Error(1)
}

func (_m *StatisticsService) TeamStats(departmentID *uuid.UUID) (dtos.TeamStats, error) {
	ret := _m.Called(departmentID)
	return getOrZero[dtos.TeamStats](ret, 0), ret.Error(1)
}
