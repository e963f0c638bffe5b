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

type StatisticsRepository struct {
	mock.Mock
}

var _ shared.StatisticsRepository = &StatisticsRepository{}

func NewStatisticsRepository(t testingT) *StatisticsRepository {
	m := &StatisticsRepository{}
	register(&m.Mock, t)
	return m
}

func (_m *StatisticsRepository) CountIssuesByStatus(scope dtos.IssueScope) (map[models.IssueStatus]int64, error) {
	ret := _m.Called(scope)

	var r0 map[models.IssueStatus]int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[models.IssueStatus]int64)
	}
	return r0, ret.Error(1)
}

func (_m *StatisticsRepository) CountIssuesByStatusGroupedBy(grouping dtos.IssueGrouping, scope dtos.IssueScope) ([]dtos.GroupedStatusCount, error) {
	ret := _m.Called(grouping, scope)

	var r0 []dtos.GroupedStatusCount
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]dtos.GroupedStatusCount)
	}
	return r0, ret.Error(1)
}

func (_m *StatisticsRepository) CountUsers(organizationID *uuid.UUID, departmentID *uuid.UUID) (int64, error) {
	ret := _m.Called(organizationID, departmentID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *StatisticsRepository) CountDepartments(organizationID *uuid.UUID) (int64, error) {
	ret := _m.Called(organizationID)
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *StatisticsRepository) CountProjects() (int64, error) {
	ret := _m.Called()
	return ret.Get(0).(int64), ret.Error(1)
}

func (_m *StatisticsRepository) CountUsersByDepartment() (map[uuid.UUID]int64, error) {
	ret := _m.Called()

	var r0 map[uuid.UUID]int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[uuid.UUID]int64)
	}
	return r0, ret.Error(1)
}

func (_m *StatisticsRepository) CountTeamMembersByProject() (map[uuid.UUID]int64, error) {
	ret := _m.Called()

	var r0 map[uuid.UUID]int64
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(map[uuid.UUID]int64)
	}
	return r0, ret.Error(1)
}

func (_m *StatisticsRepository) FindTeamMembers(departmentID *uuid.UUID) ([]models.User, error) {
	ret := _m.Called(departmentID)

	var r0 []models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.User)
	}
	return r0, ret.Error(1)
}

func (_m *StatisticsRepository) RecentUsers(limit int) ([]models.User, error) {
	ret := _m.Called(limit)

	var r0 []models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.User)
	}
	return r0, ret.Error(1)
}

func (_m *StatisticsRepository) RecentDepartments(limit int) ([]models.Department, error) {
	ret := _m.Called(limit)

	var r0 []models.Department
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Department)
	}
	return r0, ret.Error(1)
}

func (_m *StatisticsRepository) RecentlyResolvedIssues(limit int) ([]models.Issue, error) {
	ret := _m.Called(limit)

	var r0 []models.Issue
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.Issue)
	}
	return r0, ret.Error(1)
}
