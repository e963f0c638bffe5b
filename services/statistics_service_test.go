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
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatusCounts(t *testing.T) {
	c := statusCounts{
		models.IssueStatusOpen:       4,
		models.IssueStatusInProgress: 2,
		models.IssueStatusResolved:   3,
		models.IssueStatusClosed:     1,
	}
	assert.Equal(t, int64(10), c.total())
	assert.Equal(t, int64(3), c.resolved())
	assert.Equal(t, int64(6), c.active())

	var empty statusCounts
	assert.Equal(t, int64(0), empty.total())
	assert.Equal(t, int64(0), empty.active())
}

func TestStatisticsServiceOrgAdminStats(t *testing.T) {
	statisticsRepository := mocks.NewStatisticsRepository(t)
	statisticsRepository.On("CountUsers", (*uuid.UUID)(nil), (*uuid.UUID)(nil)).Return(int64(12), nil)
	statisticsRepository.On("CountDepartments", (*uuid.UUID)(nil)).Return(int64(3), nil)
	statisticsRepository.On("CountProjects").Return(int64(4), nil)
	statisticsRepository.On("CountIssuesByStatus", dtos.IssueScope{}).Return(map[models.IssueStatus]int64{
		models.IssueStatusOpen:     1,
		models.IssueStatusResolved: 2,
	}, nil)

	stats, err := NewStatisticsService(statisticsRepository, nil, nil, nil).OrgAdminStats()

	require.NoError(t, err)
	assert.Equal(t, dtos.OrgAdminStats{
		TotalUsers:       12,
		TotalDepartments: 3,
		TotalProjects:    4,
		TotalIssues:      3,
		ActiveIssues:     1,
		ResolvedIssues:   2,
		CompletionRate:   67,
	}, stats)
}

func TestStatisticsServiceActivity(t *testing.T) {
	now := time.Now()
	at := func(minutesAgo int) time.Time { return now.Add(-time.Duration(minutesAgo) * time.Minute) }

	users := make([]models.User, 0, 5)
	for i := range 5 {
		users = append(users, models.User{Model: models.Model{ID: uuid.New(), CreatedAt: at(i * 3)}, FirstName: "User", LastName: "Name"})
	}
	departments := []models.Department{
		{Model: models.Model{ID: uuid.New(), CreatedAt: at(1)}, Name: "Sales"},
		{Model: models.Model{ID: uuid.New(), CreatedAt: at(100)}, Name: "Legal"},
	}
	issues := []models.Issue{
		{Model: models.Model{ID: uuid.New(), UpdatedAt: at(2)}, Title: "Printer on fire"},
		{Model: models.Model{ID: uuid.New(), UpdatedAt: at(50)}, Title: "VPN flaky"},
		{Model: models.Model{ID: uuid.New(), UpdatedAt: at(60)}, Title: "Old bug"},
		{Model: models.Model{ID: uuid.New(), UpdatedAt: at(70)}, Title: "Older bug"},
	}

	statisticsRepository := mocks.NewStatisticsRepository(t)
	statisticsRepository.On("RecentUsers", 5).Return(users, nil)
	statisticsRepository.On("RecentDepartments", 5).Return(departments, nil)
	statisticsRepository.On("RecentlyResolvedIssues", 5).Return(issues, nil)

	activity, err := NewStatisticsService(statisticsRepository, nil, nil, nil).Activity()

	require.NoError(t, err)
	require.Len(t, activity, 10)
	for i := 1; i < len(activity); i++ {
		assert.False(t, activity[i].Timestamp.After(activity[i-1].Timestamp), "activity must be ordered newest first")
	}
	assert.Equal(t, dtos.ActivityTypeUserJoined, activity[0].Type)
	assert.Equal(t, dtos.ActivityTypeDepartmentCreated, activity[1].Type)
	assert.Equal(t, "Sales department was created", activity[1].Description)
	assert.Equal(t, dtos.ActivityTypeIssueResolved, activity[2].Type)
	// the oldest entry does not make the cut
	for _, item := range activity {
		assert.NotEqual(t, departments[1].ID, item.ID)
	}
}

func TestStatisticsServiceProjectOverviews(t *testing.T) {
	department := models.Department{Model: models.Model{ID: uuid.New()}, Name: "Engineering"}
	withIssues := newProject(department.ID)
	withIssues.Department = &department
	withoutIssues := newProject(department.ID)

	projectRepository := mocks.NewProjectRepository(t)
	projectRepository.On("FindMany", (*uuid.UUID)(nil), []string{"Department"}).Return([]models.Project{withIssues, withoutIssues}, nil)
	statisticsRepository := mocks.NewStatisticsRepository(t)
	statisticsRepository.On("CountTeamMembersByProject").Return(map[uuid.UUID]int64{withIssues.ID: 2}, nil)
	statisticsRepository.On("CountIssuesByStatusGroupedBy", dtos.GroupByProject, dtos.IssueScope{}).Return([]dtos.GroupedStatusCount{
		{GroupID: withIssues.ID, Status: "RESOLVED", Count: 1},
		{GroupID: withIssues.ID, Status: "OPEN", Count: 3},
	}, nil)

	overviews, err := NewStatisticsService(statisticsRepository, nil, nil, projectRepository).ProjectOverviews()

	require.NoError(t, err)
	require.Len(t, overviews, 2)
	assert.Equal(t, 25, overviews[0].Progress)
	assert.Equal(t, int64(4), overviews[0].TotalIssues)
	assert.Equal(t, int64(1), overviews[0].CompletedIssues)
	assert.Equal(t, int64(2), overviews[0].TeamMembers)
	assert.Equal(t, "Engineering", overviews[0].DepartmentName)
	assert.Equal(t, "2025-01-01", overviews[0].StartDate)

	assert.Equal(t, 0, overviews[1].Progress)
	assert.Equal(t, int64(0), overviews[1].TotalIssues)
	assert.Empty(t, overviews[1].DepartmentName)
}

func TestStatisticsServiceTeamMembers(t *testing.T) {
	departmentID := uuid.New()
	busy := models.User{Model: models.Model{ID: uuid.New()}, FirstName: "Busy"}
	idle := models.User{Model: models.Model{ID: uuid.New()}, FirstName: "Idle"}

	statisticsRepository := mocks.NewStatisticsRepository(t)
	statisticsRepository.On("FindTeamMembers", &departmentID).Return([]models.User{busy, idle}, nil)
	statisticsRepository.On("CountIssuesByStatusGroupedBy", dtos.GroupByAssignee, mock.Anything).Return([]dtos.GroupedStatusCount{
		{GroupID: busy.ID, Status: "OPEN", Count: 2},
		{GroupID: busy.ID, Status: "IN_PROGRESS", Count: 1},
		{GroupID: busy.ID, Status: "RESOLVED", Count: 4},
		{GroupID: busy.ID, Status: "CLOSED", Count: 1},
	}, nil)

	members, err := NewStatisticsService(statisticsRepository, nil, nil, nil).TeamMembers(&departmentID)

	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, dtos.AssignedIssuesCount{Total: 8, Open: 2, InProgress: 1, Resolved: 4}, members[0].AssignedIssuesCount)
	assert.Equal(t, dtos.AssignedIssuesCount{}, members[1].AssignedIssuesCount)
}
