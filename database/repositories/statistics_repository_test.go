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

package repositories

import (
	"testing"

	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/integrationtestutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatisticsRepository(t *testing.T) {
	db, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	org, department, reporter := integrationtestutil.CreateOrgDepartmentAndUser(db)
	_, otherDepartment, otherReporter := integrationtestutil.CreateOrgDepartmentAndUser(db)
	project := integrationtestutil.CreateProject(db, department)

	inDepartment := func(issue *models.Issue) { issue.DepartmentID = &department.ID }
	inProject := func(issue *models.Issue) {
		issue.DepartmentID = &department.ID
		issue.ProjectID = &project.ID
	}

	integrationtestutil.CreateIssue(db, reporter, models.IssueStatusOpen, inDepartment)
	integrationtestutil.CreateIssue(db, reporter, models.IssueStatusResolved, inProject)
	integrationtestutil.CreateIssue(db, reporter, models.IssueStatusResolved, inProject)
	integrationtestutil.CreateIssue(db, otherReporter, models.IssueStatusOpen, func(issue *models.Issue) {
		issue.DepartmentID = &otherDepartment.ID
	})
	// no department, so it belongs to no organization
	integrationtestutil.CreateIssue(db, reporter, models.IssueStatusBlocked, nil)

	repo := NewStatisticsRepository(db)

	t.Run("counts all issues by status without a scope", func(t *testing.T) {
		counts, err := repo.CountIssuesByStatus(dtos.IssueScope{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), counts[models.IssueStatusOpen])
		assert.Equal(t, int64(2), counts[models.IssueStatusResolved])
		assert.Equal(t, int64(1), counts[models.IssueStatusBlocked])
	})

	t.Run("attributes issues to an organization through their department", func(t *testing.T) {
		counts, err := repo.CountIssuesByStatus(dtos.IssueScope{OrganizationID: &org.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(1), counts[models.IssueStatusOpen])
		assert.Equal(t, int64(2), counts[models.IssueStatusResolved])
		assert.Zero(t, counts[models.IssueStatusBlocked])
	})

	t.Run("groups by project and skips issues without one", func(t *testing.T) {
		rows, err := repo.CountIssuesByStatusGroupedBy(dtos.GroupByProject, dtos.IssueScope{})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, project.ID, rows[0].GroupID)
		assert.Equal(t, string(models.IssueStatusResolved), rows[0].Status)
		assert.Equal(t, int64(2), rows[0].Count)
	})

	t.Run("counts users and departments per organization", func(t *testing.T) {
		users, err := repo.CountUsers(&org.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), users)

		departments, err := repo.CountDepartments(nil)
		require.NoError(t, err)
		assert.Equal(t, int64(2), departments)

		byDepartment, err := repo.CountUsersByDepartment()
		require.NoError(t, err)
		assert.Equal(t, int64(1), byDepartment[department.ID])
	})

	t.Run("recently resolved issues only contain resolved ones", func(t *testing.T) {
		issues, err := repo.RecentlyResolvedIssues(5)
		require.NoError(t, err)
		assert.Len(t, issues, 2)
		for _, issue := range issues {
			assert.Equal(t, models.IssueStatusResolved, issue.Status)
		}
	})
}
