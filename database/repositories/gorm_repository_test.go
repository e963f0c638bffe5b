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

	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/integrationtestutil"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/l3montree-dev/issuetracker/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestGormRepository(t *testing.T) {
	db, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	org, department, reporter := integrationtestutil.CreateOrgDepartmentAndUser(db)

	t.Run("read returns gorm.ErrRecordNotFound for an unknown id", func(t *testing.T) {
		repo := NewOrganizationRepository(db)
		_, err := repo.Read(uuid.New())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("read with relations eager loads the requested relations only", func(t *testing.T) {
		repo := NewDepartmentRepository(db)
		d, err := repo.ReadWithRelations(department.ID, []string{"Organization"})
		require.NoError(t, err)
		require.NotNil(t, d.Organization)
		assert.Equal(t, org.ID, d.Organization.ID)
		assert.Nil(t, d.Users)
	})

	t.Run("list returns an empty slice without hitting the database for no ids", func(t *testing.T) {
		repo := NewUserRepository(db)
		users, err := repo.List(nil)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("a failing transaction rolls back every write", func(t *testing.T) {
		repo := NewIssueRepository(db)
		var created models.Issue
		err := repo.Transaction(func(tx *gorm.DB) error {
			created = models.Issue{Title: "rolled back", Description: "x", ReporterID: reporter.ID}
			if err := repo.Create(tx, &created); err != nil {
				return err
			}
			return gorm.ErrInvalidData
		})
		assert.ErrorIs(t, err, gorm.ErrInvalidData)

		_, err = repo.Read(created.ID)
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}

func TestOrganizationRepositoryFirstFreeSlug(t *testing.T) {
	db, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	repo := NewOrganizationRepository(db)

	slug, err := repo.FirstFreeSlug("acme")
	require.NoError(t, err)
	assert.Equal(t, "acme", slug)

	require.NoError(t, repo.Create(nil, &models.Organization{Name: "Acme", Slug: "acme"}))
	slug, err = repo.FirstFreeSlug("acme")
	require.NoError(t, err)
	assert.Equal(t, "acme-1", slug)

	require.NoError(t, repo.Create(nil, &models.Organization{Name: "Acme", Slug: "acme-1"}))
	slug, err = repo.FirstFreeSlug("acme")
	require.NoError(t, err)
	assert.Equal(t, "acme-2", slug)
}

func TestDeleteGuards(t *testing.T) {
	db, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	_, department, reporter := integrationtestutil.CreateOrgDepartmentAndUser(db)

	t.Run("department user count sees the users referencing it", func(t *testing.T) {
		repo := NewDepartmentRepository(db)
		err := repo.Transaction(func(tx *gorm.DB) error {
			count, err := repo.CountUsers(tx, department.ID)
			require.NoError(t, err)
			assert.Equal(t, int64(1), count)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("department user count fails for a missing department", func(t *testing.T) {
		repo := NewDepartmentRepository(db)
		_, err := repo.CountUsers(nil, uuid.New())
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})

	t.Run("department project count sees projects of a department without users", func(t *testing.T) {
		repo := NewDepartmentRepository(db)
		empty := models.Department{Name: "Empty", OrganizationID: department.OrganizationID}
		require.NoError(t, db.Create(&empty).Error)
		integrationtestutil.CreateProject(db, empty)

		err := repo.Transaction(func(tx *gorm.DB) error {
			users, err := repo.CountUsers(tx, empty.ID)
			require.NoError(t, err)
			assert.Equal(t, int64(0), users)

			projects, err := repo.CountProjects(tx, empty.ID)
			require.NoError(t, err)
			assert.Equal(t, int64(1), projects)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("project guard ignores resolved issues but counts closed ones", func(t *testing.T) {
		repo := NewProjectRepository(db)
		project := integrationtestutil.CreateProject(db, department)
		inProject := func(issue *models.Issue) { issue.ProjectID = &project.ID }

		integrationtestutil.CreateIssue(db, reporter, models.IssueStatusResolved, inProject)
		count, err := repo.CountUnresolvedIssues(nil, project.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)

		integrationtestutil.CreateIssue(db, reporter, models.IssueStatusClosed, inProject)
		count, err = repo.CountUnresolvedIssues(nil, project.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestProjectRepositoryReplaceTeamMembers(t *testing.T) {
	db, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	org, department, first := integrationtestutil.CreateOrgDepartmentAndUser(db)
	second := integrationtestutil.CreateUser(db, &org, &department, models.UserRoleEmployee)
	project := integrationtestutil.CreateProject(db, department)

	repo := NewProjectRepository(db)

	require.NoError(t, repo.ReplaceTeamMembers(nil, &project, []models.User{first, second}))
	loaded, err := repo.ReadWithRelations(project.ID, []string{"TeamMembers"})
	require.NoError(t, err)
	assert.Len(t, loaded.TeamMembers, 2)

	require.NoError(t, repo.ReplaceTeamMembers(nil, &project, []models.User{second}))
	loaded, err = repo.ReadWithRelations(project.ID, []string{"TeamMembers"})
	require.NoError(t, err)
	require.Len(t, loaded.TeamMembers, 1)
	assert.Equal(t, second.ID, loaded.TeamMembers[0].ID)

	require.NoError(t, repo.ReplaceTeamMembers(nil, &project, nil))
	loaded, err = repo.ReadWithRelations(project.ID, []string{"TeamMembers"})
	require.NoError(t, err)
	assert.Empty(t, loaded.TeamMembers)
}

func TestUserRepository(t *testing.T) {
	db, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	org, department, user := integrationtestutil.CreateOrgDepartmentAndUser(db)
	repo := NewUserRepository(db)

	t.Run("find by email ignores case and surrounding whitespace", func(t *testing.T) {
		found, err := repo.FindByEmail("  " + user.Email + " ")
		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("a second user with the same email is a duplicate key error", func(t *testing.T) {
		duplicate := models.User{FirstName: "A", LastName: "B", Email: user.Email, Password: "x"}
		err := repo.Create(nil, &duplicate)
		assert.True(t, database.IsDuplicateKeyError(err))
	})

	t.Run("find many filters by role and searches names", func(t *testing.T) {
		manager := integrationtestutil.CreateUser(db, &org, &department, models.UserRoleManager)
		manager.FirstName = "Grace"
		require.NoError(t, repo.Save(nil, &manager))

		role := string(models.UserRoleManager)
		page, err := repo.FindMany(dtos.UserFilter{Role: &role}, shared.PageInfo{Page: 1, PageSize: 10}, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)

		page, err = repo.FindMany(dtos.UserFilter{Search: "grac"}, shared.PageInfo{Page: 1, PageSize: 10}, nil)
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, manager.ID, page.Data[0].ID)
	})
}

func TestIssueRepositoryFindMany(t *testing.T) {
	db, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	org, department, reporter := integrationtestutil.CreateOrgDepartmentAndUser(db)
	assignee := integrationtestutil.CreateUser(db, &org, &department, models.UserRoleEmployee)
	repo := NewIssueRepository(db)

	for i := 0; i < 12; i++ {
		integrationtestutil.CreateIssue(db, reporter, models.IssueStatusOpen, nil)
	}
	assigned := integrationtestutil.CreateIssue(db, reporter, models.IssueStatusInProgress, func(issue *models.Issue) {
		issue.AssigneeID = &assignee.ID
		issue.Title = "Login button misaligned"
	})

	t.Run("pages and reports the total", func(t *testing.T) {
		page, err := repo.FindMany(dtos.IssueFilter{}, shared.PageInfo{Page: 2, PageSize: 10}, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(13), page.Total)
		assert.Len(t, page.Data, 3)
	})

	t.Run("filters by assignee and status", func(t *testing.T) {
		status := string(models.IssueStatusInProgress)
		page, err := repo.FindMany(dtos.IssueFilter{AssigneeID: &assignee.ID, Status: &status}, shared.PageInfo{Page: 1, PageSize: 10}, []string{"Assignee"})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		assert.Equal(t, assigned.ID, page.Data[0].ID)
		require.NotNil(t, page.Data[0].Assignee)
		assert.Equal(t, assignee.ID, page.Data[0].Assignee.ID)
	})

	t.Run("search matches the title case insensitively", func(t *testing.T) {
		page, err := repo.FindMany(dtos.IssueFilter{Search: "LOGIN"}, shared.PageInfo{Page: 1, PageSize: 10}, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), page.Total)
	})

	t.Run("status can move freely between any values", func(t *testing.T) {
		issue := integrationtestutil.CreateIssue(db, reporter, models.IssueStatusOpen, nil)
		for _, status := range []models.IssueStatus{models.IssueStatusClosed, models.IssueStatusOpen} {
			issue.Status = status
			require.NoError(t, repo.Save(nil, &issue))
			reloaded, err := repo.Read(issue.ID)
			require.NoError(t, err)
			assert.Equal(t, status, reloaded.Status)
		}
	})

	t.Run("deleting an issue removes its comments and attachments", func(t *testing.T) {
		issue := integrationtestutil.CreateIssue(db, reporter, models.IssueStatusOpen, nil)
		require.NoError(t, db.Create(&models.Comment{Content: "hi", UserID: reporter.ID, IssueID: issue.ID}).Error)
		require.NoError(t, db.Create(&models.Attachment{FileName: "a.png", FileURL: "/a.png", FileType: "image/png", FileSize: 1, IssueID: issue.ID}).Error)

		require.NoError(t, repo.Delete(nil, issue.ID))

		comments, err := NewCommentRepository(db).FindMany(&issue.ID, nil)
		require.NoError(t, err)
		assert.Empty(t, comments)
		attachments, err := NewAttachmentRepository(db).FindMany(&issue.ID, nil)
		require.NoError(t, err)
		assert.Empty(t, attachments)
	})
}

func TestRequestAccessRepository(t *testing.T) {
	db, terminate := integrationtestutil.InitDatabaseContainer()
	defer terminate()

	repo := NewRequestAccessRepository(db)
	create := func(email string, status models.RequestAccessStatus) {
		require.NoError(t, repo.Create(nil, &models.RequestAccess{
			CompanyName: "Acme",
			Name:        "Jane",
			Email:       email,
			Phone:       "+49 123 456789",
			TeamSize:    "11-50",
			Status:      status,
		}))
	}
	create("a@example.com", models.RequestAccessStatusPending)
	create("b@example.com", models.RequestAccessStatusPending)
	create("c@example.com", models.RequestAccessStatusApproved)

	counts, err := repo.CountByStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[models.RequestAccessStatusPending])
	assert.Equal(t, int64(1), counts[models.RequestAccessStatusApproved])
	assert.Equal(t, int64(0), counts[models.RequestAccessStatusRejected])

	pending := models.RequestAccessStatusPending
	page, err := repo.FindMany(&pending, shared.PageInfo{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)

	found, err := repo.FindByEmail("C@Example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RequestAccessStatusApproved, found.Status)

	all := utils.Map(page.Data, func(r models.RequestAccess) string { return r.Email })
	assert.ElementsMatch(t, []string{"a@example.com", "b@example.com"}, all)
}
