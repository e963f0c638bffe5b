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

package integrationtestutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateOrgDepartmentAndUser seeds the smallest tenant every other fixture hangs off.
func CreateOrgDepartmentAndUser(db *gorm.DB) (models.Organization, models.Department, models.User) {
	org := models.Organization{
		Name: "Test Org",
		Slug: "test-org-" + uuid.NewString()[:8],
	}
	if err := db.Create(&org).Error; err != nil {
		panic(err)
	}

	department := models.Department{
		Name:           "Engineering",
		OrganizationID: &org.ID,
	}
	if err := db.Create(&department).Error; err != nil {
		panic(err)
	}

	user := CreateUser(db, &org, &department, models.UserRoleEmployee)
	return org, department, user
}

func CreateUser(db *gorm.DB, org *models.Organization, department *models.Department, role models.UserRole) models.User {
	user := models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     uuid.NewString() + "@example.com",
		Password:  "not-a-bcrypt-hash",
		Role:      role,
		Status:    models.UserStatusActive,
	}
	if org != nil {
		user.OrganizationID = &org.ID
	}
	if department != nil {
		user.DepartmentID = &department.ID
	}
	if err := db.Create(&user).Error; err != nil {
		panic(err)
	}
	return user
}

func CreateProject(db *gorm.DB, department models.Department) models.Project {
	now := time.Now()
	project := models.Project{
		Name:         "Test Project",
		Description:  "a project",
		Status:       models.ProjectStatusActive,
		Priority:     models.ProjectPriorityMedium,
		StartDate:    datatypes.Date(now),
		EndDate:      datatypes.Date(now.AddDate(0, 1, 0)),
		DepartmentID: department.ID,
	}
	if err := db.Create(&project).Error; err != nil {
		panic(err)
	}
	return project
}

func CreateIssue(db *gorm.DB, reporter models.User, status models.IssueStatus, modify func(issue *models.Issue)) models.Issue {
	issue := models.Issue{
		Title:       "Test Issue",
		Description: "something is broken",
		Status:      status,
		Priority:    models.IssuePriorityMedium,
		Type:        models.IssueTypeBug,
		ReporterID:  reporter.ID,
	}
	if modify != nil {
		modify(&issue)
	}
	if err := db.Create(&issue).Error; err != nil {
		panic(err)
	}
	return issue
}
