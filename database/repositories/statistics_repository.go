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
	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"gorm.io/gorm"
)

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) *statisticsRepository {
	return &statisticsRepository{
		db: db,
	}
}

// scopedIssues applies the scope to a query on the issues table. An organization
// owns issues only through their department.
func (r *statisticsRepository) scopedIssues(scope dtos.IssueScope) *gorm.DB {
	q := r.db.Model(&models.Issue{})
	if scope.OrganizationID != nil {
		q = q.Joins("JOIN departments d ON d.id = issues.department_id").
			Where("d.organization_id = ?", *scope.OrganizationID)
	}
	if scope.DepartmentID != nil {
		q = q.Where("issues.department_id = ?", *scope.DepartmentID)
	}
	if scope.ProjectID != nil {
		q = q.Where("issues.project_id = ?", *scope.ProjectID)
	}
	if scope.AssigneeID != nil {
		q = q.Where("issues.assignee_id = ?", *scope.AssigneeID)
	}
	return q
}

func (r *statisticsRepository) CountIssuesByStatus(scope dtos.IssueScope) (map[models.IssueStatus]int64, error) {
	var rows []struct {
		Status models.IssueStatus
		Count  int64
	}
	err := r.scopedIssues(scope).
		Select("issues.status AS status, COUNT(*) AS count").
		Group("issues.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.IssueStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// CountIssuesByStatusGroupedBy counts issues per (group, status). Issues with a NULL group column are skipped.
func (r *statisticsRepository) CountIssuesByStatusGroupedBy(grouping dtos.IssueGrouping, scope dtos.IssueScope) ([]dtos.GroupedStatusCount, error) {
	column := "issues." + string(grouping)
	var rows []dtos.GroupedStatusCount
	err := r.scopedIssues(scope).
		Select(column + " AS group_id, issues.status AS status, COUNT(*) AS count").
		Where(column + " IS NOT NULL").
		Group(column + ", issues.status").
		Scan(&rows).Error
	return rows, err
}

func (r *statisticsRepository) CountUsers(organizationID *uuid.UUID, departmentID *uuid.UUID) (int64, error) {
	q := r.db.Model(&models.User{})
	if organizationID != nil {
		q = q.Where("organization_id = ?", *organizationID)
	}
	if departmentID != nil {
		q = q.Where("department_id = ?", *departmentID)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *statisticsRepository) CountDepartments(organizationID *uuid.UUID) (int64, error) {
	q := r.db.Model(&models.Department{})
	if organizationID != nil {
		q = q.Where("organization_id = ?", *organizationID)
	}
	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *statisticsRepository) CountProjects() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}

func (r *statisticsRepository) CountUsersByDepartment() (map[uuid.UUID]int64, error) {
	var rows []struct {
		DepartmentID uuid.UUID
		Count        int64
	}
	err := r.db.Model(&models.User{}).
		Select("department_id, COUNT(*) AS count").
		Where("department_id IS NOT NULL").
		Group("department_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.DepartmentID] = row.Count
	}
	return counts, nil
}

func (r *statisticsRepository) CountTeamMembersByProject() (map[uuid.UUID]int64, error) {
	var rows []struct {
		ProjectID uuid.UUID
		Count     int64
	}
	err := r.db.Table("project_team_members").
		Select("project_id, COUNT(*) AS count").
		Group("project_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		counts[row.ProjectID] = row.Count
	}
	return counts, nil
}

// FindTeamMembers lists users with their department, optionally restricted to one department.
func (r *statisticsRepository) FindTeamMembers(departmentID *uuid.UUID) ([]models.User, error) {
	var users []models.User
	q := r.db.Preload("Department")
	if departmentID != nil {
		q = q.Where("department_id = ?", *departmentID)
	}
	err := q.Order("first_name ASC, last_name ASC").Find(&users).Error
	return users, err
}

func (r *statisticsRepository) RecentUsers(limit int) ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at DESC").Limit(limit).Find(&users).Error
	return users, err
}

func (r *statisticsRepository) RecentDepartments(limit int) ([]models.Department, error) {
	var departments []models.Department
	err := r.db.Order("created_at DESC").Limit(limit).Find(&departments).Error
	return departments, err
}

// RecentlyResolvedIssues orders by updated_at, the closest thing to a resolution timestamp.
func (r *statisticsRepository) RecentlyResolvedIssues(limit int) ([]models.Issue, error) {
	var issues []models.Issue
	err := r.db.Where("status = ?", models.IssueStatusResolved).
		Order("updated_at DESC").
		Limit(limit).
		Find(&issues).Error
	return issues, err
}
