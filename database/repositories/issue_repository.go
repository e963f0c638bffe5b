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
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/l3montree-dev/issuetracker/utils"
	"gorm.io/gorm"
)

type issueRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Issue, *gorm.DB]
}

func NewIssueRepository(db *gorm.DB) *issueRepository {
	return &issueRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Issue](db),
	}
}

func applyIssueFilter(q *gorm.DB, filter dtos.IssueFilter) *gorm.DB {
	if filter.AssigneeID != nil {
		q = q.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.ReporterID != nil {
		q = q.Where("reporter_id = ?", *filter.ReporterID)
	}
	if filter.DepartmentID != nil {
		q = q.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.ProjectID != nil {
		q = q.Where("project_id = ?", *filter.ProjectID)
	}
	if filter.Status != nil {
		q = q.Where("status = ?", *filter.Status)
	}
	if filter.Priority != nil {
		q = q.Where("priority = ?", *filter.Priority)
	}
	if filter.Type != nil {
		q = q.Where("type = ?", *filter.Type)
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(description) LIKE ?)", like, like)
	}
	return q
}

func (r *issueRepository) FindMany(filter dtos.IssueFilter, pageInfo shared.PageInfo, relations []string) (shared.Paged[models.Issue], error) {
	q := applyIssueFilter(r.db.Model(&models.Issue{}), filter)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paged[models.Issue]{}, err
	}

	var issues []models.Issue
	err := pageInfo.ApplyOnDB(preload(q, relations)).Order("created_at DESC").Find(&issues).Error
	if err != nil {
		return shared.Paged[models.Issue]{}, err
	}

	return shared.NewPaged(pageInfo, total, issues), nil
}
