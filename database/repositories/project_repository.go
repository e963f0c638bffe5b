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
	"github.com/l3montree-dev/issuetracker/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type projectRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Project, *gorm.DB]
}

func NewProjectRepository(db *gorm.DB) *projectRepository {
	return &projectRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Project](db),
	}
}

func (r *projectRepository) FindMany(departmentID *uuid.UUID, relations []string) ([]models.Project, error) {
	var projects []models.Project
	q := preload(r.db, relations)
	if departmentID != nil {
		q = q.Where("department_id = ?", *departmentID)
	}
	err := q.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

// CountUnresolvedIssues locks the project row, see departmentRepository.CountUsers.
func (r *projectRepository) CountUnresolvedIssues(tx *gorm.DB, projectID uuid.UUID) (int64, error) {
	db := r.GetDB(tx)
	var locked models.Project
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&locked, "id = ?", projectID).Error; err != nil {
		return 0, err
	}

	var count int64
	err := db.Model(&models.Issue{}).
		Where("project_id = ? AND status <> ?", projectID, models.IssueStatusResolved).
		Count(&count).Error
	return count, err
}

func (r *projectRepository) ReplaceTeamMembers(tx *gorm.DB, project *models.Project, members []models.User) error {
	association := r.GetDB(tx).Model(project).Association("TeamMembers")
	if len(members) == 0 {
		return association.Clear()
	}
	return association.Replace(members)
}
