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

type departmentRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Department, *gorm.DB]
}

func NewDepartmentRepository(db *gorm.DB) *departmentRepository {
	return &departmentRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Department](db),
	}
}

func (r *departmentRepository) FindMany(organizationID *uuid.UUID, relations []string) ([]models.Department, error) {
	var departments []models.Department
	q := preload(r.db, relations)
	if organizationID != nil {
		q = q.Where("organization_id = ?", *organizationID)
	}
	err := q.Order("name ASC").Find(&departments).Error
	return departments, err
}

// CountUsers locks the department row first so no user can be moved into it
// between the count and a following delete in the same transaction.
func (r *departmentRepository) CountUsers(tx *gorm.DB, departmentID uuid.UUID) (int64, error) {
	db := r.GetDB(tx)
	var locked models.Department
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&locked, "id = ?", departmentID).Error; err != nil {
		return 0, err
	}

	var count int64
	err := db.Model(&models.User{}).Where("department_id = ?", departmentID).Count(&count).Error
	return count, err
}

// CountProjects is meant to run after CountUsers in the same transaction, which holds the row lock.
func (r *departmentRepository) CountProjects(tx *gorm.DB, departmentID uuid.UUID) (int64, error) {
	var count int64
	err := r.GetDB(tx).Model(&models.Project{}).Where("department_id = ?", departmentID).Count(&count).Error
	return count, err
}
