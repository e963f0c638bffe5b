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
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/l3montree-dev/issuetracker/utils"
	"gorm.io/gorm"
)

type requestAccessRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.RequestAccess, *gorm.DB]
}

func NewRequestAccessRepository(db *gorm.DB) *requestAccessRepository {
	return &requestAccessRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.RequestAccess](db),
	}
}

func (r *requestAccessRepository) FindByEmail(email string) (models.RequestAccess, error) {
	var request models.RequestAccess
	err := r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&request).Error
	return request, err
}

func (r *requestAccessRepository) FindMany(status *models.RequestAccessStatus, pageInfo shared.PageInfo) (shared.Paged[models.RequestAccess], error) {
	q := r.db.Model(&models.RequestAccess{})
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return shared.Paged[models.RequestAccess]{}, err
	}

	var requests []models.RequestAccess
	if err := pageInfo.ApplyOnDB(q).Order("created_at DESC").Find(&requests).Error; err != nil {
		return shared.Paged[models.RequestAccess]{}, err
	}

	return shared.NewPaged(pageInfo, total, requests), nil
}

func (r *requestAccessRepository) CountByStatus() (map[models.RequestAccessStatus]int64, error) {
	var rows []struct {
		Status models.RequestAccessStatus
		Count  int64
	}
	err := r.db.Model(&models.RequestAccess{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.RequestAccessStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
