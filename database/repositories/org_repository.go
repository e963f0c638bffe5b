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
	"fmt"

	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/utils"
	"gorm.io/gorm"
)

type organizationRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Organization, *gorm.DB]
}

func NewOrganizationRepository(db *gorm.DB) *organizationRepository {
	return &organizationRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Organization](db),
	}
}

func (g *organizationRepository) FindMany(relations []string) ([]models.Organization, error) {
	var orgs []models.Organization
	err := preload(g.db, relations).Order("name ASC").Find(&orgs).Error
	return orgs, err
}

func (g *organizationRepository) FirstFreeSlug(organizationSlug string) (string, error) {
	var slugs []string
	err := g.db.Model(&models.Organization{}).
		Where("slug LIKE ?", organizationSlug+"%").
		Pluck("slug", &slugs).Error
	if err != nil {
		return "", err
	}

	baseTaken := false
	existing := make(map[string]bool)
	for _, s := range slugs {
		existing[s] = true
		if s == organizationSlug {
			baseTaken = true
		}
	}

	if !baseTaken {
		return organizationSlug, nil
	}

	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d", organizationSlug, i)
		if !existing[candidate] {
			return candidate, nil
		}
	}
}
