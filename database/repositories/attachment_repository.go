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
)

type attachmentRepository struct {
	db *gorm.DB
	utils.Repository[uuid.UUID, models.Attachment, *gorm.DB]
}

func NewAttachmentRepository(db *gorm.DB) *attachmentRepository {
	return &attachmentRepository{
		db:         db,
		Repository: newGormRepository[uuid.UUID, models.Attachment](db),
	}
}

func (r *attachmentRepository) FindMany(issueID *uuid.UUID, relations []string) ([]models.Attachment, error) {
	var attachments []models.Attachment
	q := preload(r.db, relations)
	if issueID != nil {
		q = q.Where("issue_id = ?", *issueID)
	}
	err := q.Order("created_at DESC").Find(&attachments).Error
	return attachments, err
}
