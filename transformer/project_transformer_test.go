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

package transformer_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/transformer"
	"github.com/l3montree-dev/issuetracker/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestProjectCreateRequestToModel(t *testing.T) {
	departmentID := uuid.New()

	project, err := transformer.ProjectCreateRequestToModel(dtos.ProjectCreateRequest{
		Name:         "Website relaunch",
		StartDate:    "2025-01-01",
		EndDate:      "2025-03-31",
		DepartmentID: departmentID,
	})
	require.NoError(t, err)

	assert.Equal(t, models.ProjectStatusActive, project.Status)
	assert.Equal(t, models.ProjectPriorityMedium, project.Priority)
	assert.Equal(t, departmentID, project.DepartmentID)
	assert.Equal(t, "2025-03-31", transformer.ProjectModelToDTO(project).EndDate)
}

func TestApplyProjectPatchRequestToModel(t *testing.T) {
	start := datatypes.Date(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	project := models.Project{
		Name:      "Website relaunch",
		Status:    models.ProjectStatusActive,
		Priority:  models.ProjectPriorityLow,
		StartDate: start,
	}

	t.Run("should only change the supplied fields", func(t *testing.T) {
		p := project
		updated, err := transformer.ApplyProjectPatchRequestToModel(dtos.ProjectPatchRequest{
			Status: utils.Ptr("on-hold"),
		}, &p)
		require.NoError(t, err)

		assert.True(t, updated)
		assert.Equal(t, models.ProjectStatusOnHold, p.Status)
		assert.Equal(t, "Website relaunch", p.Name)
		assert.Equal(t, models.ProjectPriorityLow, p.Priority)
		assert.Equal(t, start, p.StartDate)
	})

	t.Run("should reject a malformed date", func(t *testing.T) {
		p := project
		_, err := transformer.ApplyProjectPatchRequestToModel(dtos.ProjectPatchRequest{
			EndDate: utils.Ptr("31.03.2025"),
		}, &p)
		assert.Error(t, err)
	})
}
