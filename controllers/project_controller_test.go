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

package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectControllerCreate(t *testing.T) {
	departmentID, memberID := uuid.New(), uuid.New()

	t.Run("dates must be plain dates", func(t *testing.T) {
		ctx, _ := jsonContext(http.MethodPost, "/projects/", `{"name": "Relaunch", "startDate": "01.02.2025", "endDate": "2025-03-01", "departmentId": "`+departmentID.String()+`"}`)

		err := NewProjectController(nil).Create(ctx)

		assertHTTPError(t, err, 400, "startDate must be a date in the format YYYY-MM-DD")
	})

	t.Run("should hand team members to the service", func(t *testing.T) {
		ctx, rec := jsonContext(http.MethodPost, "/projects/", `{"name": "Relaunch", "startDate": "2025-02-01", "endDate": "2025-03-01", "departmentId": "`+departmentID.String()+`", "teamMemberIds": ["`+memberID.String()+`"]}`)

		projectService := mocks.NewProjectService(t)
		projectService.On("Create", mock.MatchedBy(func(p *models.Project) bool {
			return p.DepartmentID == departmentID && time.Time(p.StartDate).Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
		}), []uuid.UUID{memberID}).Return(nil)

		err := NewProjectController(projectService).Create(ctx)

		require.NoError(t, err)
		var project dtos.ProjectDTO
		decodeEnvelope(t, rec, &project)
		assert.Equal(t, "2025-02-01", project.StartDate)
		assert.Equal(t, "active", project.Status)
	})
}

func TestProjectControllerDelete(t *testing.T) {
	id := uuid.New()
	ctx, _ := jsonContext(http.MethodDelete, "/projects/"+id.String()+"/", "")
	withID(ctx, id)

	projectService := mocks.NewProjectService(t)
	projectService.On("Delete", id).Return(echo.NewHTTPError(409, "Cannot delete project with active issues"))

	err := NewProjectController(projectService).Delete(ctx)

	assertHTTPError(t, err, 409, "Cannot delete project with active issues")
}

func TestProjectControllerRead(t *testing.T) {
	t.Run("a malformed id is a bad request", func(t *testing.T) {
		ctx, _ := jsonContext(http.MethodGet, "/projects/abc/", "")
		ctx.SetParamNames("id")
		ctx.SetParamValues("abc")

		err := NewProjectController(nil).Read(ctx)

		assertHTTPError(t, err, 400, "invalid id")
	})

	t.Run("relations are matched case insensitive", func(t *testing.T) {
		id := uuid.New()
		ctx, _ := jsonContext(http.MethodGet, "/projects/"+id.String()+"/?include=teammembers,department", "")
		withID(ctx, id)

		projectService := mocks.NewProjectService(t)
		projectService.On("Read", id, []string{"TeamMembers", "Department"}).Return(models.Project{Model: models.Model{ID: id}}, nil)

		assert.NoError(t, NewProjectController(projectService).Read(ctx))
	})
}
