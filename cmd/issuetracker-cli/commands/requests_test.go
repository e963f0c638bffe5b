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

package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/stretchr/testify/assert"
)

func TestRenderRequests(t *testing.T) {
	id := uuid.New()
	requests := shared.NewPaged(shared.PageInfo{Page: 1, PageSize: 20}, 1, []models.RequestAccess{{
		Model:       models.Model{ID: id, CreatedAt: time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)},
		CompanyName: "Acme GmbH",
		Name:        "Jane Doe",
		Email:       "jane@acme.example",
		TeamSize:    "11-50",
		Status:      models.RequestAccessStatusPending,
	}})

	var buf bytes.Buffer
	renderRequests(&buf, requests)

	out := buf.String()
	assert.Contains(t, out, id.String())
	assert.Contains(t, out, "Acme GmbH")
	assert.Contains(t, out, "PENDING")
	assert.Contains(t, out, "2025-03-01 09:30")
}

func TestRequestsCommandTree(t *testing.T) {
	cmd := NewRequestsCommand()
	names := make([]string, 0)
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"list", "approve", "reject", "reset"}, names)

	approve, _, err := cmd.Find([]string{"approve"})
	assert.NoError(t, err)
	assert.Error(t, approve.Args(approve, nil))
}
