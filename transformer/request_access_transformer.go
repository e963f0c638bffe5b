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

package transformer

import (
	"strings"

	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
)

// RequestAccessCreateRequestToModel always starts a request as pending, whatever the client sends.
func RequestAccessCreateRequestToModel(c dtos.RequestAccessCreateRequest) models.RequestAccess {
	return models.RequestAccess{
		CompanyName: strings.TrimSpace(c.CompanyName),
		Name:        strings.TrimSpace(c.Name),
		Email:       NormalizeEmail(c.Email),
		Phone:       strings.TrimSpace(c.Phone),
		TeamSize:    c.TeamSize,
		Message:     c.Message,
		Status:      models.RequestAccessStatusPending,
	}
}

func RequestAccessModelToDTO(r models.RequestAccess) dtos.RequestAccessDTO {
	return dtos.RequestAccessDTO{
		ID:          r.ID,
		CompanyName: r.CompanyName,
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		TeamSize:    r.TeamSize,
		Message:     r.Message,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
