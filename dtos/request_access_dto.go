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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type RequestAccessCreateRequest struct {
	CompanyName string  `json:"companyName" validate:"required,min=2,max=255"`
	Name        string  `json:"name" validate:"required,min=2,max=255"`
	Email       string  `json:"email" validate:"required,email"`
	Phone       string  `json:"phone" validate:"required,min=10,max=32,phone"`
	TeamSize    string  `json:"teamSize" validate:"required,oneof=1-10 11-50 51-200 201-500 500+"`
	Message     *string `json:"message" validate:"omitempty,max=2000"`
}

type RequestAccessStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=APPROVED REJECTED"`
}

type RequestAccessDTO struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"companyName"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	TeamSize    string    `json:"teamSize"`
	Message     *string   `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type AdminStats struct {
	TotalRequests    int64 `json:"totalRequests"`
	PendingRequests  int64 `json:"pendingRequests"`
	ApprovedRequests int64 `json:"approvedRequests"`
	RejectedRequests int64 `json:"rejectedRequests"`
}
