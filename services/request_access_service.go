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

package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/monitoring"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const requestExistsMessage = "A request with this email already exists"

type RequestAccessService struct {
	requestAccessRepository shared.RequestAccessRepository
}

var _ shared.RequestAccessService = &RequestAccessService{}

func NewRequestAccessService(requestAccessRepository shared.RequestAccessRepository) *RequestAccessService {
	return &RequestAccessService{
		requestAccessRepository: requestAccessRepository,
	}
}

func (s *RequestAccessService) Create(request *models.RequestAccess) error {
	_, err := s.requestAccessRepository.FindByEmail(request.Email)
	if err == nil {
		return echo.NewHTTPError(409, requestExistsMessage)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(500, "could not submit request").WithInternal(err)
	}

	request.Status = models.RequestAccessStatusPending
	if err := s.requestAccessRepository.Create(nil, request); err != nil {
		return writeError(err, requestExistsMessage, "could not submit request")
	}
	monitoring.AccessRequestAmount.WithLabelValues(string(request.Status)).Inc()
	return nil
}

func (s *RequestAccessService) List(status *models.RequestAccessStatus, pageInfo shared.PageInfo) (shared.Paged[models.RequestAccess], error) {
	requests, err := s.requestAccessRepository.FindMany(status, pageInfo)
	if err != nil {
		return requests, echo.NewHTTPError(500, "could not fetch requests").WithInternal(err)
	}
	return requests, nil
}

func (s *RequestAccessService) Read(id uuid.UUID) (models.RequestAccess, error) {
	request, err := s.requestAccessRepository.Read(id)
	if err != nil {
		return request, readError(err, "Request")
	}
	return request, nil
}

// Decide approves or rejects a pending request. A decided request has to be reset first.
func (s *RequestAccessService) Decide(id uuid.UUID, status models.RequestAccessStatus) (models.RequestAccess, error) {
	if status != models.RequestAccessStatusApproved && status != models.RequestAccessStatusRejected {
		return models.RequestAccess{}, echo.NewHTTPError(400, "status must be one of APPROVED REJECTED")
	}

	request, err := s.Read(id)
	if err != nil {
		return request, err
	}
	if request.Status != models.RequestAccessStatusPending {
		return request, echo.NewHTTPError(409, fmt.Sprintf("request is already %s", request.Status))
	}

	request.Status = status
	if err := s.requestAccessRepository.Save(nil, &request); err != nil {
		return request, echo.NewHTTPError(500, "could not update request").WithInternal(err)
	}
	monitoring.AccessRequestAmount.WithLabelValues(string(status)).Inc()
	return request, nil
}

func (s *RequestAccessService) Reset(id uuid.UUID) (models.RequestAccess, error) {
	request, err := s.Read(id)
	if err != nil {
		return request, err
	}
	if request.Status == models.RequestAccessStatusPending {
		return request, nil
	}

	request.Status = models.RequestAccessStatusPending
	if err := s.requestAccessRepository.Save(nil, &request); err != nil {
		return request, echo.NewHTTPError(500, "could not reset request").WithInternal(err)
	}
	return request, nil
}

func (s *RequestAccessService) Stats() (dtos.AdminStats, error) {
	counts, err := s.requestAccessRepository.CountByStatus()
	if err != nil {
		return dtos.AdminStats{}, echo.NewHTTPError(500, "could not fetch request statistics").WithInternal(err)
	}

	stats := dtos.AdminStats{
		PendingRequests:  counts[models.RequestAccessStatusPending],
		ApprovedRequests: counts[models.RequestAccessStatusApproved],
		RejectedRequests: counts[models.RequestAccessStatusRejected],
	}
	stats.TotalRequests = stats.PendingRequests + stats.ApprovedRequests + stats.RejectedRequests
	return stats, nil
}
