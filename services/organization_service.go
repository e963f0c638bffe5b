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
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/l3montree-dev/issuetracker/transformer"
	"github.com/labstack/echo/v4"
)

type OrganizationService struct {
	organizationRepository shared.OrganizationRepository
}

var _ shared.OrganizationService = &OrganizationService{}

func NewOrganizationService(organizationRepository shared.OrganizationRepository) *OrganizationService {
	return &OrganizationService{
		organizationRepository: organizationRepository,
	}
}

func (s *OrganizationService) Create(org *models.Organization) error {
	if org.Slug == "" {
		org.Slug = slug.Make(org.Name)
	}
	if org.Slug == "" {
		return echo.NewHTTPError(400, "name must contain at least one letter or digit")
	}

	free, err := s.organizationRepository.FirstFreeSlug(org.Slug)
	if err != nil {
		return echo.NewHTTPError(500, "could not create organization").WithInternal(err)
	}
	org.Slug = free

	if err := s.organizationRepository.Create(nil, org); err != nil {
		return writeError(err, "organization with that slug already exists", "could not create organization")
	}
	return nil
}

func (s *OrganizationService) Update(id uuid.UUID, req dtos.OrganizationPatchRequest) (models.Organization, error) {
	org, err := s.organizationRepository.Read(id)
	if err != nil {
		return org, readError(err, "Organization")
	}

	if !transformer.ApplyOrganizationPatchRequestToModel(req, &org) {
		return org, nil
	}

	if err := s.organizationRepository.Save(nil, &org); err != nil {
		return org, writeError(err, "organization with that slug already exists", "could not update organization")
	}
	return org, nil
}

// Delete keeps departments and users, their organization reference is cleared by the database.
func (s *OrganizationService) Delete(id uuid.UUID) error {
	if _, err := s.organizationRepository.Read(id); err != nil {
		return readError(err, "Organization")
	}
	if err := s.organizationRepository.Delete(nil, id); err != nil {
		return echo.NewHTTPError(500, "could not delete organization").WithInternal(err)
	}
	return nil
}

func (s *OrganizationService) Read(id uuid.UUID, relations []string) (models.Organization, error) {
	org, err := s.organizationRepository.ReadWithRelations(id, relations)
	if err != nil {
		return org, readError(err, "Organization")
	}
	return org, nil
}

func (s *OrganizationService) List(relations []string) ([]models.Organization, error) {
	orgs, err := s.organizationRepository.FindMany(relations)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not fetch organizations").WithInternal(err)
	}
	return orgs, nil
}
