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
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/monitoring"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/l3montree-dev/issuetracker/transformer"
	"github.com/labstack/echo/v4"
)

type CommentService struct {
	commentRepository shared.CommentRepository
	issueRepository   shared.IssueRepository
	userRepository    shared.UserRepository
}

var _ shared.CommentService = &CommentService{}

func NewCommentService(commentRepository shared.CommentRepository, issueRepository shared.IssueRepository, userRepository shared.UserRepository) *CommentService {
	return &CommentService{
		commentRepository: commentRepository,
		issueRepository:   issueRepository,
		userRepository:    userRepository,
	}
}

func (s *CommentService) Create(comment *models.Comment) error {
	if err := ensureExists(s.issueRepository.Read, &comment.IssueID, "Issue"); err != nil {
		return err
	}
	if err := ensureExists(s.userRepository.Read, &comment.UserID, "User"); err != nil {
		return err
	}

	if err := s.commentRepository.Create(nil, comment); err != nil {
		return echo.NewHTTPError(500, "Failed to create comment").WithInternal(err)
	}
	monitoring.CommentCreatedAmount.Inc()
	return nil
}

func (s *CommentService) Update(id uuid.UUID, req dtos.CommentPatchRequest) (models.Comment, error) {
	comment, err := s.commentRepository.Read(id)
	if err != nil {
		return comment, readError(err, "Comment")
	}

	if !transformer.ApplyCommentPatchRequestToModel(req, &comment) {
		return comment, nil
	}

	if err := s.commentRepository.Save(nil, &comment); err != nil {
		return comment, echo.NewHTTPError(500, "Failed to update comment").WithInternal(err)
	}
	return comment, nil
}

func (s *CommentService) Delete(id uuid.UUID) error {
	if _, err := s.commentRepository.Read(id); err != nil {
		return readError(err, "Comment")
	}
	if err := s.commentRepository.Delete(nil, id); err != nil {
		return echo.NewHTTPError(500, "Failed to delete comment").WithInternal(err)
	}
	return nil
}

func (s *CommentService) Read(id uuid.UUID, relations []string) (models.Comment, error) {
	comment, err := s.commentRepository.ReadWithRelations(id, relations)
	if err != nil {
		return comment, readError(err, "Comment")
	}
	return comment, nil
}

// List answers with 404 if the issue to list the comments of does not exist.
func (s *CommentService) List(issueID *uuid.UUID, relations []string) ([]models.Comment, error) {
	if err := ensureExists(s.issueRepository.Read, issueID, "Issue"); err != nil {
		return nil, err
	}
	comments, err := s.commentRepository.FindMany(issueID, relations)
	if err != nil {
		return nil, echo.NewHTTPError(500, "Failed to fetch comments").WithInternal(err)
	}
	return comments, nil
}
