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
	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/l3montree-dev/issuetracker/transformer"
	"github.com/l3montree-dev/issuetracker/utils"
)

type CommentController struct {
	commentService shared.CommentService
}

func NewCommentController(commentService shared.CommentService) *CommentController {
	return &CommentController{
		commentService: commentService,
	}
}

func (c *CommentController) create(ctx shared.Context, req dtos.CommentCreateRequest) error {
	if err := validate(req); err != nil {
		return err
	}

	comment := transformer.CommentCreateRequestToModel(req, shared.GetSession(ctx).GetUserID())
	if err := c.commentService.Create(&comment); err != nil {
		return err
	}
	return respond(ctx, 201, transformer.CommentModelToDTO(comment))
}

func (c *CommentController) Create(ctx shared.Context) error {
	var req dtos.CommentCreateRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}
	return c.create(ctx, req)
}

// CreateForIssue takes the issue from the path instead of the body.
func (c *CommentController) CreateForIssue(ctx shared.Context) error {
	issueID, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dtos.CommentCreateRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}
	req.IssueID = issueID
	return c.create(ctx, req)
}

func (c *CommentController) list(ctx shared.Context, issueID *uuid.UUID) error {
	relations, err := shared.GetRelations(ctx, models.CommentRelations)
	if err != nil {
		return err
	}

	comments, err := c.commentService.List(issueID, relations)
	if err != nil {
		return err
	}
	return respond(ctx, 200, utils.Map(comments, transformer.CommentModelToDTO))
}

func (c *CommentController) List(ctx shared.Context) error {
	issueID, err := shared.GetUUIDQuery(ctx, "issueId")
	if err != nil {
		return err
	}
	return c.list(ctx, issueID)
}

func (c *CommentController) ListForIssue(ctx shared.Context) error {
	issueID, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	return c.list(ctx, &issueID)
}

func (c *CommentController) Read(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	relations, err := shared.GetRelations(ctx, models.CommentRelations)
	if err != nil {
		return err
	}

	comment, err := c.commentService.Read(id, relations)
	if err != nil {
		return err
	}
	return respond(ctx, 200, transformer.CommentModelToDTO(comment))
}

func (c *CommentController) Update(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dtos.CommentPatchRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	comment, err := c.commentService.Update(id, req)
	if err != nil {
		return err
	}
	return respond(ctx, 200, transformer.CommentModelToDTO(comment))
}

func (c *CommentController) Delete(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.commentService.Delete(id); err != nil {
		return err
	}
	return respondWithMessage(ctx, 200, nil, "Comment deleted successfully")
}
