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
	"fmt"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/l3montree-dev/issuetracker/transformer"
	"github.com/l3montree-dev/issuetracker/utils"
	"github.com/labstack/echo/v4"
)

type AttachmentController struct {
	attachmentService shared.AttachmentService
}

func NewAttachmentController(attachmentService shared.AttachmentService) *AttachmentController {
	return &AttachmentController{
		attachmentService: attachmentService,
	}
}

func isMultipart(ctx shared.Context) bool {
	return strings.HasPrefix(ctx.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// attachmentFromUpload describes an uploaded file. Only the metadata is kept, the content is discarded.
func attachmentFromUpload(ctx shared.Context, issueID uuid.UUID) (dtos.AttachmentCreateRequest, error) {
	file, err := ctx.FormFile("file")
	if err != nil {
		return dtos.AttachmentCreateRequest{}, echo.NewHTTPError(400, "file is required").WithInternal(err)
	}

	fileType := file.Header.Get(echo.HeaderContentType)
	if fileType == "" {
		fileType = "application/octet-stream"
	}
	return dtos.AttachmentCreateRequest{
		FileName: file.Filename,
		FileURL:  fmt.Sprintf("/uploads/%s/%s", issueID, url.PathEscape(file.Filename)),
		FileType: fileType,
		FileSize: file.Size,
		IssueID:  issueID,
	}, nil
}

func (c *AttachmentController) create(ctx shared.Context, req dtos.AttachmentCreateRequest) error {
	if err := validate(req); err != nil {
		return err
	}

	attachment := transformer.AttachmentCreateRequestToModel(req, shared.GetSession(ctx).GetUserID())
	if err := c.attachmentService.Create(&attachment); err != nil {
		return err
	}
	return respond(ctx, 201, transformer.AttachmentModelToDTO(attachment))
}

func (c *AttachmentController) Create(ctx shared.Context) error {
	var req dtos.AttachmentCreateRequest
	if err := bind(ctx, &req); err != nil {
		return err
	}
	return c.create(ctx, req)
}

// CreateForIssue accepts either a multipart upload in the file field or JSON metadata.
func (c *AttachmentController) CreateForIssue(ctx shared.Context) error {
	issueID, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}

	var req dtos.AttachmentCreateRequest
	if isMultipart(ctx) {
		if req, err = attachmentFromUpload(ctx, issueID); err != nil {
			return err
		}
	} else {
		if err := bind(ctx, &req); err != nil {
			return err
		}
		req.IssueID = issueID
	}
	return c.create(ctx, req)
}

func (c *AttachmentController) list(ctx shared.Context, issueID *uuid.UUID) error {
	relations, err := shared.GetRelations(ctx, models.AttachmentRelations)
	if err != nil {
		return err
	}

	attachments, err := c.attachmentService.List(issueID, relations)
	if err != nil {
		return err
	}
	return respond(ctx, 200, utils.Map(attachments, transformer.AttachmentModelToDTO))
}

func (c *AttachmentController) List(ctx shared.Context) error {
	issueID, err := shared.GetUUIDQuery(ctx, "issueId")
	if err != nil {
		return err
	}
	return c.list(ctx, issueID)
}

func (c *AttachmentController) ListForIssue(ctx shared.Context) error {
	issueID, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	return c.list(ctx, &issueID)
}

func (c *AttachmentController) Read(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	relations, err := shared.GetRelations(ctx, models.AttachmentRelations)
	if err != nil {
		return err
	}

	attachment, err := c.attachmentService.Read(id, relations)
	if err != nil {
		return err
	}
	return respond(ctx, 200, transformer.AttachmentModelToDTO(attachment))
}

func (c *AttachmentController) Delete(ctx shared.Context) error {
	id, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	if err := c.attachmentService.Delete(id); err != nil {
		return err
	}
	return respondWithMessage(ctx, 200, nil, "Attachment deleted successfully")
}

// DeleteForIssue takes the attachment from the attachmentId query parameter.
func (c *AttachmentController) DeleteForIssue(ctx shared.Context) error {
	issueID, err := shared.GetUUIDParam(ctx, "id")
	if err != nil {
		return err
	}
	attachmentID, err := shared.GetUUIDQuery(ctx, "attachmentId")
	if err != nil {
		return err
	}
	if attachmentID == nil {
		return echo.NewHTTPError(400, "attachmentId is required")
	}

	if err := c.attachmentService.DeleteFromIssue(issueID, *attachmentID); err != nil {
		return err
	}
	return respondWithMessage(ctx, 200, nil, "Attachment deleted successfully")
}
