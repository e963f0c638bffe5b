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

package router

import (
	"github.com/l3montree-dev/issuetracker/controllers"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/labstack/echo/v4"
)

type IssueRouter struct {
	*echo.Group
}

func NewIssueRouter(
	sessionRouter SessionRouter,
	issueController *controllers.IssueController,
	commentController *controllers.CommentController,
	attachmentController *controllers.AttachmentController,
) IssueRouter {
	rbac := sessionRouter.RBAC

	issueRouter := sessionRouter.Group.Group("/issues")
	issueRouter.GET("/", issueController.List, rbac(shared.ObjectIssue, shared.ActionRead))
	issueRouter.POST("/", issueController.Create, rbac(shared.ObjectIssue, shared.ActionCreate))
	issueRouter.GET("/:id/", issueController.Read, rbac(shared.ObjectIssue, shared.ActionRead))
	issueRouter.PUT("/:id/", issueController.Update, rbac(shared.ObjectIssue, shared.ActionUpdate))
	issueRouter.DELETE("/:id/", issueController.Delete, rbac(shared.ObjectIssue, shared.ActionDelete))

	issueRouter.GET("/:id/comments/", commentController.ListForIssue, rbac(shared.ObjectComment, shared.ActionRead))
	issueRouter.POST("/:id/comments/", commentController.CreateForIssue, rbac(shared.ObjectComment, shared.ActionCreate))

	issueRouter.GET("/:id/attachments/", attachmentController.ListForIssue, rbac(shared.ObjectAttachment, shared.ActionRead))
	issueRouter.POST("/:id/attachments/", attachmentController.CreateForIssue, rbac(shared.ObjectAttachment, shared.ActionCreate))
	issueRouter.DELETE("/:id/attachments/", attachmentController.DeleteForIssue, rbac(shared.ObjectAttachment, shared.ActionDelete))

	commentRouter := sessionRouter.Group.Group("/comments")
	commentRouter.GET("/", commentController.List, rbac(shared.ObjectComment, shared.ActionRead))
	commentRouter.POST("/", commentController.Create, rbac(shared.ObjectComment, shared.ActionCreate))
	commentRouter.GET("/:id/", commentController.Read, rbac(shared.ObjectComment, shared.ActionRead))
	commentRouter.PUT("/:id/", commentController.Update, rbac(shared.ObjectComment, shared.ActionUpdate))
	commentRouter.DELETE("/:id/", commentController.Delete, rbac(shared.ObjectComment, shared.ActionDelete))

	attachmentRouter := sessionRouter.Group.Group("/attachments")
	attachmentRouter.GET("/", attachmentController.List, rbac(shared.ObjectAttachment, shared.ActionRead))
	attachmentRouter.POST("/", attachmentController.Create, rbac(shared.ObjectAttachment, shared.ActionCreate))
	attachmentRouter.GET("/:id/", attachmentController.Read, rbac(shared.ObjectAttachment, shared.ActionRead))
	attachmentRouter.DELETE("/:id/", attachmentController.Delete, rbac(shared.ObjectAttachment, shared.ActionDelete))

	return IssueRouter{Group: issueRouter}
}
