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
	"github.com/l3montree-dev/issuetracker/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewOrganizationService, fx.As(new(shared.OrganizationService)))),
	fx.Provide(fx.Annotate(NewDepartmentService, fx.As(new(shared.DepartmentService)))),
	fx.Provide(fx.Annotate(NewProjectService, fx.As(new(shared.ProjectService)))),
	fx.Provide(fx.Annotate(NewUserService, fx.As(new(shared.UserService)))),
	fx.Provide(fx.Annotate(NewIssueService, fx.As(new(shared.IssueService)))),
	fx.Provide(fx.Annotate(NewCommentService, fx.As(new(shared.CommentService)))),
	fx.Provide(fx.Annotate(NewAttachmentService, fx.As(new(shared.AttachmentService)))),
	fx.Provide(fx.Annotate(NewAuthService, fx.As(new(shared.AuthService)))),
	fx.Provide(fx.Annotate(NewRequestAccessService, fx.As(new(shared.RequestAccessService)))),
	fx.Provide(fx.Annotate(NewStatisticsService, fx.As(new(shared.StatisticsService)))),
)
