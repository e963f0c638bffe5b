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

package repositories

import (
	"github.com/l3montree-dev/issuetracker/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewOrganizationRepository, fx.As(new(shared.OrganizationRepository)))),
	fx.Provide(fx.Annotate(NewDepartmentRepository, fx.As(new(shared.DepartmentRepository)))),
	fx.Provide(fx.Annotate(NewProjectRepository, fx.As(new(shared.ProjectRepository)))),
	fx.Provide(fx.Annotate(NewUserRepository, fx.As(new(shared.UserRepository)))),
	fx.Provide(fx.Annotate(NewIssueRepository, fx.As(new(shared.IssueRepository)))),
	fx.Provide(fx.Annotate(NewCommentRepository, fx.As(new(shared.CommentRepository)))),
	fx.Provide(fx.Annotate(NewAttachmentRepository, fx.As(new(shared.AttachmentRepository)))),
	fx.Provide(fx.Annotate(NewRequestAccessRepository, fx.As(new(shared.RequestAccessRepository)))),
	fx.Provide(fx.Annotate(NewStatisticsRepository, fx.As(new(shared.StatisticsRepository)))),
)
