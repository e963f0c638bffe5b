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

// AdminRouter serves the dashboards: access request review for admins,
// the organization overview and the team pages.
type AdminRouter struct {
	*echo.Group
}

func NewAdminRouter(
	sessionRouter SessionRouter,
	requestAccessController *controllers.RequestAccessController,
	statisticsController *controllers.StatisticsController,
	departmentController *controllers.DepartmentController,
	projectController *controllers.ProjectController,
	userController *controllers.UserController,
) AdminRouter {
	rbac := sessionRouter.RBAC

	adminRouter := sessionRouter.Group.Group("/admin")
	adminRouter.GET("/requests/", requestAccessController.List, rbac(shared.ObjectAccessRequest, shared.ActionRead))
	adminRouter.GET("/requests/:id/", requestAccessController.Read, rbac(shared.ObjectAccessRequest, shared.ActionRead))
	adminRouter.PUT("/requests/:id/", requestAccessController.Decide, rbac(shared.ObjectAccessRequest, shared.ActionUpdate))
	adminRouter.POST("/requests/:id/reset/", requestAccessController.Reset, rbac(shared.ObjectAccessRequest, shared.ActionUpdate))
	adminRouter.GET("/stats/", requestAccessController.Stats, rbac(shared.ObjectAccessRequest, shared.ActionRead))

	orgAdminRouter := sessionRouter.Group.Group("/org-admin", rbac(shared.ObjectOrgAdmin, shared.ActionRead))
	orgAdminRouter.GET("/stats/", statisticsController.OrgAdminStats)
	orgAdminRouter.GET("/activity/", statisticsController.Activity)
	orgAdminRouter.GET("/departments/", statisticsController.DepartmentOverviews)
	orgAdminRouter.GET("/departments/:id/", statisticsController.DepartmentOverview)
	orgAdminRouter.GET("/projects/", statisticsController.ProjectOverviews)
	orgAdminRouter.GET("/projects/:id/", statisticsController.ProjectOverview)
	orgAdminRouter.GET("/users/", userController.List, rbac(shared.ObjectUser, shared.ActionRead))

	// aliases of the plain routes, guarded by the same permissions
	orgAdminRouter.POST("/departments/", departmentController.Create, rbac(shared.ObjectDepartment, shared.ActionCreate))
	orgAdminRouter.PUT("/departments/:id/", departmentController.Update, rbac(shared.ObjectDepartment, shared.ActionUpdate))
	orgAdminRouter.DELETE("/departments/:id/", departmentController.Delete, rbac(shared.ObjectDepartment, shared.ActionDelete))
	orgAdminRouter.POST("/projects/", projectController.Create, rbac(shared.ObjectProject, shared.ActionCreate))
	orgAdminRouter.PUT("/projects/:id/", projectController.Update, rbac(shared.ObjectProject, shared.ActionUpdate))
	orgAdminRouter.DELETE("/projects/:id/", projectController.Delete, rbac(shared.ObjectProject, shared.ActionDelete))
	orgAdminRouter.POST("/users/", userController.Create, rbac(shared.ObjectUser, shared.ActionCreate))
	orgAdminRouter.PUT("/users/:id/", userController.Update, rbac(shared.ObjectUser, shared.ActionUpdate))
	orgAdminRouter.DELETE("/users/:id/", userController.Delete, rbac(shared.ObjectUser, shared.ActionDelete))

	teamRouter := sessionRouter.Group.Group("/team", rbac(shared.ObjectStatistics, shared.ActionRead))
	teamRouter.GET("/", statisticsController.TeamMembers)
	teamRouter.GET("/members/", statisticsController.TeamMembers)
	teamRouter.GET("/stats/", statisticsController.TeamStats)

	return AdminRouter{Group: adminRouter}
}
