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
	"github.com/l3montree-dev/issuetracker/middlewares"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/labstack/echo/v4"
)

// OrgRouter holds the tenancy resources: organizations, their departments, projects and users.
type OrgRouter struct {
	*echo.Group
}

func NewOrgRouter(
	sessionRouter SessionRouter,
	accessControl shared.AccessControl,
	organizationController *controllers.OrganizationController,
	departmentController *controllers.DepartmentController,
	projectController *controllers.ProjectController,
	userController *controllers.UserController,
) OrgRouter {
	rbac := sessionRouter.RBAC

	orgRouter := sessionRouter.Group.Group("/organizations")
	orgRouter.GET("/", organizationController.List, rbac(shared.ObjectOrganization, shared.ActionRead))
	orgRouter.POST("/", organizationController.Create, rbac(shared.ObjectOrganization, shared.ActionCreate))
	orgRouter.GET("/:id/", organizationController.Read, rbac(shared.ObjectOrganization, shared.ActionRead))
	orgRouter.PUT("/:id/", organizationController.Update, rbac(shared.ObjectOrganization, shared.ActionUpdate))
	orgRouter.DELETE("/:id/", organizationController.Delete, rbac(shared.ObjectOrganization, shared.ActionDelete))
	orgRouter.GET("/:id/stats/", organizationController.Stats, rbac(shared.ObjectOrganization, shared.ActionRead))

	departmentRouter := sessionRouter.Group.Group("/departments")
	departmentRouter.GET("/", departmentController.List, rbac(shared.ObjectDepartment, shared.ActionRead))
	departmentRouter.POST("/", departmentController.Create, rbac(shared.ObjectDepartment, shared.ActionCreate))
	departmentRouter.GET("/:id/", departmentController.Read, rbac(shared.ObjectDepartment, shared.ActionRead))
	departmentRouter.PUT("/:id/", departmentController.Update, rbac(shared.ObjectDepartment, shared.ActionUpdate))
	departmentRouter.DELETE("/:id/", departmentController.Delete, rbac(shared.ObjectDepartment, shared.ActionDelete))

	projectRouter := sessionRouter.Group.Group("/projects")
	projectRouter.GET("/", projectController.List, rbac(shared.ObjectProject, shared.ActionRead))
	projectRouter.POST("/", projectController.Create, rbac(shared.ObjectProject, shared.ActionCreate))
	projectRouter.GET("/:id/", projectController.Read, rbac(shared.ObjectProject, shared.ActionRead))
	projectRouter.PUT("/:id/", projectController.Update, rbac(shared.ObjectProject, shared.ActionUpdate))
	projectRouter.DELETE("/:id/", projectController.Delete, rbac(shared.ObjectProject, shared.ActionDelete))

	userRouter := sessionRouter.Group.Group("/users")
	userRouter.GET("/", userController.List, rbac(shared.ObjectUser, shared.ActionRead))
	userRouter.POST("/", userController.Create, rbac(shared.ObjectUser, shared.ActionCreate))
	userRouter.GET("/:id/", userController.Read, rbac(shared.ObjectUser, shared.ActionRead))
	// everybody may edit their own profile, but not their role or membership
	userRouter.PUT("/:id/", userController.Update, middlewares.SelfOrAllowed(accessControl, shared.ObjectUser, shared.ActionUpdate))
	userRouter.DELETE("/:id/", userController.Delete, rbac(shared.ObjectUser, shared.ActionDelete))

	return OrgRouter{Group: orgRouter}
}
