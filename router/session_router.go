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

// SessionRouter is the root of every route that needs a verified token.
// The routes below it still need their own access control middleware.
type SessionRouter struct {
	*echo.Group
	RBAC shared.RBACMiddleware
}

func NewSessionRouter(
	apiV1Router APIV1Router,
	tokenService shared.TokenService,
	rbac shared.AccessControl,
	userController *controllers.UserController,
) SessionRouter {
	sessionRouter := apiV1Router.Group.Group("", middlewares.SessionMiddleware(tokenService))

	sessionRouter.GET("/whoami/", userController.Whoami)

	return SessionRouter{
		Group: sessionRouter,
		RBAC:  middlewares.AccessControlFactory(rbac),
	}
}
