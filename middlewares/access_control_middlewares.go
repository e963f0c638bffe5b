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

package middlewares

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/labstack/echo/v4"
)

func isAllowed(ctx shared.Context, rbac shared.AccessControl, obj shared.Object, act shared.Action) (bool, error) {
	allowed, err := rbac.IsAllowed(shared.GetSession(ctx).GetRole(), obj, act)
	if err != nil {
		return false, echo.NewHTTPError(500, "could not determine if the user has access").WithInternal(err)
	}
	return allowed, nil
}

func denied(ctx shared.Context, obj shared.Object, act shared.Action) error {
	session := shared.GetSession(ctx)
	slog.Warn("access denied", "user", session.GetUserID(), "role", session.GetRole(), "object", obj, "action", act)
	return echo.NewHTTPError(403, "you are not allowed to perform this action")
}

// AccessControlFactory builds the middleware checking the role of the session against obj and act.
func AccessControlFactory(rbac shared.AccessControl) shared.RBACMiddleware {
	return func(obj shared.Object, act shared.Action) echo.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(ctx shared.Context) error {
				allowed, err := isAllowed(ctx, rbac, obj, act)
				if err != nil {
					return err
				}
				if !allowed {
					return denied(ctx, obj, act)
				}
				return next(ctx)
			}
		}
	}
}

// SelfOrAllowed lets a user act on the account named by the id path parameter if it is their own,
// even without the permission. Such requests are marked as self service.
func SelfOrAllowed(rbac shared.AccessControl, obj shared.Object, act shared.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			allowed, err := isAllowed(ctx, rbac, obj, act)
			if err != nil {
				return err
			}
			if allowed {
				return next(ctx)
			}

			id, err := uuid.Parse(ctx.Param("id"))
			if err != nil || id != shared.GetSession(ctx).GetUserID() {
				return denied(ctx, obj, act)
			}
			shared.SetSelfService(ctx)
			return next(ctx)
		}
	}
}
