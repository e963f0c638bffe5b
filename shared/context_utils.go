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

package shared

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/labstack/echo/v4"
)

type AuthSession interface {
	GetUserID() uuid.UUID
	GetEmail() string
	GetRole() models.UserRole
}

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func MaybeGetSession(ctx Context) (AuthSession, bool) {
	s, ok := ctx.Get("session").(AuthSession)
	return s, ok
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

// GetUUIDParam reads a path parameter and answers with 400 if it is not a valid id.
func GetUUIDParam(ctx Context, param string) (uuid.UUID, error) {
	raw := strings.Trim(ctx.Param(param), "/")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(400, fmt.Sprintf("invalid %s", param)).WithInternal(err)
	}
	return id, nil
}

// GetUUIDQuery returns nil if the query parameter is absent.
func GetUUIDQuery(ctx Context, param string) (*uuid.UUID, error) {
	raw := ctx.QueryParam(param)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, echo.NewHTTPError(400, fmt.Sprintf("invalid %s", param)).WithInternal(err)
	}
	return &id, nil
}

func GetStringQuery(ctx Context, param string) *string {
	v := ctx.QueryParam(param)
	if v == "" {
		return nil
	}
	return &v
}

// GetRelations parses the comma separated include parameter against the allow-list of a model.
// Matching is case insensitive, the canonical name of the allow-list is returned.
func GetRelations(ctx Context, allowed []string) ([]string, error) {
	raw := ctx.QueryParam("include")
	if raw == "" {
		return nil, nil
	}

	relations := make([]string, 0)
	for _, requested := range strings.Split(raw, ",") {
		requested = strings.TrimSpace(requested)
		if requested == "" {
			continue
		}
		found := false
		for _, a := range allowed {
			if strings.EqualFold(a, requested) {
				relations = append(relations, a)
				found = true
				break
			}
		}
		if !found {
			return nil, echo.NewHTTPError(400, fmt.Sprintf("unknown relation: %s", requested))
		}
	}
	return relations, nil
}

type PageInfo struct {
	PageSize int `json:"pageSize"`
	Page     int `json:"page"`
}

func (p PageInfo) ApplyOnDB(db DB) DB {
	return db.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
}

type Paged[T any] struct {
	PageInfo
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func (p Paged[T]) Map(f func(T) any) Paged[any] {
	data := make([]any, len(p.Data))
	for i, d := range p.Data {
		data[i] = f(d)
	}
	return Paged[any]{
		PageInfo: p.PageInfo,
		Total:    p.Total,
		Data:     data,
	}
}

func NewPaged[T any](pageInfo PageInfo, total int64, data []T) Paged[T] {
	return Paged[T]{
		PageInfo: pageInfo,
		Total:    total,
		Data:     data,
	}
}

func GetPageInfo(ctx Context) PageInfo {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))
	switch {
	case pageSize > 100:
		pageSize = 100
	case pageSize <= 0:
		pageSize = 10
	}

	return PageInfo{
		Page:     page,
		PageSize: pageSize,
	}
}

// SetSelfService marks a request a user is only allowed to do because it targets their own account.
func SetSelfService(ctx Context) {
	ctx.Set("selfService", true)
}

func IsSelfService(ctx Context) bool {
	v, ok := ctx.Get("selfService").(bool)
	return ok && v
}
