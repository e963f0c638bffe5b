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
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// readError maps a failed read to 404 "<entity> not found" or to a 500.
func readError(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(404, fmt.Sprintf("%s not found", entity)).WithInternal(err)
	}
	return echo.NewHTTPError(500, fmt.Sprintf("could not read %s", entity)).WithInternal(err)
}

// writeError maps a failed write to 409 on a unique constraint violation or to a 500.
func writeError(err error, conflictMessage, failureMessage string) error {
	if database.IsDuplicateKeyError(err) {
		return echo.NewHTTPError(409, conflictMessage).WithInternal(err)
	}
	return echo.NewHTTPError(500, failureMessage).WithInternal(err)
}

// ensureExists reads the referenced entity if an id is given.
func ensureExists[T any](read func(uuid.UUID) (T, error), id *uuid.UUID, entity string) error {
	if id == nil {
		return nil
	}
	if _, err := read(*id); err != nil {
		return readError(err, entity)
	}
	return nil
}

// CompletionRate is the share of resolved issues in percent, rounded. Zero issues means zero percent.
func CompletionRate(resolved, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(resolved) / float64(total) * 100))
}

// passThrough keeps an *echo.HTTPError raised inside a transaction and wraps everything else.
func passThrough(err error, failureMessage string) error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	return echo.NewHTTPError(500, failureMessage).WithInternal(err)
}
