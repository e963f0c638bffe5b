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

package transformer

import (
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
)

func AssignedIssuesCountFromStatusCounts(counts map[models.IssueStatus]int64) dtos.AssignedIssuesCount {
	var total int64
	for _, c := range counts {
		total += c
	}
	return dtos.AssignedIssuesCount{
		Total:      total,
		Open:       counts[models.IssueStatusOpen],
		InProgress: counts[models.IssueStatusInProgress],
		Resolved:   counts[models.IssueStatusResolved],
	}
}

func UserModelToTeamMemberDTO(user models.User, counts map[models.IssueStatus]int64) dtos.TeamMemberDTO {
	return dtos.TeamMemberDTO{
		UserDTO:             UserModelToDTO(user),
		AssignedIssuesCount: AssignedIssuesCountFromStatusCounts(counts),
	}
}

func UserModelToActivity(user models.User) dtos.ActivityItem {
	return dtos.ActivityItem{
		ID:          user.ID,
		Type:        dtos.ActivityTypeUserJoined,
		Title:       "New user joined",
		Description: user.FullName() + " joined the organization",
		Timestamp:   user.CreatedAt,
	}
}

func DepartmentModelToActivity(department models.Department) dtos.ActivityItem {
	return dtos.ActivityItem{
		ID:          department.ID,
		Type:        dtos.ActivityTypeDepartmentCreated,
		Title:       "Department created",
		Description: department.Name + " department was created",
		Timestamp:   department.CreatedAt,
	}
}

func IssueModelToActivity(issue models.Issue) dtos.ActivityItem {
	return dtos.ActivityItem{
		ID:          issue.ID,
		Type:        dtos.ActivityTypeIssueResolved,
		Title:       "Issue resolved",
		Description: issue.Title + " was resolved",
		Timestamp:   issue.UpdatedAt,
	}
}
