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
	"slices"

	"github.com/google/uuid"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/dtos"
	"github.com/l3montree-dev/issuetracker/monitoring"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/l3montree-dev/issuetracker/transformer"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"
)

const (
	activityPerSource = 5
	activityLimit     = 10
)

type statusCounts map[models.IssueStatus]int64

func (c statusCounts) total() int64 {
	var total int64
	for _, n := range c {
		total += n
	}
	return total
}

func (c statusCounts) resolved() int64 {
	return c[models.IssueStatusResolved]
}

// active issues are neither resolved nor closed
func (c statusCounts) active() int64 {
	return c.total() - c[models.IssueStatusResolved] - c[models.IssueStatusClosed]
}

func groupStatusCounts(rows []dtos.GroupedStatusCount) map[uuid.UUID]statusCounts {
	grouped := make(map[uuid.UUID]statusCounts)
	for _, row := range rows {
		if grouped[row.GroupID] == nil {
			grouped[row.GroupID] = make(statusCounts)
		}
		grouped[row.GroupID][models.IssueStatus(row.Status)] += row.Count
	}
	return grouped
}

// StatisticsService computes every number on read. Nothing is cached.
type StatisticsService struct {
	statisticsRepository   shared.StatisticsRepository
	organizationRepository shared.OrganizationRepository
	departmentRepository   shared.DepartmentRepository
	projectRepository      shared.ProjectRepository
}

var _ shared.StatisticsService = &StatisticsService{}

func NewStatisticsService(statisticsRepository shared.StatisticsRepository, organizationRepository shared.OrganizationRepository, departmentRepository shared.DepartmentRepository, projectRepository shared.ProjectRepository) *StatisticsService {
	return &StatisticsService{
		statisticsRepository:   statisticsRepository,
		organizationRepository: organizationRepository,
		departmentRepository:   departmentRepository,
		projectRepository:      projectRepository,
	}
}

func observe(dashboard string) func() {
	timer := prometheus.NewTimer(monitoring.StatisticsQueryDuration.WithLabelValues(dashboard))
	return func() { timer.ObserveDuration() }
}

func (s *StatisticsService) OrgAdminStats() (dtos.OrgAdminStats, error) {
	defer observe("org-admin")()

	var users, departments, projects int64
	var counts map[models.IssueStatus]int64

	// the counts are independent of each other
	group := errgroup.Group{}
	group.Go(func() (err error) {
		if users, err = s.statisticsRepository.CountUsers(nil, nil); err != nil {
			return echo.NewHTTPError(500, "could not count users").WithInternal(err)
		}
		return nil
	})
	group.Go(func() (err error) {
		if departments, err = s.statisticsRepository.CountDepartments(nil); err != nil {
			return echo.NewHTTPError(500, "could not count departments").WithInternal(err)
		}
		return nil
	})
	group.Go(func() (err error) {
		if projects, err = s.statisticsRepository.CountProjects(); err != nil {
			return echo.NewHTTPError(500, "could not count projects").WithInternal(err)
		}
		return nil
	})
	group.Go(func() (err error) {
		if counts, err = s.statisticsRepository.CountIssuesByStatus(dtos.IssueScope{}); err != nil {
			return echo.NewHTTPError(500, "could not count issues").WithInternal(err)
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		return dtos.OrgAdminStats{}, err
	}

	c := statusCounts(counts)
	return dtos.OrgAdminStats{
		TotalUsers:       users,
		TotalDepartments: departments,
		TotalProjects:    projects,
		TotalIssues:      c.total(),
		ActiveIssues:     c.active(),
		ResolvedIssues:   c.resolved(),
		CompletionRate:   CompletionRate(c.resolved(), c.total()),
	}, nil
}

// Activity merges the newest users, departments and resolved issues, newest first.
func (s *StatisticsService) Activity() ([]dtos.ActivityItem, error) {
	defer observe("activity")()

	var users []models.User
	var departments []models.Department
	var issues []models.Issue

	group := errgroup.Group{}
	group.Go(func() (err error) {
		if users, err = s.statisticsRepository.RecentUsers(activityPerSource); err != nil {
			return echo.NewHTTPError(500, "could not fetch recent users").WithInternal(err)
		}
		return nil
	})
	group.Go(func() (err error) {
		if departments, err = s.statisticsRepository.RecentDepartments(activityPerSource); err != nil {
			return echo.NewHTTPError(500, "could not fetch recent departments").WithInternal(err)
		}
		return nil
	})
	group.Go(func() (err error) {
		if issues, err = s.statisticsRepository.RecentlyResolvedIssues(activityPerSource); err != nil {
			return echo.NewHTTPError(500, "could not fetch recently resolved issues").WithInternal(err)
		}
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	activity := make([]dtos.ActivityItem, 0, len(users)+len(departments)+len(issues))
	for _, u := range users {
		activity = append(activity, transformer.UserModelToActivity(u))
	}
	for _, d := range departments {
		activity = append(activity, transformer.DepartmentModelToActivity(d))
	}
	for _, i := range issues {
		activity = append(activity, transformer.IssueModelToActivity(i))
	}

	slices.SortStableFunc(activity, func(a, b dtos.ActivityItem) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if len(activity) > activityLimit {
		activity = activity[:activityLimit]
	}
	return activity, nil
}

func departmentOverview(department models.Department, members int64, counts statusCounts) dtos.DepartmentOverview {
	return dtos.DepartmentOverview{
		ID:             department.ID,
		Name:           department.Name,
		Description:    department.Description,
		TotalMembers:   members,
		ActiveIssues:   counts.active(),
		TotalIssues:    counts.total(),
		ResolvedIssues: counts.resolved(),
		CompletionRate: CompletionRate(counts.resolved(), counts.total()),
		CreatedAt:      department.CreatedAt,
	}
}

func (s *StatisticsService) DepartmentOverviews() ([]dtos.DepartmentOverview, error) {
	defer observe("departments")()

	departments, err := s.departmentRepository.FindMany(nil, nil)
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not fetch departments").WithInternal(err)
	}
	members, err := s.statisticsRepository.CountUsersByDepartment()
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not count department members").WithInternal(err)
	}
	rows, err := s.statisticsRepository.CountIssuesByStatusGroupedBy(dtos.GroupByDepartment, dtos.IssueScope{})
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not count department issues").WithInternal(err)
	}
	issues := groupStatusCounts(rows)

	overviews := make([]dtos.DepartmentOverview, 0, len(departments))
	for _, d := range departments {
		overviews = append(overviews, departmentOverview(d, members[d.ID], issues[d.ID]))
	}
	return overviews, nil
}

func (s *StatisticsService) DepartmentOverview(id uuid.UUID) (dtos.DepartmentOverview, error) {
	defer observe("department")()

	department, err := s.departmentRepository.Read(id)
	if err != nil {
		return dtos.DepartmentOverview{}, readError(err, "Department")
	}
	members, err := s.statisticsRepository.CountUsers(nil, &id)
	if err != nil {
		return dtos.DepartmentOverview{}, echo.NewHTTPError(500, "could not count department members").WithInternal(err)
	}
	counts, err := s.statisticsRepository.CountIssuesByStatus(dtos.IssueScope{DepartmentID: &id})
	if err != nil {
		return dtos.DepartmentOverview{}, echo.NewHTTPError(500, "could not count department issues").WithInternal(err)
	}
	return departmentOverview(department, members, counts), nil
}

func projectOverview(project models.Project, teamMembers int64, counts statusCounts) dtos.ProjectOverview {
	dto := transformer.ProjectModelToDTO(project)
	overview := dtos.ProjectOverview{
		ID:              project.ID,
		Name:            project.Name,
		Description:     project.Description,
		Status:          dto.Status,
		Priority:        dto.Priority,
		StartDate:       dto.StartDate,
		EndDate:         dto.EndDate,
		DepartmentID:    project.DepartmentID,
		Progress:        CompletionRate(counts.resolved(), counts.total()),
		TotalIssues:     counts.total(),
		CompletedIssues: counts.resolved(),
		TeamMembers:     teamMembers,
	}
	if project.Department != nil {
		overview.DepartmentName = project.Department.Name
	}
	return overview
}

func (s *StatisticsService) ProjectOverviews() ([]dtos.ProjectOverview, error) {
	defer observe("projects")()

	projects, err := s.projectRepository.FindMany(nil, []string{"Department"})
	if err != nil {
		return nil, echo.NewHTTPError(500, "Failed to fetch projects").WithInternal(err)
	}
	members, err := s.statisticsRepository.CountTeamMembersByProject()
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not count team members").WithInternal(err)
	}
	rows, err := s.statisticsRepository.CountIssuesByStatusGroupedBy(dtos.GroupByProject, dtos.IssueScope{})
	if err != nil {
		return nil, echo.NewHTTPError(500, "could not count project issues").WithInternal(err)
	}
	issues := groupStatusCounts(rows)

	overviews := make([]dtos.ProjectOverview, 0, len(projects))
	for _, p := range projects {
		overviews = append(overviews, projectOverview(p, members[p.ID], issues[p.ID]))
	}
	return overviews, nil
}

func (s *StatisticsService) ProjectOverview(id uuid.UUID) (dtos.ProjectOverview, error) {
	defer observe("project")()

	project, err := s.projectRepository.ReadWithRelations(id, []string{"Department", "TeamMembers"})
	if err != nil {
		return dtos.ProjectOverview{}, readError(err, "Project")
	}
	counts, err := s.statisticsRepository.CountIssuesByStatus(dtos.IssueScope{ProjectID: &id})
	if err != nil {
		return dtos.ProjectOverview{}, echo.NewHTTPError(500, "could not count project issues").WithInternal(err)
	}
	return projectOverview(project, int64(len(project.TeamMembers)), counts), nil
}

func (s *StatisticsService) OrganizationStats(id uuid.UUID) (dtos.OrganizationStats, error) {
	defer observe("organization")()

	if _, err := s.organizationRepository.Read(id); err != nil {
		return dtos.OrganizationStats{}, readError(err, "Organization")
	}
	departments, err := s.statisticsRepository.CountDepartments(&id)
	if err != nil {
		return dtos.OrganizationStats{}, echo.NewHTTPError(500, "Failed to fetch organization stats").WithInternal(err)
	}
	members, err := s.statisticsRepository.CountUsers(&id, nil)
	if err != nil {
		return dtos.OrganizationStats{}, echo.NewHTTPError(500, "Failed to fetch organization stats").WithInternal(err)
	}
	counts, err := s.statisticsRepository.CountIssuesByStatus(dtos.IssueScope{OrganizationID: &id})
	if err != nil {
		return dtos.OrganizationStats{}, echo.NewHTTPError(500, "Failed to fetch organization stats").WithInternal(err)
	}

	c := statusCounts(counts)
	byStatus := make(map[string]int64, len(c))
	for status, n := range c {
		byStatus[string(status)] = n
	}
	return dtos.OrganizationStats{
		TotalDepartments: departments,
		TotalMembers:     members,
		TotalIssues:      c.total(),
		IssuesByStatus:   byStatus,
		CompletionRate:   CompletionRate(c.resolved(), c.total()),
	}, nil
}

// TeamMembers counts every issue assigned to a member, regardless of the issue's department.
func (s *StatisticsService) TeamMembers(departmentID *uuid.UUID) ([]dtos.TeamMemberDTO, error) {
	defer observe("team-members")()

	users, err := s.statisticsRepository.FindTeamMembers(departmentID)
	if err != nil {
		return nil, echo.NewHTTPError(500, "Failed to fetch team members").WithInternal(err)
	}
	rows, err := s.statisticsRepository.CountIssuesByStatusGroupedBy(dtos.GroupByAssignee, dtos.IssueScope{})
	if err != nil {
		return nil, echo.NewHTTPError(500, "Failed to fetch team members").WithInternal(err)
	}
	assigned := groupStatusCounts(rows)

	members := make([]dtos.TeamMemberDTO, 0, len(users))
	for _, u := range users {
		members = append(members, transformer.UserModelToTeamMemberDTO(u, assigned[u.ID]))
	}
	return members, nil
}

func (s *StatisticsService) TeamStats(departmentID *uuid.UUID) (dtos.TeamStats, error) {
	defer observe("team")()

	members, err := s.statisticsRepository.CountUsers(nil, departmentID)
	if err != nil {
		return dtos.TeamStats{}, echo.NewHTTPError(500, "Failed to fetch team stats").WithInternal(err)
	}
	counts, err := s.statisticsRepository.CountIssuesByStatus(dtos.IssueScope{DepartmentID: departmentID})
	if err != nil {
		return dtos.TeamStats{}, echo.NewHTTPError(500, "Failed to fetch team stats").WithInternal(err)
	}

	c := statusCounts(counts)
	return dtos.TeamStats{
		TotalMembers:   members,
		TotalIssues:    c.total(),
		OpenIssues:     c[models.IssueStatusOpen],
		InProgress:     c[models.IssueStatusInProgress],
		ResolvedIssues: c.resolved(),
		CompletionRate: CompletionRate(c.resolved(), c.total()),
	}, nil
}

