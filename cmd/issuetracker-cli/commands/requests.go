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

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/database/repositories"
	"github.com/l3montree-dev/issuetracker/services"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewRequestsCommand() *cobra.Command {
	requests := cobra.Command{
		Use:   "requests",
		Short: "Review access requests",
	}

	requests.AddCommand(newListRequestsCommand())
	requests.AddCommand(newDecideRequestCommand("approve", "Approve an access request", func(s shared.RequestAccessService, id uuid.UUID) (models.RequestAccess, error) {
		return s.Decide(id, models.RequestAccessStatusApproved)
	}))
	requests.AddCommand(newDecideRequestCommand("reject", "Reject an access request", func(s shared.RequestAccessService, id uuid.UUID) (models.RequestAccess, error) {
		return s.Decide(id, models.RequestAccessStatusRejected)
	}))
	requests.AddCommand(newDecideRequestCommand("reset", "Move an access request back to pending", func(s shared.RequestAccessService, id uuid.UUID) (models.RequestAccess, error) {
		return s.Reset(id)
	}))
	return &requests
}

func withRequestAccessService(f func(s shared.RequestAccessService) error) error {
	db, closeDB, err := openDatabase()
	if err != nil {
		return err
	}
	defer closeDB()
	return f(services.NewRequestAccessService(repositories.NewRequestAccessRepository(db)))
}

func renderRequests(w io.Writer, requests shared.Paged[models.RequestAccess]) {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"ID", "Company", "Name", "Email", "Team size", "Status", "Created"})
	for _, r := range requests.Data {
		tw.AppendRow(table.Row{r.ID, r.CompanyName, r.Name, r.Email, r.TeamSize, r.Status, r.CreatedAt.Format("2006-01-02 15:04")})
	}
	tw.AppendFooter(table.Row{"", "", "", "", "", "Total", requests.Total})
	tw.SetStyle(table.StyleLight)
	tw.Render()
}

func newListRequestsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List access requests, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var status *models.RequestAccessStatus
			if raw := viper.GetString("status"); raw != "" {
				if err := shared.V.Var(raw, "oneof=PENDING APPROVED REJECTED"); err != nil {
					return fmt.Errorf("invalid status %q", raw)
				}
				s := models.RequestAccessStatus(raw)
				status = &s
			}
			pageInfo := shared.PageInfo{Page: max(viper.GetInt("page"), 1), PageSize: min(max(viper.GetInt("page-size"), 1), 100)}

			return withRequestAccessService(func(s shared.RequestAccessService) error {
				requests, err := s.List(status, pageInfo)
				if err != nil {
					return err
				}
				renderRequests(os.Stdout, requests)
				return nil
			})
		},
	}

	cmd.Flags().String("status", "", "only show requests with this status (PENDING, APPROVED, REJECTED)")
	cmd.Flags().Int("page", 1, "page to show")
	cmd.Flags().Int("page-size", 20, "requests per page")
	return cmd
}

func newDecideRequestCommand(use, short string, decide func(s shared.RequestAccessService, id uuid.UUID) (models.RequestAccess, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid request id %q", args[0])
			}

			return withRequestAccessService(func(s shared.RequestAccessService) error {
				request, err := decide(s, id)
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "%s (%s) is now %s\n", request.CompanyName, request.Email, request.Status)
				return nil
			})
		},
	}
}
