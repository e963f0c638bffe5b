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
	"log/slog"

	"github.com/l3montree-dev/issuetracker/database/models"
	"github.com/l3montree-dev/issuetracker/database/repositories"
	"github.com/l3montree-dev/issuetracker/services"
	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewSeedCommand() *cobra.Command {
	seed := cobra.Command{
		Use:   "seed",
		Short: "Insert initial data",
	}
	seed.AddCommand(newSeedSuperAdminCommand())
	return &seed
}

func newSeedSuperAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "super-admin",
		Short: "Create the super admin account unless the email is already taken",
		Long:  `Every flag can be provided as environment variable as well, e.g. ISSUETRACKER_PASSWORD.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user := models.User{
				Email:     viper.GetString("email"),
				FirstName: viper.GetString("first-name"),
				LastName:  viper.GetString("last-name"),
				Role:      models.UserRoleSuperAdmin,
				Status:    models.UserStatusActive,
			}
			password := viper.GetString("password")

			if err := shared.V.Var(user.Email, "required,email"); err != nil {
				return fmt.Errorf("invalid email %q", user.Email)
			}
			if len(password) < 8 {
				return fmt.Errorf("password must be at least 8 characters")
			}

			db, closeDB, err := openDatabase()
			if err != nil {
				return err
			}
			defer closeDB()

			userService := services.NewUserService(
				repositories.NewUserRepository(db),
				repositories.NewOrganizationRepository(db),
				repositories.NewDepartmentRepository(db),
			)

			created, err := userService.EnsureUser(&user, password)
			if err != nil {
				return err
			}
			if !created {
				slog.Info("user already exists, nothing to do", "email", user.Email)
				return nil
			}
			slog.Info("super admin created", "email", user.Email, "id", user.ID)
			return nil
		},
	}

	cmd.Flags().String("email", "", "email of the super admin")
	cmd.Flags().String("password", "", "password of the super admin")
	cmd.Flags().String("first-name", "Super", "first name of the super admin")
	cmd.Flags().String("last-name", "Admin", "last name of the super admin")
	return cmd
}
