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
	"strings"

	"github.com/l3montree-dev/issuetracker/shared"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "issuetracker-cli",
	Short: "Management cli",
	Long:  `The issuetracker cli talks straight to the database of an issuetracker instance.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		initializeConfig(cmd)
		return nil
	},
}

func GetRootCmd() *cobra.Command {
	return rootCmd
}

func initializeConfig(cmd *cobra.Command) {
	viper.SetEnvPrefix("ISSUETRACKER")
	// --first-name is read from ISSUETRACKER_FIRST_NAME
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	bindFlags(cmd)
}

// Bind each cobra flag to viper so that unset flags fall back to the environment
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && viper.IsSet(f.Name) {
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", viper.Get(f.Name))) // nolint: errcheck
		}

		if err := viper.BindPFlag(f.Name, f); err != nil {
			slog.Error("could not bind flag to viper", "err", err)
		}
	})
}

func openDatabase() (shared.DB, func(), error) {
	db, closeDB, err := shared.DatabaseFactory()
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to database: %w", err)
	}
	return db, closeDB, nil
}
