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

package integrationtestutil

import (
	"context"
	"log"
	"log/slog"

	"github.com/l3montree-dev/issuetracker/database"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

const postgresImage = "postgres:16-alpine"

// InitDatabaseContainer starts a throwaway postgres, runs the embedded migrations against it
// and returns the gorm handle. The returned func terminates the container.
func InitDatabaseContainer() (*gorm.DB, func()) {
	ctx := context.Background()

	dbName := "issuetracker"
	dbUser := "user"
	dbPassword := "password"

	postgresC, err := postgres.Run(ctx,
		postgresImage,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		slog.Info("failed to start postgres container", "error", err)
		panic(err)
	}

	host, _ := postgresC.Host(ctx)
	port, _ := postgresC.MappedPort(ctx, "5432")

	cfg := database.GetPoolConfigFromEnv()
	cfg.Host = host
	cfg.Port = port.Port()
	cfg.User = dbUser
	cfg.Password = dbPassword
	cfg.DBName = dbName

	db, closeDB, err := database.NewConnection(cfg)
	if err != nil {
		log.Printf("failed to connect to database: %s", err)
		panic(err)
	}

	terminate := func() {
		closeDB()
		if err := testcontainers.TerminateContainer(postgresC); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}

	if err := database.RunMigrationsOnFreshInstance(db); err != nil {
		log.Printf("failed to run migrations: %s", err)
		terminate()
		panic(err)
	}

	return db, terminate
}
