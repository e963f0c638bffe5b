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

package monitoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
)

func TestInitTracing(t *testing.T) {
	t.Run("disabled without endpoint", func(t *testing.T) {
		t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
		t.Setenv("OTEL_TRACES_EXPORTER", "")

		shutdown, err := InitTracing(context.Background())
		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
	})

	t.Run("console exporter", func(t *testing.T) {
		t.Setenv("OTEL_TRACES_EXPORTER", "console")

		exporter, err := newExporter(context.Background())
		require.NoError(t, err)
		assert.IsType(t, &stdouttrace.Exporter{}, exporter)
	})
}
