// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var StatisticsQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "issuetracker_statistics_query_duration_seconds",
	Help:    "Duration of dashboard statistics aggregation in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{"dashboard"})
