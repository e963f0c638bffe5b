// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// path is the registered route pattern, never the raw url
var HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "issuetracker_http_request_duration_seconds",
	Help:    "Duration of http requests in seconds",
	Buckets: prometheus.DefBuckets,
}, []string{"method", "path", "status"})
