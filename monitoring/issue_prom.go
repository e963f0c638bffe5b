// Copyright 2025 l3montree UG (haftungsbeschraenkt).
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var IssueCreatedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "issuetracker_issue_created_amount",
	Help: "The total number of issues created",
})

var IssueUpdatedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "issuetracker_issue_updated_amount",
	Help: "The total number of issues updated",
})

var IssueDeletedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "issuetracker_issue_deleted_amount",
	Help: "The total number of issues deleted",
})

// labelled with the status the issue moved to
var IssueStatusChangedAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "issuetracker_issue_status_changed_amount",
	Help: "The total number of issue status changes",
}, []string{"status"})

var CommentCreatedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "issuetracker_comment_created_amount",
	Help: "The total number of comments created",
})

var AccessRequestAmount = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "issuetracker_access_request_amount",
	Help: "The total number of access request state changes",
}, []string{"status"})

var LoginFailedAmount = promauto.NewCounter(prometheus.CounterOpts{
	Name: "issuetracker_login_failed_amount",
	Help: "The total number of rejected logins",
})
