// Package metrics defines and registers all custom Prometheus metrics for the
// pressroom API. It is the single source of truth for metric names, labels,
// and help strings. Metrics are registered with the default registry at
// package load via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "pressroom"

// RoleChangesTotal counts role-change attempts by outcome.
// Label:
//   - outcome: "success", "invalid_role", "self_demotion", "last_admin"
var RoleChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_changes_total",
		Help:      "Total number of role-change attempts, labelled by outcome.",
	},
	[]string{"outcome"},
)

// NotificationsTotal counts outbound notification deliveries.
// Labels:
//   - channel: "webhook" or "email"
//   - result:  "ok" or "error"
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of admin-action notification attempts, by channel and result.",
	},
	[]string{"channel", "result"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - method: "credentials" or "oauth"
//   - result: "ok" or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by method and result.",
	},
	[]string{"method", "result"},
)

// PostsCreatedTotal counts newly created blog posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of blog posts created.",
	},
)
