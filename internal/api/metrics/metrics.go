// Package metrics defines and registers the custom Prometheus metrics of the
// auth service. Metrics are registered with the default registry on import
// through promauto; HTTP request metrics come from the echoprometheus
// middleware mounted by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auth"

// PipelineRejectionsTotal counts requests short-circuited by a pipeline stage.
// Labels:
//   - stage: token_gate, role_gate, credential_lookup or role_name_validator
//   - status: the HTTP status text of the rejection (e.g. "Unauthorized")
var PipelineRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "pipeline_rejections_total",
		Help:      "Total number of requests rejected by an auth pipeline stage.",
	},
	[]string{"stage", "status"},
)

// LoginsTotal counts login attempts that reached the password check.
// Label:
//   - result: "success" or "invalid_password"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registered users.",
	},
)

// TokensRevokedTotal counts tokens revoked through logout.
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of access tokens revoked by logout.",
	},
)
