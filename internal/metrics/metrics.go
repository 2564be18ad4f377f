package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TokensIssued counts signed playback tokens handed to clients.
	TokensIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portal_playback_tokens_issued_total",
		Help: "Playback tokens minted for the video platform.",
	})

	// CMSFailures counts degraded CMS calls by failure kind.
	CMSFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_cms_failures_total",
		Help: "CMS requests that failed and were served as empty results.",
	}, []string{"kind"})

	// ViewIncrements counts view-counter writes by outcome.
	ViewIncrements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_view_increments_total",
		Help: "View counter increment attempts.",
	}, []string{"outcome"})
)
