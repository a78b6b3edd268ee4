package api

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MikeSquared-Agency/Dravita/internal/assessment"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dravita_http_requests_total",
		Help: "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dravita_http_request_duration_seconds",
		Help:    "HTTP request latency by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	assessmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dravita_assessments_total",
		Help: "Completed assessments by risk level.",
	}, []string{"risk_level"})

	riskScores = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dravita_risk_score",
		Help:    "Distribution of computed risk scores.",
		Buckets: prometheus.LinearBuckets(10, 10, 10),
	})

	topRecommendations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dravita_top_recommendation_total",
		Help: "Best-match plan per completed assessment.",
	}, []string{"plan_id"})
)

func observeAssessment(res *assessment.Result) {
	assessmentsTotal.WithLabelValues(string(res.RiskLevel)).Inc()
	riskScores.Observe(float64(res.RiskScore))
	if len(res.Recommendations) > 0 {
		topRecommendations.WithLabelValues(strconv.Itoa(res.Recommendations[0].ID)).Inc()
	}
}
