package util

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecordsFetchedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "records_fetched_total",
		Help: "Total number of records fetched from the upstream API",
	}, []string{"entity"})

	RecordsInsertedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "records_inserted_total",
		Help: "Total number of records inserted into the mirror",
	}, []string{"entity"})

	RecordsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "records_rejected_total",
		Help: "Total number of records skipped by bulk inserts (key collisions)",
	}, []string{"entity"})

	SyncFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sync_failures_total",
		Help: "Total number of failed poll syncs",
	}, []string{"entity", "reason"})

	SyncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "sync_duration_seconds",
		Help:    "Duration of poll sync runs",
		Buckets: prometheus.DefBuckets,
	}, []string{"entity"})

	WebhooksIngestedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webhooks_ingested_total",
		Help: "Total number of webhook deliveries stored",
	}, []string{"entity"})

	WebhooksFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webhooks_failed_total",
		Help: "Total number of webhook deliveries rejected",
	}, []string{"entity", "reason"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})
)
