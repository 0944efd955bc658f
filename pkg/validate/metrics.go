/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package validate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "netschema_validation_duration_seconds",
			Help:    "Duration of one tree validation in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	validationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "netschema_validation_total",
			Help: "Total number of tree validations",
		},
		[]string{"status"}, // valid, invalid or error
	)

	violationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "netschema_violation_total",
			Help: "Total number of violations reported",
		},
		[]string{"kind"},
	)
)
