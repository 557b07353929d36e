/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Validation metrics
	validationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "datacheck_validation_duration_seconds",
			Help:    "Time taken to validate one request payload",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	validationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datacheck_validations_total",
			Help: "Total number of validation requests",
		},
		[]string{"status"}, // pass, fail or error
	)

	differenceTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datacheck_differences_total",
			Help: "Total number of differences reported to clients",
		},
		[]string{"kind"}, // missing, extra, invalid, deviation
	)
)
