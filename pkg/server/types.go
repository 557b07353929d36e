/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/datacheck/datacheck/pkg/diff"
	"github.com/datacheck/datacheck/pkg/validate"
)

// Config holds server configuration.
type Config struct {
	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Request limits
	MaxBodyBytes int64

	// Timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration

	// Logging
	LogLevel string
}

// Server hosts the validation API.
type Server struct {
	cfg     *Config
	name    string
	version string

	limiter *rate.Limiter

	mu    sync.RWMutex
	ready bool
}

// ValidateRequest is the POST /v1/validate request body. Exactly one of
// Requirement and RequirementYAML must be set: Requirement carries a
// plain JSON shape (scalars, arrays, objects), RequirementYAML a YAML
// requirement document supporting the !set, !regex and !approx tags.
type ValidateRequest struct {
	Requirement     any     `json:"requirement,omitempty" yaml:"requirement,omitempty"`
	RequirementYAML string  `json:"requirementYaml,omitempty" yaml:"requirementYaml,omitempty"`
	Data            any     `json:"data" yaml:"data"`
	Tolerance       float64 `json:"tolerance,omitempty" yaml:"tolerance,omitempty"`
}

// ValidateResponse is the POST /v1/validate response body.
type ValidateResponse struct {
	Status      string            `json:"status" yaml:"status"` // pass or fail
	Summary     *validate.Counts  `json:"summary,omitempty" yaml:"summary,omitempty"`
	Differences []diff.Difference `json:"differences,omitempty" yaml:"differences,omitempty"`
	Rendered    string            `json:"rendered,omitempty" yaml:"rendered,omitempty"`
}

type contextKey string

const contextKeyRequestID contextKey = "requestID"
