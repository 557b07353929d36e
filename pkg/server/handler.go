/*
Copyright © 2025 Datacheck Authors
SPDX-License-Identifier: Apache-2.0
*/

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/datacheck/datacheck/pkg/diff"
	"github.com/datacheck/datacheck/pkg/requirement"
	"github.com/datacheck/datacheck/pkg/serializer"
	"github.com/datacheck/datacheck/pkg/validate"
)

// handleValidate handles POST /v1/validate. The body carries observed
// data plus a requirement, either as a plain JSON shape or as a YAML
// requirement document; the response reports pass or fail with the full
// ordered difference sequence.
func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, r, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "use POST", false)
		return
	}

	var req ValidateRequest
	body := http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, fmt.Sprintf("invalid request body: %v", err), false)
		return
	}

	raw, err := rawRequirement(req)
	if err != nil {
		code := ErrCodeInvalidRequest
		if errors.Is(err, requirement.ErrMalformed) {
			code = ErrCodeMalformedRequirement
		}
		WriteError(w, r, http.StatusBadRequest, code, err.Error(), false)
		return
	}

	start := time.Now()
	failure, err := validate.New(validate.WithDefaultTolerance(req.Tolerance)).Validate(req.Data, raw)
	validationDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		switch {
		case errors.Is(err, requirement.ErrMalformed):
			validationTotal.WithLabelValues("error").Inc()
			WriteError(w, r, http.StatusBadRequest, ErrCodeMalformedRequirement, err.Error(), false)
		case errors.Is(err, diff.ErrShapeMismatch):
			validationTotal.WithLabelValues("error").Inc()
			WriteError(w, r, http.StatusBadRequest, ErrCodeShapeMismatch, err.Error(), false)
		default:
			validationTotal.WithLabelValues("error").Inc()
			WriteError(w, r, http.StatusInternalServerError, ErrCodeInternalError, err.Error(), true)
		}
		return
	}

	if failure == nil {
		validationTotal.WithLabelValues("pass").Inc()
		serializer.RespondJSON(w, http.StatusOK, ValidateResponse{Status: "pass"})
		return
	}

	validationTotal.WithLabelValues("fail").Inc()
	for _, d := range failure.Differences {
		differenceTotal.WithLabelValues(string(d.Kind)).Inc()
	}

	serializer.RespondJSON(w, http.StatusOK, ValidateResponse{
		Status:      "fail",
		Summary:     &failure.Counts,
		Differences: failure.Differences,
		Rendered:    failure.Render(),
	})
}

// rawRequirement extracts the raw requirement from a request, parsing
// the YAML document form when present.
func rawRequirement(req ValidateRequest) (any, error) {
	if req.RequirementYAML != "" {
		if req.Requirement != nil {
			return nil, errors.New("requirement and requirementYaml are mutually exclusive")
		}
		parsed, err := requirement.ParseYAML([]byte(req.RequirementYAML))
		if err != nil {
			return nil, err
		}
		return parsed, nil
	}
	return req.Requirement, nil
}
