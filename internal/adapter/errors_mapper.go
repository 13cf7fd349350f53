// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-portal-client/models"
)

// maxPlainMessage caps how much of a non-JSON error body is used as a
// message; longer bodies are usually HTML error pages.
const maxPlainMessage = 200

// mapHTTPError returns nil for 2xx and an [*APIError] otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{Status: resp.StatusCode()}

	raw := strings.TrimSpace(string(resp.Body()))
	var body models.APIErrorBody
	if err := json.Unmarshal([]byte(raw), &body); err == nil {
		apiErr.TOTPRequired = body.TOTPRequired
		apiErr.Message = strings.TrimSpace(body.Message)
		if apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(body.Error)
		}
		return apiErr
	}

	if len(raw) <= maxPlainMessage && !strings.HasPrefix(raw, "<") {
		apiErr.Message = raw
	}
	return apiErr
}
