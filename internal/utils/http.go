// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-portal-client/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode.
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes the API error envelope {"message", "totpRequired"}.
func WriteError(w http.ResponseWriter, statusCode int, message string, totpRequired bool) {
	_, _ = WriteJSON(w, models.APIErrorBody{Message: message, TOTPRequired: totpRequired}, statusCode)
}
