/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal catalog model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

TYPES:
  Catalog:
    CalculatorDTO, CalculatorListResponse

  Results:
    ComputeResponse wraps the calculator-specific result so every
    response has the same envelope regardless of calculator.

  Errors:
    ErrorResponse is the standard error shape for all endpoints.

VALIDATION:
  Validation is done by the calculators themselves, not in DTOs.
  DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
  - registry/registry.go: Descriptor type behind CalculatorDTO
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/warp/finance-engine/registry"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// CalculatorDTO represents one catalog entry in API responses.
type CalculatorDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// CalculatorListResponse is the catalog listing.
type CalculatorListResponse struct {
	Calculators []CalculatorDTO `json:"calculators"`
}

// ComputeResponse wraps a calculator result in a stable envelope.
type ComputeResponse struct {
	Calculator string `json:"calculator"`
	Result     any    `json:"result"`
	Cached     bool   `json:"cached,omitempty"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toCalculatorDTO(d registry.Descriptor) CalculatorDTO {
	return CalculatorDTO{ID: d.ID, Name: d.Name, Category: d.Category}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
