/*
handlers.go - HTTP API handlers for the calculator hub

PURPOSE:
  Exposes the calculator catalog via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the registry.

ENDPOINTS:
  Catalog:
    GET    /api/calculators            List all calculators
    GET    /api/calculators/{id}       Get one catalog entry

  Compute:
    POST   /api/calculators/{id}       Run a calculator on a JSON payload

ARCHITECTURE:
  Handler struct holds all dependencies:
  - Registry: The calculator catalog
  - Cache: Response memoization (calculations are pure, so identical
    inputs can be answered from cache without recomputing)

REQUEST FLOW:
  1. Resolve calculator id (404 if unknown)
  2. Check cache for this id+body
  3. On miss, decode + compute via the registry
  4. Serialize response, store in cache
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, domain errors (caller's inputs are wrong)
  - 404: Unknown calculator id
  - 422: Non-converging computation (inputs valid, no answer exists)
  - 500: Internal errors (e.g. a reference table missing from the store)

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - registry/registry.go: Dispatch target
*/
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/warp/finance-engine/cache"
	"github.com/warp/finance-engine/fincalc"
	"github.com/warp/finance-engine/registry"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// maxBodyBytes bounds calculator payloads. Every calculator takes a
// handful of scalars; anything bigger is a client mistake.
const maxBodyBytes = 64 * 1024

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Registry *registry.Registry
	Cache    cache.Cache
	CacheTTL time.Duration
}

// NewHandler creates a new handler over the given catalog and cache.
func NewHandler(reg *registry.Registry, c cache.Cache, ttl time.Duration) *Handler {
	return &Handler{Registry: reg, Cache: c, CacheTTL: ttl}
}

// =============================================================================
// CATALOG HANDLERS
// =============================================================================

// ListCalculators returns the full catalog.
// GET /api/calculators
func (h *Handler) ListCalculators(w http.ResponseWriter, r *http.Request) {
	descs := h.Registry.List()
	dtos := make([]CalculatorDTO, len(descs))
	for i, d := range descs {
		dtos[i] = toCalculatorDTO(d)
	}
	writeJSON(w, http.StatusOK, CalculatorListResponse{Calculators: dtos})
}

// GetCalculator returns one catalog entry.
// GET /api/calculators/{id}
func (h *Handler) GetCalculator(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	desc, ok := h.Registry.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Unknown calculator", nil)
		return
	}
	writeJSON(w, http.StatusOK, toCalculatorDTO(desc))
}

// =============================================================================
// COMPUTE HANDLER
// =============================================================================

// Compute runs a calculator on the request body.
// POST /api/calculators/{id}
func (h *Handler) Compute(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	desc, ok := h.Registry.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Unknown calculator", nil)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	key := cache.Key(id, body)
	if h.Cache != nil {
		// Cache failures are not the caller's problem; fall through
		// and recompute.
		if data, hit, cerr := h.Cache.Get(ctx, key); cerr == nil && hit {
			var resp ComputeResponse
			if json.Unmarshal(data, &resp) == nil {
				resp.Cached = true
				writeJSON(w, http.StatusOK, resp)
				return
			}
		}
	}

	out, err := desc.Compute(ctx, body)
	if err != nil {
		h.writeComputeError(w, err)
		return
	}

	resp := ComputeResponse{Calculator: id, Result: out}
	if h.Cache != nil {
		if data, merr := json.Marshal(resp); merr == nil {
			_ = h.Cache.Set(ctx, key, data, h.CacheTTL)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeComputeError maps calculator errors to HTTP status codes.
func (h *Handler) writeComputeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fincalc.ErrNonConverging):
		writeError(w, http.StatusUnprocessableEntity, "Computation does not converge", err)
	case fincalc.IsClientError(err):
		writeError(w, http.StatusBadRequest, "Invalid calculation input", err)
	default:
		writeError(w, http.StatusInternalServerError, "Calculation failed", err)
	}
}
