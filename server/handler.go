package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/etnz/rebalance"
	"github.com/shopspring/decimal"
)

// maxBodySize bounds the request body.
const maxBodySize = 1 << 20

// rebalanceRequest is the body of POST /rebalance: a portfolio definition
// plus the prices per share, in the portfolio currency.
type rebalanceRequest struct {
	rebalance.Definition
	Prices    map[string]decimal.Decimal `json:"prices"`
	Tolerance *float64                   `json:"tolerance,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleRebalance handles POST /rebalance.
func (s *Server) handleRebalance(w http.ResponseWriter, r *http.Request) {
	ct := r.Header.Get("Content-Type")
	if ct != "" && !strings.HasPrefix(ct, "application/json") {
		writeError(w, http.StatusUnsupportedMediaType, "invalid_request", "Content-Type must be application/json")
		return
	}

	var req rebalanceRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", fmt.Sprintf("malformed request body: %v", err))
		return
	}

	p, err := req.Portfolio()
	if err != nil {
		s.writeInvalid(w, err)
		return
	}

	tol := s.tolerance
	if req.Tolerance != nil {
		tol = *req.Tolerance
	}
	report, err := p.RebalanceWithTolerance(rebalance.NewPrices(p.Currency(), req.Prices), tol)
	if err != nil {
		s.writeInvalid(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// writeInvalid maps a rebalance error to its HTTP response.
func (s *Server) writeInvalid(w http.ResponseWriter, err error) {
	if !errors.Is(err, rebalance.ErrInvalidInput) {
		s.log.Error().Err(err).Msg("rebalance failed")
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeError(w, http.StatusUnprocessableEntity, errorCode(err), err.Error())
}

// errorCode returns the machine readable code of an invalid input error.
func errorCode(err error) string {
	var (
		missing   *rebalance.MissingPriceError
		price     *rebalance.InvalidPriceError
		currency  *rebalance.CurrencyMismatchError
		unknown   *rebalance.UnknownHoldingError
		duplicate *rebalance.DuplicateHoldingError
		shares    *rebalance.InvalidShareCountError
		alloc     *rebalance.InvalidAllocationError
	)
	switch {
	case errors.As(err, &missing):
		return "missing_price"
	case errors.As(err, &price):
		return "invalid_price"
	case errors.As(err, &currency):
		return "currency_mismatch"
	case errors.As(err, &unknown):
		return "unknown_holding"
	case errors.As(err, &duplicate):
		return "duplicate_holding"
	case errors.As(err, &shares):
		return "invalid_share_count"
	case errors.As(err, &alloc):
		return "invalid_allocation"
	case errors.Is(err, rebalance.ErrEmptyName):
		return "empty_name"
	}
	return "invalid_input"
}
