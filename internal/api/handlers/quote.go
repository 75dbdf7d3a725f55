package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/wonny/euroquote/internal/contracts"
	"github.com/wonny/euroquote/internal/external/euronext"
	"github.com/wonny/euroquote/pkg/logger"
)

// QuoteHandler serves live quotes straight from Euronext
// ⭐ SSOT: 시세 조회 API 핸들러는 이 구조체에서만
type QuoteHandler struct {
	quoter euronext.Quoter
	logger *logger.Logger
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoter euronext.Quoter, log *logger.Logger) *QuoteHandler {
	return &QuoteHandler{
		quoter: quoter,
		logger: log,
	}
}

// GetDetailedQuote returns instrument name and price
// GET /api/quotes/{isin}/{market}
func (h *QuoteHandler) GetDetailedQuote(w http.ResponseWriter, r *http.Request) {
	ref, ok := instrumentFromPath(w, r)
	if !ok {
		return
	}

	quote, err := h.quoter.GetDetailedQuote(r.Context(), ref.ISIN, ref.Market)
	if err != nil {
		h.fail(w, ref, "detailed", err)
		return
	}

	respondJSON(w, http.StatusOK, quote)
}

// GetFullDetailedQuote returns the 52-week range
// GET /api/quotes/{isin}/{market}/full
func (h *QuoteHandler) GetFullDetailedQuote(w http.ResponseWriter, r *http.Request) {
	ref, ok := instrumentFromPath(w, r)
	if !ok {
		return
	}

	quote, err := h.quoter.GetFullDetailedQuote(r.Context(), ref.ISIN, ref.Market)
	if err != nil {
		h.fail(w, ref, "full", err)
		return
	}

	respondJSON(w, http.StatusOK, quote)
}

func (h *QuoteHandler) fail(w http.ResponseWriter, ref contracts.InstrumentRef, kind string, err error) {
	status := statusForQuoteError(err)

	h.logger.WithError(err).WithFields(map[string]interface{}{
		"instrument": ref.String(),
		"kind":       kind,
		"status":     status,
	}).Warn("Quote request failed")

	respondError(w, status, err.Error())
}

// instrumentFromPath reads {isin} and {market}, writing 400 when either is blank
func instrumentFromPath(w http.ResponseWriter, r *http.Request) (contracts.InstrumentRef, bool) {
	vars := mux.Vars(r)
	ref := contracts.InstrumentRef{
		ISIN:   strings.TrimSpace(vars["isin"]),
		Market: strings.TrimSpace(vars["market"]),
	}

	if ref.ISIN == "" || ref.Market == "" {
		respondError(w, http.StatusBadRequest, "isin and market are required")
		return ref, false
	}
	return ref, true
}
