// Package http provides http transport for spam checks
package http

import (
	stdhttp "net/http"
	"strconv"

	"spamwatch/internal/modkit/httpkit"
	"spamwatch/internal/services/api/spam/domain"
	svc "spamwatch/internal/services/api/spam/service"
)

// Register mounts spam endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CheckInput](r, "/check", h.check)
	httpkit.Get(r, "/history", h.history)
	httpkit.Get(r, "/lexicon", h.lexicon)
}

type handlers struct{ svc svc.Service }

// @Summary Classify a message and record the verdict
// @Tags Spam
// @Accept json
// @Produce json
// @Param payload body domain.CheckInput true "Message"
// @Success 200 {object} domain.CheckResult "ok"
// @Router /spam/check [post]
func (h *handlers) check(r *stdhttp.Request, in domain.CheckInput) (any, error) {
	return h.svc.Check(r.Context(), in)
}

// @Summary Recent classifications, newest first
// @Tags Spam
// @Produce json
// @Param limit query int false "max items, capped at 10"
// @Success 200 {array} domain.HistoryItem "ok"
// @Router /spam/history [get]
func (h *handlers) history(r *stdhttp.Request) (any, error) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		// bad values fall back to the default cap rather than erroring
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}
	return h.svc.Recent(r.Context(), limit)
}

// @Summary Active spam indicator phrases in match order
// @Tags Spam
// @Produce json
// @Success 200 {array} string "ok"
// @Router /spam/lexicon [get]
func (h *handlers) lexicon(_ *stdhttp.Request) (any, error) {
	return h.svc.Lexicon(), nil
}
