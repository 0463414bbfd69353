package httpadapter

import (
	"log/slog"
	"net/http"
)

// handleCampaigns lists the scenario campaigns in the order budgets are
// matched against them.
func (h *Handler) handleCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.svc.ListCampaigns(r.Context())
	if err != nil {
		h.logger.Error("list campaigns error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, campaigns)
}
