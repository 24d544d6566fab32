package httpapi

import (
	"net/http"
)

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	items, err := h.standingsService.ListStandings(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(items))
}

func (h *Handler) RecomputeStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecomputeStandings")
	defer span.End()

	result, err := h.standingsService.RecomputeRecords(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "recompute standings failed",
			"updated_count", result.UpdatedCount,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "standings recomputed",
		"team_count", result.TeamCount,
		"match_count", result.MatchCount,
		"updated_count", result.UpdatedCount,
	)
	writeSuccess(ctx, w, http.StatusOK, recomputeDTO{
		TeamCount:    result.TeamCount,
		MatchCount:   result.MatchCount,
		UpdatedCount: result.UpdatedCount,
		WorkerCount:  result.WorkerCount,
	})
}
