package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListStates(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStates")
	defer span.End()

	states, err := h.stateService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list states failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, states)
}

func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetState")
	defer span.End()

	stateName := strings.TrimSpace(r.PathValue("state"))
	detail, err := h.stateService.Get(ctx, stateName)
	if err != nil {
		h.logger.WarnContext(ctx, "get state failed", "state", stateName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, detail)
}
