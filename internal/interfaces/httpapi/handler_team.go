package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/courtsidehq/courtside/internal/usecase"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.teamService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	item, err := h.teamService.Get(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

type compareParams struct {
	Team1  string `validate:"required"`
	Team2  string `validate:"required"`
	Decade string
}

func (h *Handler) CompareTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CompareTeams")
	defer span.End()

	params := compareParams{
		Team1:  strings.TrimSpace(r.URL.Query().Get("team1")),
		Team2:  strings.TrimSpace(r.URL.Query().Get("team2")),
		Decade: strings.TrimSpace(r.URL.Query().Get("decade")),
	}
	if err := h.validator.Struct(params); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: team1 and team2 are required", usecase.ErrInvalidInput))
		return
	}

	comparison, err := h.teamService.Compare(ctx, params.Team1, params.Team2, params.Decade)
	if err != nil {
		h.logger.WarnContext(ctx, "compare teams failed", "team1", params.Team1, "team2", params.Team2, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, comparison)
}

// MapData serves the team records again under the mapping route; every record
// already carries its coordinates.
func (h *Handler) MapData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MapData")
	defer span.End()

	teams, err := h.teamService.List(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "map data failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teams)
}
