package httpapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/courtsidehq/courtside/internal/platform/logging"
	"github.com/courtsidehq/courtside/internal/usecase"
)

type Handler struct {
	teamService   *usecase.TeamQueryService
	playerService *usecase.PlayerQueryService
	stateService  *usecase.StateQueryService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	teamService *usecase.TeamQueryService,
	playerService *usecase.PlayerQueryService,
	stateService *usecase.StateQueryService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamService:   teamService,
		playerService: playerService,
		stateService:  stateService,
		logger:        logger,
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

type rootDTO struct {
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Root")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, rootDTO{
		Message: "Courtside API",
		Endpoints: []string{
			"/v1/teams",
			"/v1/players",
			"/v1/compare",
			"/v1/map-data",
			"/v1/states",
		},
	})
}
