package planning

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/planning/model/dto"
	"lodge/internal/domains/planning/service"
	"lodge/shared/constant"
	"lodge/shared/validator"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.Planning
	otel    otel.Otel
}

func New(service service.Planning, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/planning", func(routerGroup chi.Router) {
		routerGroup.Get("/statistics", handler.GetStatistics)
		routerGroup.Get("/consumptions", handler.GetConsumptions)
	})
}

func requestFromQuery(r *http.Request) (dto.PlanningRequest, error) {
	req := dto.PlanningRequest{
		DateFrom: r.URL.Query().Get(constant.RequestParamDateFrom),
		DateTo:   r.URL.Query().Get(constant.RequestParamDateTo),
		Show:     r.URL.Query().Get(constant.RequestParamShow),
	}

	if centers := r.URL.Query().Get(constant.RequestParamCenters); centers != "" {
		req.Centers = strings.Split(centers, ",")
	}

	if err := validator.ValidateStruct(&req); err != nil {
		return dto.PlanningRequest{}, err //nolint:wrapcheck
	}

	return req, nil
}

// GetStatistics returns per-day occupancy statistics.
// @Summary Get planning statistics
// @Description Per-day capacity, occupancy, arrivals and departures for a set of centers.
// @Tags Planning
// @Accept json
// @Produce json
// @Param centers query string true "Comma-separated center IDs"
// @Param date_from query string true "Start date (YYYY-MM-DD)"
// @Param date_to query string true "End date (YYYY-MM-DD)"
// @Param show query string false "Unit granularity: parents, children or all" default(children)
// @Success 200 {object} dto.PlanningResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/planning/statistics [get]
func (handler *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStatistics")
	defer scope.End()

	req, err := requestFromQuery(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetStatistics(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get planning statistics")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetConsumptions returns the raw consumptions behind the planning calendar.
// @Summary Get planning consumptions
// @Description The individual stays and blocks of a set of centers within a date range.
// @Tags Planning
// @Accept json
// @Produce json
// @Param centers query string true "Comma-separated center IDs"
// @Param date_from query string true "Start date (YYYY-MM-DD)"
// @Param date_to query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.GetConsumptionsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/planning/consumptions [get]
func (handler *Handler) GetConsumptions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConsumptions")
	defer scope.End()

	req, err := requestFromQuery(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate query parameters")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetConsumptions(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get planning consumptions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
