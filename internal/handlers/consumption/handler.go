package consumption

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/consumption/model/dto"
	"lodge/internal/domains/consumption/service"
	"lodge/shared/constant"
	"lodge/shared/validator"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.Consumption
	otel    otel.Otel
}

func New(service service.Consumption, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/consumptions", func(routerGroup chi.Router) {
		routerGroup.Post("/groups/{id}", handler.GenerateConsumptions)
		routerGroup.Get("/groups/{id}", handler.GetConsumptions)
		routerGroup.Delete("/groups/{id}", handler.DeleteConsumptions)

		routerGroup.Post("/blocks", handler.CreateBlock)
		routerGroup.Delete("/blocks", handler.DeleteBlock)
	})
}

// GenerateConsumptions materializes a sojourn group into per-day records.
// @Summary Generate consumptions for a sojourn group
// @Description Resolve the group's assignments to concrete units, run the conflict scan and insert one record per unit per day. The group moves to scheduled in the same transaction.
// @Tags Consumption
// @Accept json
// @Produce json
// @Param id path string true "Sojourn Group ID"
// @Success 201 {object} dto.GenerateConsumptionsResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/consumptions/groups/{id} [post]
func (handler *Handler) GenerateConsumptions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateConsumptions")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Generate(ctx, groupID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate consumptions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, res)
}

// GetConsumptions lists the consumptions of a sojourn group.
// @Summary List consumptions of a sojourn group
// @Tags Consumption
// @Accept json
// @Produce json
// @Param id path string true "Sojourn Group ID"
// @Success 200 {object} dto.GetConsumptionsResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/consumptions/groups/{id} [get]
func (handler *Handler) GetConsumptions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConsumptions")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.GetForGroup(ctx, groupID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get consumptions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteConsumptions removes a group's consumptions and reopens it.
// @Summary Delete consumptions of a sojourn group
// @Description Delete every consumption of a scheduled group and move it back to unscheduled so it can be edited and regenerated.
// @Tags Consumption
// @Accept json
// @Produce json
// @Param id path string true "Sojourn Group ID"
// @Success 200 {object} response.Message "Consumptions deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/consumptions/groups/{id} [delete]
func (handler *Handler) DeleteConsumptions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteConsumptions")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteForGroup(ctx, groupID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete consumptions")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Consumptions deleted successfully")
}

// CreateBlock takes a rental unit out of order for a date range.
// @Summary Create an out-of-order block
// @Description Block a rental unit for a date range. The block participates in conflict detection like any stay.
// @Tags Consumption
// @Accept json
// @Produce json
// @Param request body dto.CreateBlockRequest true "Create Block Request"
// @Success 201 {object} response.Message "Block created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/consumptions/blocks [post]
func (handler *Handler) CreateBlock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBlock")
	defer scope.End()

	req := dto.CreateBlockRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateBlock(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create block")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Block created successfully")
}

// DeleteBlock lifts an out-of-order block.
// @Summary Delete an out-of-order block
// @Description Remove the out-of-order records of a rental unit within a date range.
// @Tags Consumption
// @Accept json
// @Produce json
// @Param request body dto.DeleteBlockRequest true "Delete Block Request"
// @Success 200 {object} response.Message "Block deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/consumptions/blocks [delete]
func (handler *Handler) DeleteBlock(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBlock")
	defer scope.End()

	req := dto.DeleteBlockRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.DeleteBlock(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete block")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Block deleted successfully")
}
