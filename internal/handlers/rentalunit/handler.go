package rentalunit

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/rentalunit/model"
	"lodge/internal/domains/rentalunit/model/dto"
	"lodge/internal/domains/rentalunit/service"
	"lodge/shared"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.RentalUnit
	otel    otel.Otel
}

func New(service service.RentalUnit, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/rental-units", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRentalUnit)
		routerGroup.Get("/", handler.GetRentalUnits)
		routerGroup.Get("/{id}", handler.GetRentalUnitByID)
		routerGroup.Patch("/{id}", handler.UpdateRentalUnit)
		routerGroup.Delete("/{id}", handler.DeleteRentalUnit)
	})
}

// CreateRentalUnit registers a new rental unit.
// @Summary Create a rental unit
// @Description Create a schedulable rental unit, optionally under a parent unit.
// @Tags RentalUnit
// @Accept json
// @Produce json
// @Param request body dto.CreateRentalUnitRequest true "Create Rental Unit Request"
// @Success 201 {object} response.Message "Rental unit created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rental-units [post]
func (handler *Handler) CreateRentalUnit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRentalUnit")
	defer scope.End()

	req := dto.CreateRentalUnitRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create rental unit")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Rental unit created successfully")
}

// GetRentalUnits lists rental units.
// @Summary List rental units
// @Description List rental units with optional name and center filters.
// @Tags RentalUnit
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param center_id query string false "Filter by center"
// @Success 200 {object} dto.GetRentalUnitsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rental-units [get]
func (handler *Handler) GetRentalUnits(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentalUnits")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	if centerID := r.URL.Query().Get(model.FieldCenterID); centerID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCenterID,
			Operator: gDto.FilterOperatorEq,
			Value:    centerID,
			Table:    model.TableName,
		})
	}

	if isAccommodation := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsAccommodation)); isAccommodation != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsAccommodation,
			Operator: gDto.FilterOperatorEq,
			Value:    *isAccommodation,
			Table:    model.TableName,
		})
	}

	units, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rental units")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, units)
}

// GetRentalUnitByID fetches one rental unit.
// @Summary Get a rental unit by ID
// @Tags RentalUnit
// @Accept json
// @Produce json
// @Param id path string true "Rental Unit ID"
// @Success 200 {object} dto.RentalUnitResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rental-units/{id} [get]
func (handler *Handler) GetRentalUnitByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRentalUnitByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	unit, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rental unit by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, unit)
}

// UpdateRentalUnit updates a rental unit.
// @Summary Update a rental unit by ID
// @Description Update a rental unit. Re-parenting is rejected when it would create a cycle.
// @Tags RentalUnit
// @Accept json
// @Produce json
// @Param id path string true "Rental Unit ID"
// @Param request body dto.UpdateRentalUnitRequest true "Update Rental Unit Request"
// @Success 200 {object} response.Message "Rental unit updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rental-units/{id} [patch]
func (handler *Handler) UpdateRentalUnit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRentalUnit")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRentalUnitRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update rental unit")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Rental unit updated successfully")
}

// DeleteRentalUnit deletes a rental unit.
// @Summary Delete a rental unit by ID
// @Description Delete a rental unit. Units that still have children are rejected.
// @Tags RentalUnit
// @Accept json
// @Produce json
// @Param id path string true "Rental Unit ID"
// @Success 200 {object} response.Message "Rental unit deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rental-units/{id} [delete]
func (handler *Handler) DeleteRentalUnit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRentalUnit")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete rental unit")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Rental unit deleted successfully")
}
