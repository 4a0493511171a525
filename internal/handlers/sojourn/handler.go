package sojourn

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"lodge/infras/otel"
	"lodge/internal/domains/sojourn/model"
	"lodge/internal/domains/sojourn/model/dto"
	"lodge/internal/domains/sojourn/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"
)

type Handler struct {
	service service.Sojourn
	otel    otel.Otel
}

func New(service service.Sojourn, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/sojourn-groups", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSojournGroup)
		routerGroup.Get("/", handler.GetSojournGroups)
		routerGroup.Get("/{id}", handler.GetSojournGroupByID)
		routerGroup.Patch("/{id}", handler.UpdateSojournGroup)
		routerGroup.Delete("/{id}", handler.DeleteSojournGroup)

		routerGroup.Post("/{id}/assignments", handler.CreateAssignment)
		routerGroup.Get("/{id}/assignments", handler.GetAssignments)
		routerGroup.Patch("/{id}/assignments/{assignmentID}", handler.UpdateAssignment)
		routerGroup.Delete("/{id}/assignments/{assignmentID}", handler.DeleteAssignment)
	})
}

// CreateSojournGroup opens a new sojourn group on a booking.
// @Summary Create a sojourn group
// @Description Create a date/time-bounded stay for a number of persons under a booking.
// @Tags Sojourn
// @Accept json
// @Produce json
// @Param request body dto.CreateSojournGroupRequest true "Create Sojourn Group Request"
// @Success 201 {object} dto.SojournGroupResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sojourn-groups [post]
func (handler *Handler) CreateSojournGroup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSojournGroup")
	defer scope.End()

	req := dto.CreateSojournGroupRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	group, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create sojourn group")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, group)
}

// GetSojournGroups lists sojourn groups.
// @Summary List sojourn groups
// @Tags Sojourn
// @Accept json
// @Produce json
// @Param booking_id query string false "Filter by booking"
// @Param status query string false "Filter by scheduling status"
// @Success 200 {object} dto.GetSojournGroupsResponse
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sojourn-groups [get]
func (handler *Handler) GetSojournGroups(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSojournGroups")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if bookingID := r.URL.Query().Get(model.FieldBookingID); bookingID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingID,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingID,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	groups, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sojourn groups")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, groups)
}

// GetSojournGroupByID fetches one sojourn group.
// @Summary Get a sojourn group by ID
// @Tags Sojourn
// @Accept json
// @Produce json
// @Param id path string true "Sojourn Group ID"
// @Success 200 {object} dto.SojournGroupResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sojourn-groups/{id} [get]
func (handler *Handler) GetSojournGroupByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSojournGroupByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	group, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sojourn group by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, group)
}

// UpdateSojournGroup updates an unscheduled sojourn group.
// @Summary Update a sojourn group by ID
// @Description Update a sojourn group. Scheduled groups are immutable until their consumptions are deleted.
// @Tags Sojourn
// @Accept json
// @Produce json
// @Param id path string true "Sojourn Group ID"
// @Param request body dto.UpdateSojournGroupRequest true "Update Sojourn Group Request"
// @Success 200 {object} response.Message "Sojourn group updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sojourn-groups/{id} [patch]
func (handler *Handler) UpdateSojournGroup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSojournGroup")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateSojournGroupRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update sojourn group")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Sojourn group updated successfully")
}

// DeleteSojournGroup deletes a sojourn group.
// @Summary Delete a sojourn group by ID
// @Description Delete a sojourn group with its assignments and consumptions.
// @Tags Sojourn
// @Accept json
// @Produce json
// @Param id path string true "Sojourn Group ID"
// @Success 200 {object} response.Message "Sojourn group deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sojourn-groups/{id} [delete]
func (handler *Handler) DeleteSojournGroup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSojournGroup")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete sojourn group")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Sojourn group deleted successfully")
}

// CreateAssignment declares an allocation of persons to a rental unit.
// @Summary Create an assignment on a sojourn group
// @Tags Sojourn
// @Accept json
// @Produce json
// @Param id path string true "Sojourn Group ID"
// @Param request body dto.CreateAssignmentRequest true "Create Assignment Request"
// @Success 201 {object} dto.AssignmentResponse
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sojourn-groups/{id}/assignments [post]
func (handler *Handler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAssignment")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)

	req := dto.CreateAssignmentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	assignment, err := handler.service.CreateAssignment(ctx, groupID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create assignment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, assignment)
}

// GetAssignments lists the assignments of a sojourn group.
// @Summary List assignments of a sojourn group
// @Tags Sojourn
// @Accept json
// @Produce json
// @Param id path string true "Sojourn Group ID"
// @Success 200 {object} dto.GetAssignmentsResponse
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sojourn-groups/{id}/assignments [get]
func (handler *Handler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAssignments")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)

	assignments, err := handler.service.GetAssignments(ctx, groupID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get assignments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, assignments)
}

// UpdateAssignment changes the quantity of an assignment.
// @Summary Update an assignment's quantity
// @Tags Sojourn
// @Accept json
// @Produce json
// @Param id path string true "Sojourn Group ID"
// @Param assignmentID path string true "Assignment ID"
// @Param request body dto.UpdateAssignmentRequest true "Update Assignment Request"
// @Success 200 {object} response.Message "Assignment updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sojourn-groups/{id}/assignments/{assignmentID} [patch]
func (handler *Handler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAssignment")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)
	assignmentID := chi.URLParam(r, "assignmentID")

	req := dto.UpdateAssignmentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateAssignment(ctx, groupID, assignmentID, req.Qty); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update assignment")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Assignment updated successfully")
}

// DeleteAssignment removes an assignment.
// @Summary Delete an assignment
// @Tags Sojourn
// @Accept json
// @Produce json
// @Param id path string true "Sojourn Group ID"
// @Param assignmentID path string true "Assignment ID"
// @Success 200 {object} response.Message "Assignment deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/sojourn-groups/{id}/assignments/{assignmentID} [delete]
func (handler *Handler) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAssignment")
	defer scope.End()

	groupID := chi.URLParam(r, constant.RequestParamID)
	assignmentID := chi.URLParam(r, "assignmentID")

	if err := handler.service.DeleteAssignment(ctx, groupID, assignmentID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete assignment")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Assignment deleted successfully")
}
