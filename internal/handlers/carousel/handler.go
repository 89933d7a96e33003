package carousel

import (
	"net/http"

	"cove/infras/otel"
	"cove/internal/domains/carousel/model"
	"cove/internal/domains/carousel/model/dto"
	"cove/internal/domains/carousel/service"
	"cove/shared"
	"cove/shared/constant"
	gDto "cove/shared/dto"
	"cove/shared/validator"
	"cove/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Carousel
	otel    otel.Otel
}

func New(service service.Carousel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/carousel", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSlide)
		routerGroup.Get("/", handler.GetSlides)
		routerGroup.Get("/{id}", handler.GetSlideByID)
		routerGroup.Patch("/{id}", handler.UpdateSlide)
		routerGroup.Delete("/{id}", handler.DeleteSlide)
	})
}

// CreateSlide handles the creation of a new carousel slide.
// @Summary Create a new carousel slide
// @Description Create a new landing page carousel slide with an image.
// @Tags Carousel
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Slide title"
// @Param subtitle formData string false "Slide subtitle"
// @Param sort_order formData integer false "Display order"
// @Param image formData file true "Slide image"
// @Success 201 {object} response.Message "Slide created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/carousel [post]
// @Security BearerAuth
func (handler *Handler) CreateSlide(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSlide")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, err)

		return
	}

	req := dto.CreateSlideRequest{
		Title:    request.FormValue("title"),
		Subtitle: request.FormValue("subtitle"),
	}

	if orderStr := request.FormValue("sort_order"); orderStr != "" {
		if order, err := shared.ConvertStringToInt(orderStr); err == nil {
			req.SortOrder = order
		}
	}

	file, fileHeader, err := request.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create slide")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Slide created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Slide created successfully")
}

// GetSlides retrieves all carousel slides based on query parameters.
// @Summary Get all carousel slides
// @Description Retrieve all carousel slides with optional filtering and pagination.
// @Tags Carousel
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetSlidesResponse] "List of slides"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/carousel [get]
func (handler *Handler) GetSlides(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlides")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortBy == constant.DefaultValueSortBy {
		queryParams.SortBy = model.FieldSortOrder
		queryParams.SortDir = gDto.SortDirAsc
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	slides, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get slides")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Slides retrieved successfully")

	response.WithJSON(w, http.StatusOK, slides)
}

// GetSlideByID retrieves a carousel slide by its ID.
// @Summary Get a carousel slide by ID
// @Description Retrieve a carousel slide by its unique identifier.
// @Tags Carousel
// @Accept json
// @Produce json
// @Param id path string true "Slide ID"
// @Success 200 {object} response.Data[dto.SlideResponse] "Slide details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/carousel/{id} [get]
func (handler *Handler) GetSlideByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlideByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	slide, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get slide by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Slide retrieved successfully")

	response.WithJSON(w, http.StatusOK, slide)
}

// UpdateSlide updates an existing carousel slide by its ID.
// @Summary Update a carousel slide by ID
// @Description Update the details of an existing carousel slide.
// @Tags Carousel
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Slide ID"
// @Param title formData string false "Slide title"
// @Param subtitle formData string false "Slide subtitle"
// @Param sort_order formData integer false "Display order"
// @Param active formData boolean false "Slide active status"
// @Param image formData file false "Slide image"
// @Success 200 {object} response.Message "Slide updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/carousel/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSlide(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSlide")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UpdateSlideRequest{
		Title:    r.FormValue("title"),
		Subtitle: r.FormValue("subtitle"),
	}

	if orderStr := r.FormValue("sort_order"); orderStr != "" {
		if order, err := shared.ConvertStringToInt(orderStr); err == nil {
			req.SortOrder = &order
		}
	}

	if activeStr := r.FormValue("active"); activeStr != "" {
		req.Active = shared.ConvertStringToBool(activeStr)
	}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update slide")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Slide updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Slide updated successfully")
}

// DeleteSlide deletes a carousel slide by its ID.
// @Summary Delete a carousel slide by ID
// @Description Delete a carousel slide and its stored image.
// @Tags Carousel
// @Accept json
// @Produce json
// @Param id path string true "Slide ID"
// @Success 200 {object} response.Message "Slide deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/carousel/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSlide(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSlide")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete slide")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Slide deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Slide deleted successfully")
}
