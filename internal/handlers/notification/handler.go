package notification

import (
	"net/http"
	"resort/infras/otel"
	"resort/internal/domains/notification/model/dto"
	"resort/internal/domains/notification/service"
	"resort/shared/constant"
	"resort/shared/validator"
	"resort/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Templates
	otel    otel.Otel
}

func New(service service.Templates, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/email-templates", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTemplates)
		routerGroup.Patch("/{key}", handler.UpdateTemplate)
	})
}

// GetTemplates lists the email templates.
// @Summary List email templates
// @Tags Notification
// @Produce json
// @Success 200 {object} response.Data[dto.GetTemplatesResponse]
// @Failure 401 {object} response.Error
// @Router /v1/email-templates [get]
// @Security BearerAuth
func (handler *Handler) GetTemplates(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTemplates")
	defer scope.End()

	templates, err := handler.service.GetTemplates(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get email templates")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, templates)
}

// UpdateTemplate edits the subject, body or enabled flag of a template.
// @Summary Update an email template
// @Description Every accepted change bumps the template version.
// @Tags Notification
// @Accept json
// @Produce json
// @Param key path string true "Template key"
// @Param request body dto.UpdateTemplateRequest true "Update Template Request"
// @Success 200 {object} response.Data[dto.TemplateResponse]
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/email-templates/{key} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTemplate(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTemplate")
	defer scope.End()

	key := chi.URLParam(request, constant.RequestParamKey)

	req := dto.UpdateTemplateRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	template, err := handler.service.UpdateTemplate(ctx, key, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("key", key).Msg("failed to update email template")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Email template " + key + " updated by operator " + user)

	response.WithJSON(writer, http.StatusOK, template)
}
