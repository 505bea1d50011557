package notification_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"resort/infras/otel/mocks"
	notificationMocks "resort/internal/domains/notification/mocks"
	"resort/internal/domains/notification/model/dto"
	"resort/internal/handlers/notification"
	"resort/shared/failure"
)

func newRouter(t *testing.T) (*notificationMocks.MockTemplates, http.Handler) {
	t.Helper()

	svc := notificationMocks.NewMockTemplates(gomock.NewController(t))

	handler := notification.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_GetTemplates(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().GetTemplates(gomock.Any()).Return(dto.GetTemplatesResponse{
		Templates: []dto.TemplateResponse{{Key: "booking_received_guest", Version: 1, Enabled: true}},
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/email-templates", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "booking_received_guest")
}

func TestHandler_UpdateTemplate(t *testing.T) {
	disabled := false

	tests := []struct {
		name       string
		key        string
		body       string
		setupMock  func(svc *notificationMocks.MockTemplates)
		wantStatus int
	}{
		{
			name: "disable template",
			key:  "booking_confirmation_guest",
			body: `{"enabled":false}`,
			setupMock: func(svc *notificationMocks.MockTemplates) {
				svc.EXPECT().UpdateTemplate(gomock.Any(), "booking_confirmation_guest", dto.UpdateTemplateRequest{Enabled: &disabled}).
					Return(dto.TemplateResponse{Key: "booking_confirmation_guest", Version: 2}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown template",
			key:  "nope",
			body: `{"subject":"Hello"}`,
			setupMock: func(svc *notificationMocks.MockTemplates) {
				svc.EXPECT().UpdateTemplate(gomock.Any(), "nope", gomock.Any()).
					Return(dto.TemplateResponse{}, failure.NotFound("email template not found"))
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "empty subject",
			key:        "booking_confirmation_guest",
			body:       `{"subject":""}`,
			setupMock:  func(*notificationMocks.MockTemplates) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/email-templates/"+tt.key, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
