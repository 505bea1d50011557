package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"resort/config"
	"resort/infras/jwt"
	jwtMocks "resort/infras/jwt/mocks"
	"resort/infras/otel/mocks"
	"resort/internal/domains/auth/model/dto"
	"resort/internal/domains/auth/service"
	operatorMocks "resort/internal/domains/operator/mocks"
	operatorModel "resort/internal/domains/operator/model"
	"resort/shared/constant"
	"resort/shared/failure"
	gModel "resort/shared/model"
	"resort/shared/timezone"
)

// passwordHash is the bcrypt hash of "password".
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

var validOperator = operatorModel.Operator{
	ID:       "operator-id-123",
	Email:    "frontdesk@resort.test",
	Password: passwordHash,
	FullName: "Front Desk",
	Role:     constant.RoleStaff,
	Active:   true,
	Metadata: gModel.NewMetadata(constant.ContextSystem, timezone.Now()),
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockOperatorRepo := operatorMocks.NewMockOperator(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(mockOperatorRepo, &config.Config{}, mocks.NewOtel(), mockJWT)

	inactive := validOperator
	inactive.Active = false

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "FrontDesk@resort.test", Password: "password"},
			setupMock: func() {
				mockOperatorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validOperator, nil)
				mockJWT.EXPECT().
					GenerateTokenPair(gomock.Any(), validOperator.ID, validOperator.Email, validOperator.Role).
					Return(&jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil)
				mockOperatorRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "last login failure does not block",
			req:  dto.LoginRequest{Email: "frontdesk@resort.test", Password: "password"},
			setupMock: func() {
				mockOperatorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validOperator, nil)
				mockJWT.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&jwt.TokenPair{AccessToken: "access-token"}, nil)
				mockOperatorRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantCode: http.StatusOK,
		},
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@resort.test", Password: "password"},
			setupMock: func() {
				mockOperatorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(operatorModel.Operator{}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "frontdesk@resort.test", Password: "wrong"},
			setupMock: func() {
				mockOperatorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validOperator, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Email: "frontdesk@resort.test", Password: "password"},
			setupMock: func() {
				mockOperatorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "store failure",
			req:  dto.LoginRequest{Email: "frontdesk@resort.test", Password: "password"},
			setupMock: func() {
				mockOperatorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(operatorModel.Operator{}, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Login(context.Background(), tt.req)
			if tt.wantCode != http.StatusOK {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	svc := service.New(operatorMocks.NewMockOperator(ctrl), &config.Config{}, mocks.NewOtel(), mockJWT)

	mockJWT.EXPECT().RefreshTokens(gomock.Any(), "good").Return(&jwt.TokenPair{AccessToken: "new", RefreshToken: "newer"}, nil)

	res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "good"})
	assert.NoError(t, err)
	assert.Equal(t, "new", res.AccessToken)
	assert.Equal(t, "newer", res.RefreshToken)

	mockJWT.EXPECT().RefreshTokens(gomock.Any(), "expired").Return(nil, jwt.ErrExpiredToken)

	_, err = svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "expired"})
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockOperatorRepo := operatorMocks.NewMockOperator(ctrl)

	svc := service.New(mockOperatorRepo, &config.Config{}, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))

	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "password changed",
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "new-password"},
			setupMock: func() {
				mockOperatorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validOperator, nil)
				mockOperatorRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.NotEqual(t, passwordHash, fields[operatorModel.FieldPassword])
						assert.Equal(t, validOperator.ID, fields[constant.FieldModifiedBy])

						return nil
					})
			},
			wantCode: http.StatusOK,
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "new-password"},
			setupMock: func() {
				mockOperatorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validOperator, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "operator not found",
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "new-password"},
			setupMock: func() {
				mockOperatorRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(operatorModel.Operator{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.ChangePassword(context.Background(), tt.req, validOperator.ID)
			if tt.wantCode != http.StatusOK {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestAuthService_CreateOperator(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockOperatorRepo := operatorMocks.NewMockOperator(ctrl)

	svc := service.New(mockOperatorRepo, &config.Config{}, mocks.NewOtel(), jwtMocks.NewMockJWT(ctrl))
	req := dto.CreateOperatorRequest{Email: "ops@resort.test", Password: "password123", FullName: "Ops", Role: constant.RoleAdmin}

	mockOperatorRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
	mockOperatorRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, operator operatorModel.Operator) error {
		assert.Equal(t, "ops@resort.test", operator.Email)
		assert.NotEqual(t, "password123", operator.Password)
		assert.Equal(t, constant.ContextSystem, operator.CreatedBy)

		return nil
	})

	assert.NoError(t, svc.CreateOperator(context.Background(), req))

	mockOperatorRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	assert.Equal(t, http.StatusConflict, failure.GetCode(svc.CreateOperator(context.Background(), req)))
}
