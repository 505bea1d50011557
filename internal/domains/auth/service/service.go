package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"resort/config"
	"resort/infras/jwt"
	"resort/infras/otel"
	"resort/internal/domains/auth/model/dto"
	"resort/internal/domains/operator/model"
	"resort/internal/domains/operator/repository"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/failure"
	"resort/shared/password"
	"resort/shared/timezone"
	"strings"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, operatorID string) error
	CreateOperator(ctx context.Context, req dto.CreateOperatorRequest) error
}

type serviceImpl struct {
	operatorRepo repository.Operator
	cfg          *config.Config
	otel         otel.Otel
	jwtService   jwt.JWT
}

func New(operatorRepo repository.Operator, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		operatorRepo: operatorRepo,
		cfg:          cfg,
		otel:         otel,
		jwtService:   jwt,
	}
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(strings.TrimSpace(email)),
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) CreateOperator(ctx context.Context, req dto.CreateOperatorRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateOperator")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.operatorRepo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if operator exists")

		return fmt.Errorf("failed to check if operator exists: %w", err)
	}

	if exists {
		return failure.Conflict("email already registered")
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.operatorRepo.Insert(ctx, req.ToModel(constant.ContextSystem, hashedPassword, timezone.Now())); err != nil {
		log.Error().Err(err).Msg("failed to create operator")

		return fmt.Errorf("failed to create operator: %w", err)
	}

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := emailFilter(req.Email)

	operator, err := s.operatorRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get operator")

		return res, fmt.Errorf("failed to get operator: %w", err)
	}

	if !operator.Found() {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.Unauthorized("invalid email or password")
	}

	if err := password.Verify(req.Password, operator.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid email or password")
	}

	if !operator.Active {
		return res, failure.Forbidden("operator account is deactivated")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, operator.ID, operator.Email, operator.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}

	if err := s.operatorRepo.Update(ctx, shared.TransformFields(lastLogin, operator.ID), filter); err != nil {
		log.Warn().Err(err).Str("operator_id", operator.ID).Msg("failed to update last login")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, operatorID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(operatorID, model.FieldID, model.TableName)

	operator, err := s.operatorRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get operator")

		return fmt.Errorf("failed to get operator: %w", err)
	}

	if !operator.Found() {
		return failure.NotFound("operator not found")
	}

	if err := password.Verify(req.CurrentPassword, operator.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect")
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}

	if err = s.operatorRepo.Update(ctx, shared.TransformFields(updatePassword, operatorID), filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
