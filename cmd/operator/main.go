// Command operator creates a back office account.
//
//	OPERATOR_PASSWORD=secret go run ./cmd/operator -email ops@resort.test -name "Front Desk" -role staff
package main

import (
	"context"
	"flag"
	"os"
	"resort/config"
	"resort/di"
	"resort/internal/domains/auth/model/dto"
	"resort/shared/constant"
	"resort/shared/failure"
	"resort/shared/logger"
	"resort/shared/validator"

	"github.com/rs/zerolog/log"
)

const envPassword = "OPERATOR_PASSWORD"

func main() {
	email := flag.String("email", "", "operator email")
	name := flag.String("name", "", "operator full name")
	role := flag.String("role", constant.RoleStaff, "operator role: superadmin, admin or staff")
	flag.Parse()

	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	req := dto.CreateOperatorRequest{
		Email:    *email,
		Password: os.Getenv(envPassword),
		FullName: *name,
		Role:     *role,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		log.Fatal().Err(err).Interface("fields", failure.GetFields(err)).Msg("invalid operator")
	}

	auth, cleanup := di.InitializeAuth()

	err := auth.CreateOperator(context.Background(), req)

	cleanup()

	if err != nil {
		log.Fatal().Err(err).Str("email", req.Email).Msg("failed to create operator")
	}

	log.Info().Str("email", req.Email).Str("role", req.Role).Msg("Operator created.")
}
