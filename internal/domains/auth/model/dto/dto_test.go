package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"resort/infras/jwt"
	"resort/internal/domains/auth/model/dto"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
		ExpiresIn:    900,
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
	assert.Equal(t, int64(900), response.ExpiresIn)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestCreateOperatorRequest_ToModel(t *testing.T) {
	now := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	req := dto.CreateOperatorRequest{Email: " Front.Desk@Resort.test ", FullName: " Dewi ", Role: "staff"}

	operator := req.ToModel("system", "hashed", now)

	assert.NotEmpty(t, operator.ID)
	assert.Equal(t, "front.desk@resort.test", operator.Email)
	assert.Equal(t, "Dewi", operator.FullName)
	assert.Equal(t, "hashed", operator.Password)
	assert.True(t, operator.Active)
	assert.Equal(t, now, operator.CreatedAt)
	assert.Equal(t, "system", operator.CreatedBy)
}
