package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"resort/internal/domains/booking/model"
	"resort/internal/domains/booking/repository"
	"resort/shared"
	"resort/shared/constant"
	gDto "resort/shared/dto"
	"resort/shared/timezone"
	"time"
)

const (
	codePrefix       = "SC"
	codeAlphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeSuffixLength = 4
	// largest multiple of the alphabet size below 256, bytes above it are redrawn
	codeByteCeiling = 252
)

type CodeGenerator interface {
	// Generate returns an unused SC-YYYYMMDD-XXXX code. It only gives up when ctx is done.
	Generate(ctx context.Context) (string, error)
}

type codeStore interface {
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type codeGenerator struct {
	store  codeStore
	random io.Reader
	now    func() time.Time
}

func NewCodeGenerator(repo repository.Booking) CodeGenerator {
	return &codeGenerator{
		store:  repo,
		random: rand.Reader,
		now:    timezone.Now,
	}
}

func (g *codeGenerator) Generate(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("failed to generate booking code: %w", err)
		}

		code, err := g.candidate()
		if err != nil {
			return "", err
		}

		exists, err := g.store.Exist(ctx, shared.FilterByID(code, model.FieldCode, model.TableName))
		if err != nil {
			return "", fmt.Errorf("failed to check booking code: %w", err)
		}

		if !exists {
			return code, nil
		}
	}
}

func (g *codeGenerator) candidate() (string, error) {
	suffix := make([]byte, 0, codeSuffixLength)
	buf := make([]byte, 1)

	for len(suffix) < codeSuffixLength {
		if _, err := io.ReadFull(g.random, buf); err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}

		if buf[0] >= codeByteCeiling {
			continue
		}

		suffix = append(suffix, codeAlphabet[int(buf[0])%len(codeAlphabet)])
	}

	return fmt.Sprintf("%s-%s-%s", codePrefix, g.now().Format(constant.CodeDateFormat), suffix), nil
}
