package infra

import (
	"context"

	"smartbiz-confirm/internal/domain"
)

type ConfirmClientInterface interface {
	GenerateConfirmation(ctx context.Context, in domain.OrderInput) (*domain.OrderResult, error)
}

var _ ConfirmClientInterface = (*ConfirmClient)(nil)
