package service

import (
	"context"

	"gymdesk-backend/internal/domain"
	"gymdesk-backend/internal/repository"
)

type paymentService struct {
	ledgerRepo repository.LedgerRepository
}

func NewPaymentService(ledgerRepo repository.LedgerRepository) PaymentService {
	return &paymentService{ledgerRepo: ledgerRepo}
}

func (s *paymentService) History(ctx context.Context, userID int64, filter domain.PaymentFilter) ([]domain.PaymentRecord, int64, error) {
	return s.ledgerRepo.History(ctx, userID, filter)
}

func (s *paymentService) Summary(ctx context.Context, userID int64) (*domain.LedgerSummary, error) {
	return s.ledgerRepo.Summary(ctx, userID)
}
