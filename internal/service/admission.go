package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/otterbank/bank/internal/models"
	"github.com/otterbank/bank/internal/repository"
)

// AdmissionService is the single write path into the ledger. Submit validates
// a command against the policy chain and appends the resulting transaction,
// or rejects the command leaving the ledger untouched.
type AdmissionService struct {
	ledger repository.LedgerStore
	chain  *Chain
	logger *slog.Logger

	// mu makes validate-and-append atomic with respect to other submissions.
	// Without it two concurrent withdrawals can each observe a sufficient
	// pre-transaction balance and both commit, driving the account negative.
	mu sync.Mutex
}

// NewAdmissionService creates a new AdmissionService.
func NewAdmissionService(ledger repository.LedgerStore, chain *Chain, logger *slog.Logger) *AdmissionService {
	return &AdmissionService{
		ledger: ledger,
		chain:  chain,
		logger: logger,
	}
}

// Submit converts the command into a candidate transaction, runs the policy
// chain against current account state and appends the transaction on success.
// A *PolicyViolation carries the first failing policy's cause; any other
// error is an internal fault and nothing was persisted either way.
func (s *AdmissionService) Submit(ctx context.Context, cmd models.TransferCommand) (*models.Transaction, error) {
	tx := &models.Transaction{
		ID:        uuid.New(),
		From:      cmd.From,
		To:        cmd.To,
		Amount:    cmd.Amount,
		Timestamp: time.Now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.chain.Validate(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("failed to validate transaction: %w", err)
	}
	if !result.Satisfied {
		s.logger.Info("transfer rejected",
			"from", tx.From.String(),
			"to", tx.To.String(),
			"amount", tx.Amount.String(),
			"cause", result.Cause,
		)
		return nil, &PolicyViolation{Cause: result.Cause}
	}

	if err := s.ledger.Append(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to append transaction: %w", err)
	}

	s.logger.Info("transfer admitted",
		"transaction_id", tx.ID,
		"from", tx.From.String(),
		"to", tx.To.String(),
		"amount", tx.Amount.String(),
	)

	return tx, nil
}
