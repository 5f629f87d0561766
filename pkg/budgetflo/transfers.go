package budgetflo

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// transferService implements the TransferService interface
type transferService struct {
	client *Client
}

// newTransferService creates a new transfer service
func newTransferService(client *Client) *transferService {
	return &transferService{client: client}
}

// List retrieves all transfers for the current user
func (s *transferService) List(ctx context.Context) ([]*Transfer, error) {
	var result struct {
		Transfers []*Transfer `json:"transfers"`
	}

	if err := s.client.do(ctx, http.MethodGet, "/transfers", nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get transfers")
	}

	return result.Transfers, nil
}

// Get retrieves a single transfer
func (s *transferService) Get(ctx context.Context, transferID string) (*Transfer, error) {
	var transfer Transfer

	if err := s.client.do(ctx, http.MethodGet, "/transfers/"+transferID, nil, &transfer); err != nil {
		return nil, errors.Wrap(err, "failed to get transfer")
	}

	return &transfer, nil
}

// Create creates a transfer between two accounts. The server debits
// the source and credits the destination atomically; an idempotency
// key guards against duplicate submissions on retry.
func (s *transferService) Create(ctx context.Context, params *CreateTransferParams) (*Transfer, error) {
	if params.FromAccountID == "" {
		return nil, &ValidationError{Field: "fromAccountId", Message: "fromAccountId is required"}
	}
	if params.ToAccountID == "" {
		return nil, &ValidationError{Field: "toAccountId", Message: "toAccountId is required"}
	}
	if params.FromAccountID == params.ToAccountID {
		return nil, &ValidationError{Field: "toAccountId", Message: "source and destination accounts must differ"}
	}
	if params.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Message: "amount must be positive", Value: params.Amount}
	}

	body := map[string]interface{}{
		"fromAccountId":  params.FromAccountID,
		"toAccountId":    params.ToAccountID,
		"amount":         params.Amount,
		"idempotencyKey": uuid.New().String(),
	}
	if params.Notes != "" {
		body["notes"] = params.Notes
	}
	if !params.Date.IsZero() {
		body["date"] = params.Date.Format("2006-01-02")
	}

	var transfer Transfer
	if err := s.client.do(ctx, http.MethodPost, "/transfers", body, &transfer); err != nil {
		return nil, errors.Wrap(err, "failed to create transfer")
	}

	return &transfer, nil
}

// settlementJob builds a job that polls the transfer until it settles.
// When latest is non-nil it receives the settled transfer.
func (s *transferService) settlementJob(transferID string, timeout time.Duration, latest **Transfer) *mutationJob {
	return newMutationJob(s.client, transferID, timeout, func(ctx context.Context) (bool, error) {
		current, err := s.Get(ctx, transferID)
		if err != nil {
			return false, err
		}
		if current.Status != "settled" {
			return false, nil
		}
		if latest != nil {
			*latest = current
		}
		return true, nil
	})
}

// CreateAndWait creates a transfer and blocks until both account
// balances reflect it.
func (s *transferService) CreateAndWait(ctx context.Context, params *CreateTransferParams, timeout time.Duration) (*Transfer, error) {
	transfer, err := s.Create(ctx, params)
	if err != nil {
		return nil, err
	}

	if transfer.Status == "settled" {
		return transfer, nil
	}

	job := s.settlementJob(transfer.ID, timeout, &transfer)
	if err := job.Wait(ctx); err != nil {
		return transfer, err
	}

	return transfer, nil
}

// CreateJob creates a transfer and returns a job tracking it to
// settlement. The caller decides when, or whether, to wait.
func (s *transferService) CreateJob(ctx context.Context, params *CreateTransferParams, timeout time.Duration) (*Transfer, MutationJob, error) {
	transfer, err := s.Create(ctx, params)
	if err != nil {
		return nil, nil, err
	}

	return transfer, s.settlementJob(transfer.ID, timeout, nil), nil
}
