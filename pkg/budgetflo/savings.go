package budgetflo

import (
	"context"
	"net/http"

	"github.com/pkg/errors"

	"github.com/AyzeysDev/budgetflo-platform-sub002/pkg/trackermath"
)

// savingsService implements the SavingsService interface
type savingsService struct {
	client *Client
}

// newSavingsService creates a new savings service
func newSavingsService(client *Client) *savingsService {
	return &savingsService{client: client}
}

// List retrieves all savings trackers
func (s *savingsService) List(ctx context.Context) ([]*SavingsTracker, error) {
	var result struct {
		Trackers []*SavingsTracker `json:"trackers"`
	}

	if err := s.client.do(ctx, http.MethodGet, "/savings", nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get savings trackers")
	}

	return result.Trackers, nil
}

// Get retrieves a single savings tracker
func (s *savingsService) Get(ctx context.Context, trackerID string) (*SavingsTracker, error) {
	var tracker SavingsTracker

	if err := s.client.do(ctx, http.MethodGet, "/savings/"+trackerID, nil, &tracker); err != nil {
		return nil, errors.Wrap(err, "failed to get savings tracker")
	}

	return &tracker, nil
}

// Create creates a savings tracker
func (s *savingsService) Create(ctx context.Context, params *CreateSavingsParams) (*SavingsTracker, error) {
	if params.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "name is required"}
	}

	body := map[string]interface{}{
		"name": params.Name,
	}
	if params.AccountID != "" {
		body["accountId"] = params.AccountID
	}
	if params.CurrentBalance != nil {
		body["currentBalance"] = *params.CurrentBalance
	}
	if params.OverallTarget != nil {
		body["overallTarget"] = *params.OverallTarget
	}

	var tracker SavingsTracker
	if err := s.client.do(ctx, http.MethodPost, "/savings", body, &tracker); err != nil {
		return nil, errors.Wrap(err, "failed to create savings tracker")
	}

	return &tracker, nil
}

// Update updates a savings tracker
func (s *savingsService) Update(ctx context.Context, trackerID string, params *UpdateSavingsParams) (*SavingsTracker, error) {
	body := map[string]interface{}{}

	if params.Name != nil {
		body["name"] = *params.Name
	}
	if params.CurrentBalance != nil {
		body["currentBalance"] = *params.CurrentBalance
	}
	if params.OverallTarget != nil {
		body["overallTarget"] = *params.OverallTarget
	}

	var tracker SavingsTracker
	if err := s.client.do(ctx, http.MethodPut, "/savings/"+trackerID, body, &tracker); err != nil {
		return nil, errors.Wrap(err, "failed to update savings tracker")
	}

	return &tracker, nil
}

// Delete deletes a savings tracker
func (s *savingsService) Delete(ctx context.Context, trackerID string) error {
	if err := s.client.do(ctx, http.MethodDelete, "/savings/"+trackerID, nil, nil); err != nil {
		return errors.Wrap(err, "failed to delete savings tracker")
	}

	return nil
}

// Deposit adds to the tracker's balance
func (s *savingsService) Deposit(ctx context.Context, trackerID string, amount float64) (*SavingsTracker, error) {
	if amount <= 0 {
		return nil, &ValidationError{Field: "amount", Message: "amount must be positive", Value: amount}
	}

	body := map[string]interface{}{"amount": amount}

	var tracker SavingsTracker
	if err := s.client.do(ctx, http.MethodPost, "/savings/"+trackerID+"/deposits", body, &tracker); err != nil {
		return nil, errors.Wrap(err, "failed to deposit to savings tracker")
	}

	return &tracker, nil
}

// Progress fetches the tracker and derives its snapshot locally.
// Trackers without a target report zero percent rather than failing.
func (s *savingsService) Progress(ctx context.Context, trackerID string) (*trackermath.SavingsSnapshot, error) {
	tracker, err := s.Get(ctx, trackerID)
	if err != nil {
		return nil, err
	}

	snapshot := trackermath.SavingsProgress(tracker.CurrentBalance, tracker.OverallTarget)
	return &snapshot, nil
}
