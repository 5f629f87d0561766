package budgetflo

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/AyzeysDev/budgetflo-platform-sub002/pkg/trackermath"
)

// goalService implements the GoalService interface
type goalService struct {
	client *Client
}

// newGoalService creates a new goal service
func newGoalService(client *Client) *goalService {
	return &goalService{client: client}
}

// List retrieves all goals
func (s *goalService) List(ctx context.Context) ([]*Goal, error) {
	var result struct {
		Goals []*Goal `json:"goals"`
	}

	if err := s.client.do(ctx, http.MethodGet, "/goals", nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get goals")
	}

	return result.Goals, nil
}

// Get retrieves a single goal
func (s *goalService) Get(ctx context.Context, goalID string) (*Goal, error) {
	var goal Goal

	if err := s.client.do(ctx, http.MethodGet, "/goals/"+goalID, nil, &goal); err != nil {
		return nil, errors.Wrap(err, "failed to get goal")
	}

	return &goal, nil
}

// Create creates a new goal
func (s *goalService) Create(ctx context.Context, params *CreateGoalParams) (*Goal, error) {
	if params.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "name is required"}
	}
	if params.TargetAmount <= 0 {
		return nil, &ValidationError{Field: "targetAmount", Message: "targetAmount must be positive", Value: params.TargetAmount}
	}

	body := map[string]interface{}{
		"name":         params.Name,
		"targetAmount": params.TargetAmount,
	}
	if params.CurrentAmount > 0 {
		body["currentAmount"] = params.CurrentAmount
	}
	if !params.TargetDate.IsZero() {
		body["targetDate"] = params.TargetDate.Format("2006-01-02")
	}
	if params.Icon != "" {
		body["icon"] = params.Icon
	}

	var goal Goal
	if err := s.client.do(ctx, http.MethodPost, "/goals", body, &goal); err != nil {
		return nil, errors.Wrap(err, "failed to create goal")
	}

	return &goal, nil
}

// Update updates an existing goal
func (s *goalService) Update(ctx context.Context, goalID string, params *UpdateGoalParams) (*Goal, error) {
	body := map[string]interface{}{}

	if params.Name != nil {
		body["name"] = *params.Name
	}
	if params.TargetAmount != nil {
		body["targetAmount"] = *params.TargetAmount
	}
	if params.TargetDate != nil {
		body["targetDate"] = params.TargetDate.Format("2006-01-02")
	}
	if params.Icon != nil {
		body["icon"] = *params.Icon
	}

	var goal Goal
	if err := s.client.do(ctx, http.MethodPut, "/goals/"+goalID, body, &goal); err != nil {
		return nil, errors.Wrap(err, "failed to update goal")
	}

	return &goal, nil
}

// Delete deletes a goal
func (s *goalService) Delete(ctx context.Context, goalID string) error {
	if err := s.client.do(ctx, http.MethodDelete, "/goals/"+goalID, nil, nil); err != nil {
		return errors.Wrap(err, "failed to delete goal")
	}

	return nil
}

// Contribute records a contribution toward a goal. The backend
// creates the matching transaction and bumps currentAmount in one
// write, so callers should not post a separate transaction for it.
func (s *goalService) Contribute(ctx context.Context, goalID string, params *ContributeParams) (*GoalContribution, error) {
	return s.postContribution(ctx, goalID, "contributions", params)
}

// Withdraw takes money back out of a goal
func (s *goalService) Withdraw(ctx context.Context, goalID string, params *ContributeParams) (*GoalContribution, error) {
	return s.postContribution(ctx, goalID, "withdrawals", params)
}

func (s *goalService) postContribution(ctx context.Context, goalID, kind string, params *ContributeParams) (*GoalContribution, error) {
	if params.Amount <= 0 {
		return nil, &ValidationError{Field: "amount", Message: "amount must be positive", Value: params.Amount}
	}

	body := map[string]interface{}{
		"amount": params.Amount,
	}
	if params.AccountID != "" {
		body["accountId"] = params.AccountID
	}
	if !params.Date.IsZero() {
		body["date"] = params.Date.Format("2006-01-02")
	}
	if params.Notes != "" {
		body["notes"] = params.Notes
	}

	var contribution GoalContribution
	if err := s.client.do(ctx, http.MethodPost, "/goals/"+goalID+"/"+kind, body, &contribution); err != nil {
		return nil, errors.Wrapf(err, "failed to post goal %s", kind)
	}

	return &contribution, nil
}

// Progress fetches the goal and derives its snapshot locally
func (s *goalService) Progress(ctx context.Context, goalID string) (*trackermath.GoalSnapshot, error) {
	goal, err := s.Get(ctx, goalID)
	if err != nil {
		return nil, err
	}

	snapshot := trackermath.GoalProgress(goal.TargetAmount, goal.CurrentAmount, goal.TargetDate.Time, time.Now())
	return &snapshot, nil
}

// SuggestContribution derives the monthly amount needed to reach the
// goal's target by its date. Returns nil when the target is already
// met or the date has passed.
func (s *goalService) SuggestContribution(ctx context.Context, goalID string) (*float64, error) {
	goal, err := s.Get(ctx, goalID)
	if err != nil {
		return nil, err
	}

	remaining := goal.TargetAmount - goal.CurrentAmount
	return trackermath.SuggestedContribution(remaining, goal.TargetDate.Time, time.Now()), nil
}
