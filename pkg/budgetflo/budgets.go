package budgetflo

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// budgetService implements the BudgetService interface
type budgetService struct {
	client *Client
}

// List retrieves budgets for a month range
func (s *budgetService) List(ctx context.Context, startMonth, endMonth time.Time) ([]*Budget, error) {
	path := fmt.Sprintf("/budgets?startMonth=%s&endMonth=%s",
		startMonth.Format("2006-01"), endMonth.Format("2006-01"))

	var result struct {
		Budgets []*Budget `json:"budgets"`
	}

	if err := s.client.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get budgets")
	}

	return result.Budgets, nil
}

// Get retrieves a single budget by ID
func (s *budgetService) Get(ctx context.Context, budgetID string) (*Budget, error) {
	var budget Budget

	if err := s.client.do(ctx, http.MethodGet, "/budgets/"+budgetID, nil, &budget); err != nil {
		return nil, errors.Wrap(err, "failed to get budget")
	}

	return &budget, nil
}

// Set upserts the budget amount for a category and month
func (s *budgetService) Set(ctx context.Context, params *SetBudgetParams) (*Budget, error) {
	if params.CategoryID == "" {
		return nil, &ValidationError{Field: "categoryId", Message: "categoryId is required"}
	}
	if params.Amount < 0 {
		return nil, &ValidationError{Field: "amount", Message: "amount must not be negative", Value: params.Amount}
	}

	body := map[string]interface{}{
		"categoryId": params.CategoryID,
		"amount":     params.Amount,
		"rollover":   params.Rollover,
		"month":      params.Month.Format("2006-01"),
	}

	var budget Budget
	if err := s.client.do(ctx, http.MethodPut, "/budgets", body, &budget); err != nil {
		return nil, errors.Wrap(err, "failed to set budget")
	}

	return &budget, nil
}

// Delete removes a budget entry
func (s *budgetService) Delete(ctx context.Context, budgetID string) error {
	if err := s.client.do(ctx, http.MethodDelete, "/budgets/"+budgetID, nil, nil); err != nil {
		return errors.Wrap(err, "failed to delete budget")
	}

	return nil
}
