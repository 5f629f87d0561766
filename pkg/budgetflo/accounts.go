package budgetflo

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// accountService implements the AccountService interface
type accountService struct {
	client *Client
}

// List retrieves all accounts
func (s *accountService) List(ctx context.Context) ([]*Account, error) {
	var result struct {
		Accounts []*Account `json:"accounts"`
	}

	if err := s.client.do(ctx, http.MethodGet, "/accounts", nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get accounts")
	}

	return result.Accounts, nil
}

// Get retrieves a single account by ID
func (s *accountService) Get(ctx context.Context, accountID string) (*Account, error) {
	var account Account

	if err := s.client.do(ctx, http.MethodGet, "/accounts/"+accountID, nil, &account); err != nil {
		return nil, errors.Wrap(err, "failed to get account")
	}

	return &account, nil
}

// Create creates a new account
func (s *accountService) Create(ctx context.Context, params *CreateAccountParams) (*Account, error) {
	if params.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "name is required"}
	}

	body := map[string]interface{}{
		"name":              params.Name,
		"type":              params.Type,
		"balance":           params.Balance,
		"includeInNetWorth": params.IncludeInNetWorth,
	}
	if params.Subtype != "" {
		body["subtype"] = params.Subtype
	}
	if params.Currency != "" {
		body["currency"] = params.Currency
	}

	var account Account
	if err := s.client.do(ctx, http.MethodPost, "/accounts", body, &account); err != nil {
		return nil, errors.Wrap(err, "failed to create account")
	}

	return &account, nil
}

// Update updates an existing account
func (s *accountService) Update(ctx context.Context, accountID string, params *UpdateAccountParams) (*Account, error) {
	body := map[string]interface{}{}

	if params.Name != nil {
		body["name"] = *params.Name
	}
	if params.Balance != nil {
		body["balance"] = *params.Balance
	}
	if params.IncludeInNetWorth != nil {
		body["includeInNetWorth"] = *params.IncludeInNetWorth
	}
	if params.IsArchived != nil {
		body["isArchived"] = *params.IsArchived
	}

	var account Account
	if err := s.client.do(ctx, http.MethodPut, "/accounts/"+accountID, body, &account); err != nil {
		return nil, errors.Wrap(err, "failed to update account")
	}

	return &account, nil
}

// Delete deletes an account
func (s *accountService) Delete(ctx context.Context, accountID string) error {
	if err := s.client.do(ctx, http.MethodDelete, "/accounts/"+accountID, nil, nil); err != nil {
		return errors.Wrap(err, "failed to delete account")
	}

	return nil
}

// GetBalanceHistory retrieves recent balance history for an account
func (s *accountService) GetBalanceHistory(ctx context.Context, accountID string, startDate *time.Time) ([]*BalanceEntry, error) {
	if startDate == nil {
		defaultStart := time.Now().AddDate(0, 0, -31)
		startDate = &defaultStart
	}

	path := fmt.Sprintf("/accounts/%s/balance-history?startDate=%s", accountID, startDate.Format("2006-01-02"))

	var result struct {
		Balances []*BalanceEntry `json:"balances"`
	}

	if err := s.client.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get balance history")
	}

	return result.Balances, nil
}
