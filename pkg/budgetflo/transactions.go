package budgetflo

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// transactionService implements the TransactionService interface
type transactionService struct {
	client     *Client
	categories CategoryService
}

// newTransactionService creates a new transaction service
func newTransactionService(client *Client) *transactionService {
	return &transactionService{
		client:     client,
		categories: &categoryService{client: client},
	}
}

// Query returns a transaction query builder
func (s *transactionService) Query() TransactionQueryBuilder {
	return &transactionQueryBuilder{
		client:  s.client,
		filters: url.Values{},
		limit:   100,
		offset:  0,
	}
}

// Get retrieves a single transaction
func (s *transactionService) Get(ctx context.Context, transactionID string) (*Transaction, error) {
	var txn Transaction

	if err := s.client.do(ctx, http.MethodGet, "/transactions/"+transactionID, nil, &txn); err != nil {
		return nil, errors.Wrap(err, "failed to get transaction")
	}

	return &txn, nil
}

// Create creates a new transaction
func (s *transactionService) Create(ctx context.Context, params *CreateTransactionParams) (*Transaction, error) {
	if params.AccountID == "" {
		return nil, &ValidationError{Field: "accountId", Message: "accountId is required"}
	}
	if params.Amount == 0 {
		return nil, &ValidationError{Field: "amount", Message: "amount must not be zero"}
	}

	body := map[string]interface{}{
		"accountId": params.AccountID,
		"amount":    params.Amount,
		"type":      params.Type,
		"date":      params.Date.Format("2006-01-02"),
	}
	if params.CategoryID != "" {
		body["categoryId"] = params.CategoryID
	}
	if params.Payee != "" {
		body["payee"] = params.Payee
	}
	if params.Notes != "" {
		body["notes"] = params.Notes
	}
	if params.GoalID != "" {
		body["goalId"] = params.GoalID
	}

	var txn Transaction
	if err := s.client.do(ctx, http.MethodPost, "/transactions", body, &txn); err != nil {
		return nil, errors.Wrap(err, "failed to create transaction")
	}

	return &txn, nil
}

// Update updates an existing transaction
func (s *transactionService) Update(ctx context.Context, transactionID string, params *UpdateTransactionParams) (*Transaction, error) {
	body := map[string]interface{}{}

	if params.AccountID != nil {
		body["accountId"] = *params.AccountID
	}
	if params.CategoryID != nil {
		body["categoryId"] = *params.CategoryID
	}
	if params.Amount != nil {
		body["amount"] = *params.Amount
	}
	if params.Date != nil {
		body["date"] = params.Date.Format("2006-01-02")
	}
	if params.Payee != nil {
		body["payee"] = *params.Payee
	}
	if params.Notes != nil {
		body["notes"] = *params.Notes
	}

	var txn Transaction
	if err := s.client.do(ctx, http.MethodPut, "/transactions/"+transactionID, body, &txn); err != nil {
		return nil, errors.Wrap(err, "failed to update transaction")
	}

	return &txn, nil
}

// Delete deletes a transaction
func (s *transactionService) Delete(ctx context.Context, transactionID string) error {
	if err := s.client.do(ctx, http.MethodDelete, "/transactions/"+transactionID, nil, nil); err != nil {
		return errors.Wrap(err, "failed to delete transaction")
	}

	return nil
}

// Categories returns the category sub-service
func (s *transactionService) Categories() CategoryService {
	return s.categories
}

// transactionQueryBuilder implements TransactionQueryBuilder
type transactionQueryBuilder struct {
	client    *Client
	filters   url.Values
	limit     int
	offset    int
	minAmount float64
	maxAmount float64
}

// Between sets date range filter
func (b *transactionQueryBuilder) Between(start, end time.Time) TransactionQueryBuilder {
	b.filters.Set("startDate", start.Format("2006-01-02"))
	b.filters.Set("endDate", end.Format("2006-01-02"))
	return b
}

// WithAccounts filters by account IDs
func (b *transactionQueryBuilder) WithAccounts(accountIDs ...string) TransactionQueryBuilder {
	b.filters.Set("accounts", strings.Join(accountIDs, ","))
	return b
}

// WithCategories filters by category IDs
func (b *transactionQueryBuilder) WithCategories(categoryIDs ...string) TransactionQueryBuilder {
	b.filters.Set("categories", strings.Join(categoryIDs, ","))
	return b
}

// WithType filters by transaction type
func (b *transactionQueryBuilder) WithType(txType string) TransactionQueryBuilder {
	b.filters.Set("type", txType)
	return b
}

// WithMinAmount sets minimum amount filter.
// Applied client-side; the backend's list route has no amount filters.
func (b *transactionQueryBuilder) WithMinAmount(amount float64) TransactionQueryBuilder {
	b.minAmount = amount
	return b
}

// WithMaxAmount sets maximum amount filter.
// Applied client-side; the backend's list route has no amount filters.
func (b *transactionQueryBuilder) WithMaxAmount(amount float64) TransactionQueryBuilder {
	b.maxAmount = amount
	return b
}

// Search sets search filter
func (b *transactionQueryBuilder) Search(query string) TransactionQueryBuilder {
	b.filters.Set("search", query)
	return b
}

// Limit sets result limit
func (b *transactionQueryBuilder) Limit(limit int) TransactionQueryBuilder {
	b.limit = limit
	return b
}

// Offset sets result offset
func (b *transactionQueryBuilder) Offset(offset int) TransactionQueryBuilder {
	b.offset = offset
	return b
}

// Execute runs the query
func (b *transactionQueryBuilder) Execute(ctx context.Context) (*TransactionList, error) {
	params := url.Values{}
	for k, vs := range b.filters {
		for _, v := range vs {
			params.Add(k, v)
		}
	}
	params.Set("limit", strconv.Itoa(b.limit))
	params.Set("offset", strconv.Itoa(b.offset))

	var result struct {
		Transactions []*Transaction `json:"transactions"`
		TotalCount   int            `json:"totalCount"`
	}

	if err := b.client.do(ctx, http.MethodGet, "/transactions?"+params.Encode(), nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get transactions")
	}

	// Apply client-side amount filtering if requested
	transactions := result.Transactions
	if b.minAmount > 0 || b.maxAmount > 0 {
		filtered := make([]*Transaction, 0, len(transactions))
		for _, txn := range transactions {
			absAmount := txn.Amount
			if absAmount < 0 {
				absAmount = -absAmount
			}

			if b.minAmount > 0 && absAmount < b.minAmount {
				continue
			}
			if b.maxAmount > 0 && absAmount > b.maxAmount {
				continue
			}
			filtered = append(filtered, txn)
		}
		transactions = filtered
	}

	hasMore := (b.offset + b.limit) < result.TotalCount

	return &TransactionList{
		Transactions: transactions,
		TotalCount:   result.TotalCount,
		HasMore:      hasMore,
		NextOffset:   b.offset + b.limit,
	}, nil
}

// Stream returns results as a channel for large queries
func (b *transactionQueryBuilder) Stream(ctx context.Context) (<-chan *Transaction, <-chan error) {
	txnChan := make(chan *Transaction)
	errChan := make(chan error, 1)

	go func() {
		defer close(txnChan)
		defer close(errChan)

		offset := b.offset
		limit := b.limit
		if limit > 100 {
			limit = 100 // Use smaller batches for streaming
		}

		for {
			page := &transactionQueryBuilder{
				client:    b.client,
				filters:   b.filters,
				limit:     limit,
				offset:    offset,
				minAmount: b.minAmount,
				maxAmount: b.maxAmount,
			}

			result, err := page.Execute(ctx)
			if err != nil {
				errChan <- err
				return
			}

			for _, txn := range result.Transactions {
				select {
				case <-ctx.Done():
					errChan <- ctx.Err()
					return
				case txnChan <- txn:
				}
			}

			if !result.HasMore {
				break
			}

			offset = result.NextOffset
		}
	}()

	return txnChan, errChan
}

// categoryService implements CategoryService
type categoryService struct {
	client *Client
}

// List retrieves all categories
func (s *categoryService) List(ctx context.Context) ([]*Category, error) {
	var result struct {
		Categories []*Category `json:"categories"`
	}

	if err := s.client.do(ctx, http.MethodGet, "/categories", nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get categories")
	}

	return result.Categories, nil
}

// Create creates a new category
func (s *categoryService) Create(ctx context.Context, params *CreateCategoryParams) (*Category, error) {
	if params.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "name is required"}
	}

	body := map[string]interface{}{
		"name": params.Name,
		"type": params.Type,
	}
	if params.Icon != "" {
		body["icon"] = params.Icon
	}

	var category Category
	if err := s.client.do(ctx, http.MethodPost, "/categories", body, &category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return &category, nil
}

// Delete deletes a category
func (s *categoryService) Delete(ctx context.Context, categoryID string) error {
	if err := s.client.do(ctx, http.MethodDelete, "/categories/"+categoryID, nil, nil); err != nil {
		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}
