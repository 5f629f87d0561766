package budgetflo

import (
	"time"
)

// Account represents a financial account
type Account struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Type              string     `json:"type"`
	Subtype           string     `json:"subtype,omitempty"`
	Balance           float64    `json:"balance"`
	Currency          string     `json:"currency"`
	IncludeInNetWorth bool       `json:"includeInNetWorth"`
	IsArchived        bool       `json:"isArchived"`
	ArchivedAt        *time.Time `json:"archivedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// BalanceEntry represents an account balance at a point in time
type BalanceEntry struct {
	Date    Date    `json:"date"`
	Balance float64 `json:"balance"`
}

// Category represents a transaction category
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Type     string `json:"type"` // "income" or "expense"
	IsSystem bool   `json:"isSystem"`
	Order    int    `json:"order"`
}

// Budget represents a monthly budget entry for a category
type Budget struct {
	ID                 string    `json:"id"`
	CategoryID         string    `json:"categoryId"`
	Category           *Category `json:"category,omitempty"`
	Amount             float64   `json:"amount"`
	Spent              float64   `json:"spent"`
	Remaining          float64   `json:"remaining"`
	PercentageComplete float64   `json:"percentageComplete"`
	Rollover           bool      `json:"rollover"`
	Month              Date      `json:"month"`
}

// Transaction represents a financial transaction
type Transaction struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"accountId"`
	Account     *Account  `json:"account,omitempty"`
	CategoryID  string    `json:"categoryId"`
	Category    *Category `json:"category,omitempty"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"` // "income", "expense" or "transfer"
	Date        Date      `json:"date"`
	Payee       string    `json:"payee,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Pending     bool      `json:"pending"`
	GoalID      string    `json:"goalId,omitempty"`
	TransferID  string    `json:"transferId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TransactionList represents paginated transaction results
type TransactionList struct {
	Transactions []*Transaction `json:"transactions"`
	TotalCount   int            `json:"totalCount"`
	HasMore      bool           `json:"hasMore"`
	NextOffset   int            `json:"nextOffset"`
}

// Transfer represents a movement of funds between two accounts
type Transfer struct {
	ID             string    `json:"id"`
	FromAccountID  string    `json:"fromAccountId"`
	ToAccountID    string    `json:"toAccountId"`
	Amount         float64   `json:"amount"`
	Date           Date      `json:"date"`
	Notes          string    `json:"notes,omitempty"`
	Status         string    `json:"status"` // "pending" or "settled"
	IdempotencyKey string    `json:"idempotencyKey,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Goal represents a savings goal
type Goal struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"targetAmount"`
	CurrentAmount float64   `json:"currentAmount"`
	TargetDate    Date      `json:"targetDate"`
	Icon          string    `json:"icon,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// GoalContribution represents an amount put toward a goal
type GoalContribution struct {
	ID        string    `json:"id"`
	GoalID    string    `json:"goalId"`
	AccountID string    `json:"accountId"`
	Amount    float64   `json:"amount"`
	Date      Date      `json:"date"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Loan represents a loan tracker
type Loan struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	TotalAmount      float64   `json:"totalAmount"`
	InterestRate     float64   `json:"interestRate"`
	TenureMonths     int       `json:"tenureMonths"`
	PaidInstallments int       `json:"paidInstallments"`
	EMIAmount        float64   `json:"emiAmount"`
	RemainingBalance float64   `json:"remainingBalance"`
	StartDate        Date      `json:"startDate"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// SavingsTracker represents a savings tracker. Balance and target are
// optional on the wire.
type SavingsTracker struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	AccountID      string    `json:"accountId,omitempty"`
	CurrentBalance *float64  `json:"currentBalance,omitempty"`
	OverallTarget  *float64  `json:"overallTarget,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// Session represents an authenticated session
type Session struct {
	Token      string    `json:"token"`
	UserID     string    `json:"userId"`
	Email      string    `json:"email"`
	ExpiresAt  time.Time `json:"expiresAt"`
	DeviceUUID string    `json:"deviceUuid"`
}

// Parameter structures

// CreateAccountParams for creating accounts
type CreateAccountParams struct {
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	Subtype           string  `json:"subtype,omitempty"`
	Balance           float64 `json:"balance"`
	Currency          string  `json:"currency,omitempty"`
	IncludeInNetWorth bool    `json:"includeInNetWorth"`
}

// UpdateAccountParams for updating accounts
type UpdateAccountParams struct {
	Name              *string  `json:"name,omitempty"`
	Balance           *float64 `json:"balance,omitempty"`
	IncludeInNetWorth *bool    `json:"includeInNetWorth,omitempty"`
	IsArchived        *bool    `json:"isArchived,omitempty"`
}

// CreateTransactionParams for creating transactions
type CreateTransactionParams struct {
	AccountID  string    `json:"accountId"`
	CategoryID string    `json:"categoryId,omitempty"`
	Amount     float64   `json:"amount"`
	Type       string    `json:"type"`
	Date       time.Time `json:"-"`
	Payee      string    `json:"payee,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	GoalID     string    `json:"goalId,omitempty"`
}

// UpdateTransactionParams for updating transactions
type UpdateTransactionParams struct {
	AccountID  *string    `json:"accountId,omitempty"`
	CategoryID *string    `json:"categoryId,omitempty"`
	Amount     *float64   `json:"amount,omitempty"`
	Date       *time.Time `json:"-"`
	Payee      *string    `json:"payee,omitempty"`
	Notes      *string    `json:"notes,omitempty"`
}

// CreateCategoryParams for creating categories
type CreateCategoryParams struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Icon string `json:"icon,omitempty"`
}

// CreateTransferParams for moving funds between accounts
type CreateTransferParams struct {
	FromAccountID string    `json:"fromAccountId"`
	ToAccountID   string    `json:"toAccountId"`
	Amount        float64   `json:"amount"`
	Date          time.Time `json:"-"`
	Notes         string    `json:"notes,omitempty"`
}

// SetBudgetParams for upserting a category budget for a month
type SetBudgetParams struct {
	CategoryID string    `json:"categoryId"`
	Amount     float64   `json:"amount"`
	Rollover   bool      `json:"rollover"`
	Month      time.Time `json:"-"`
}

// CreateGoalParams for creating goals
type CreateGoalParams struct {
	Name          string    `json:"name"`
	TargetAmount  float64   `json:"targetAmount"`
	CurrentAmount float64   `json:"currentAmount,omitempty"`
	TargetDate    time.Time `json:"-"`
	Icon          string    `json:"icon,omitempty"`
}

// UpdateGoalParams for updating goals
type UpdateGoalParams struct {
	Name         *string    `json:"name,omitempty"`
	TargetAmount *float64   `json:"targetAmount,omitempty"`
	TargetDate   *time.Time `json:"-"`
	Icon         *string    `json:"icon,omitempty"`
}

// ContributeParams for goal contributions and withdrawals
type ContributeParams struct {
	AccountID string    `json:"accountId"`
	Amount    float64   `json:"amount"`
	Date      time.Time `json:"-"`
	Notes     string    `json:"notes,omitempty"`
}

// CreateLoanParams for creating loan trackers
type CreateLoanParams struct {
	Name         string    `json:"name"`
	TotalAmount  float64   `json:"totalAmount"`
	InterestRate float64   `json:"interestRate"`
	TenureMonths int       `json:"tenureMonths"`
	EMIAmount    float64   `json:"emiAmount,omitempty"`
	StartDate    time.Time `json:"-"`
}

// UpdateLoanParams for updating loan trackers
type UpdateLoanParams struct {
	Name         *string  `json:"name,omitempty"`
	InterestRate *float64 `json:"interestRate,omitempty"`
	TenureMonths *int     `json:"tenureMonths,omitempty"`
}

// CreateSavingsParams for creating savings trackers
type CreateSavingsParams struct {
	Name           string   `json:"name"`
	AccountID      string   `json:"accountId,omitempty"`
	CurrentBalance *float64 `json:"currentBalance,omitempty"`
	OverallTarget  *float64 `json:"overallTarget,omitempty"`
}

// UpdateSavingsParams for updating savings trackers
type UpdateSavingsParams struct {
	Name           *string  `json:"name,omitempty"`
	CurrentBalance *float64 `json:"currentBalance,omitempty"`
	OverallTarget  *float64 `json:"overallTarget,omitempty"`
}
