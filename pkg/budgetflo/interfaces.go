package budgetflo

import (
	"context"
	"time"

	"github.com/AyzeysDev/budgetflo-platform-sub002/pkg/trackermath"
)

// AccountService handles all account-related operations
type AccountService interface {
	// List retrieves all accounts
	List(ctx context.Context) ([]*Account, error)

	// Get retrieves a single account by ID
	Get(ctx context.Context, accountID string) (*Account, error)

	// Create creates a new account
	Create(ctx context.Context, params *CreateAccountParams) (*Account, error)

	// Update updates an existing account
	Update(ctx context.Context, accountID string, params *UpdateAccountParams) (*Account, error)

	// Delete deletes an account
	Delete(ctx context.Context, accountID string) error

	// GetBalanceHistory retrieves balance history for an account
	GetBalanceHistory(ctx context.Context, accountID string, startDate *time.Time) ([]*BalanceEntry, error)
}

// BudgetService handles budget operations
type BudgetService interface {
	// List retrieves budgets for a month range
	List(ctx context.Context, startMonth, endMonth time.Time) ([]*Budget, error)

	// Get retrieves a single budget by ID
	Get(ctx context.Context, budgetID string) (*Budget, error)

	// Set upserts the budget amount for a category and month
	Set(ctx context.Context, params *SetBudgetParams) (*Budget, error)

	// Delete removes a budget entry
	Delete(ctx context.Context, budgetID string) error
}

// TransactionService handles all transaction-related operations
type TransactionService interface {
	// Query returns a transaction query builder
	Query() TransactionQueryBuilder

	// Get retrieves a single transaction
	Get(ctx context.Context, transactionID string) (*Transaction, error)

	// Create creates a new transaction
	Create(ctx context.Context, params *CreateTransactionParams) (*Transaction, error)

	// Update updates an existing transaction
	Update(ctx context.Context, transactionID string, params *UpdateTransactionParams) (*Transaction, error)

	// Delete deletes a transaction
	Delete(ctx context.Context, transactionID string) error

	// Categories returns the category sub-service
	Categories() CategoryService
}

// CategoryService handles transaction categories
type CategoryService interface {
	// List retrieves all categories
	List(ctx context.Context) ([]*Category, error)

	// Create creates a new category
	Create(ctx context.Context, params *CreateCategoryParams) (*Category, error)

	// Delete deletes a category
	Delete(ctx context.Context, categoryID string) error
}

// TransactionQueryBuilder builds transaction queries
type TransactionQueryBuilder interface {
	// Filter methods
	Between(start, end time.Time) TransactionQueryBuilder
	WithAccounts(accountIDs ...string) TransactionQueryBuilder
	WithCategories(categoryIDs ...string) TransactionQueryBuilder
	WithType(txType string) TransactionQueryBuilder
	WithMinAmount(amount float64) TransactionQueryBuilder
	WithMaxAmount(amount float64) TransactionQueryBuilder
	Search(query string) TransactionQueryBuilder
	Limit(limit int) TransactionQueryBuilder
	Offset(offset int) TransactionQueryBuilder

	// Execute runs the query
	Execute(ctx context.Context) (*TransactionList, error)

	// Stream returns results as a channel for large queries
	Stream(ctx context.Context) (<-chan *Transaction, <-chan error)
}

// TransferService handles transfers between accounts
type TransferService interface {
	// List retrieves recent transfers
	List(ctx context.Context) ([]*Transfer, error)

	// Get retrieves a single transfer by ID
	Get(ctx context.Context, transferID string) (*Transfer, error)

	// Create posts a transfer command to the backend
	Create(ctx context.Context, params *CreateTransferParams) (*Transfer, error)

	// CreateAndWait posts a transfer and waits until it settles
	CreateAndWait(ctx context.Context, params *CreateTransferParams, timeout time.Duration) (*Transfer, error)

	// CreateJob posts a transfer and returns a job that tracks it to
	// settlement without blocking
	CreateJob(ctx context.Context, params *CreateTransferParams, timeout time.Duration) (*Transfer, MutationJob, error)
}

// GoalService handles savings goals
type GoalService interface {
	// List retrieves all goals
	List(ctx context.Context) ([]*Goal, error)

	// Get retrieves a single goal by ID
	Get(ctx context.Context, goalID string) (*Goal, error)

	// Create creates a new goal
	Create(ctx context.Context, params *CreateGoalParams) (*Goal, error)

	// Update updates an existing goal
	Update(ctx context.Context, goalID string, params *UpdateGoalParams) (*Goal, error)

	// Delete deletes a goal
	Delete(ctx context.Context, goalID string) error

	// Contribute records a contribution toward a goal
	Contribute(ctx context.Context, goalID string, params *ContributeParams) (*GoalContribution, error)

	// Withdraw takes money back out of a goal
	Withdraw(ctx context.Context, goalID string, params *ContributeParams) (*GoalContribution, error)

	// Progress derives the goal's progress snapshot locally
	Progress(ctx context.Context, goalID string) (*trackermath.GoalSnapshot, error)

	// SuggestContribution derives the periodic amount needed to hit the target
	SuggestContribution(ctx context.Context, goalID string) (*float64, error)
}

// LoanService handles loan trackers
type LoanService interface {
	// List retrieves all loan trackers
	List(ctx context.Context) ([]*Loan, error)

	// Get retrieves a single loan tracker by ID
	Get(ctx context.Context, loanID string) (*Loan, error)

	// Create creates a loan tracker, deriving the EMI locally when absent
	Create(ctx context.Context, params *CreateLoanParams) (*Loan, error)

	// Update updates an existing loan tracker
	Update(ctx context.Context, loanID string, params *UpdateLoanParams) (*Loan, error)

	// Delete deletes a loan tracker
	Delete(ctx context.Context, loanID string) error

	// RecordPayment marks the next installment as paid
	RecordPayment(ctx context.Context, loanID string) (*Loan, error)

	// RecordPaymentAndWait records a payment and waits for it to be visible
	RecordPaymentAndWait(ctx context.Context, loanID string, timeout time.Duration) (*Loan, error)

	// RecordPaymentJob records a payment and returns a job that tracks
	// the incremented installment count without blocking
	RecordPaymentJob(ctx context.Context, loanID string, timeout time.Duration) (*Loan, MutationJob, error)

	// Progress derives the loan's progress snapshot locally
	Progress(ctx context.Context, loanID string) (*trackermath.LoanSnapshot, error)

	// Schedule expands the loan into its amortization schedule
	Schedule(ctx context.Context, loanID string) ([]trackermath.ScheduleEntry, error)
}

// SavingsService handles savings trackers
type SavingsService interface {
	// List retrieves all savings trackers
	List(ctx context.Context) ([]*SavingsTracker, error)

	// Get retrieves a single savings tracker by ID
	Get(ctx context.Context, trackerID string) (*SavingsTracker, error)

	// Create creates a savings tracker
	Create(ctx context.Context, params *CreateSavingsParams) (*SavingsTracker, error)

	// Update updates a savings tracker
	Update(ctx context.Context, trackerID string, params *UpdateSavingsParams) (*SavingsTracker, error)

	// Delete deletes a savings tracker
	Delete(ctx context.Context, trackerID string) error

	// Deposit adds to the tracker's balance
	Deposit(ctx context.Context, trackerID string, amount float64) (*SavingsTracker, error)

	// Progress derives the tracker's progress snapshot locally
	Progress(ctx context.Context, trackerID string) (*trackermath.SavingsSnapshot, error)
}

// AuthService handles authentication
type AuthService interface {
	// Login performs authentication
	Login(ctx context.Context, email, password string) error

	// Logout invalidates the current session
	Logout(ctx context.Context) error

	// GetSession returns the current session
	GetSession() (*Session, error)

	// SaveSession saves session to file
	SaveSession(path string) error

	// LoadSession loads session from file
	LoadSession(path string) error
}

// MutationJob tracks a write command until the backend confirms it.
// Writes in BudgetFlo apply asynchronously (the backend posts balance
// updates out of band), so callers that need read-your-writes poll
// through a job instead of assuming the mutation landed.
type MutationJob interface {
	// ID returns the job ID
	ID() string

	// Status returns the current status
	Status() MutationStatus

	// Wait polls until the mutation is confirmed, the job's timeout
	// elapses, or the context is cancelled
	Wait(ctx context.Context) error

	// IsComplete reports whether the job has reached a terminal state
	IsComplete() bool

	// Cancel stops waiting; the mutation itself is not rolled back
	Cancel()

	// Metrics returns job metrics
	Metrics() MutationJobMetrics
}
