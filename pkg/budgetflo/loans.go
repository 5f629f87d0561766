package budgetflo

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/AyzeysDev/budgetflo-platform-sub002/pkg/trackermath"
)

// loanService implements the LoanService interface
type loanService struct {
	client *Client
}

// newLoanService creates a new loan service
func newLoanService(client *Client) *loanService {
	return &loanService{client: client}
}

// List retrieves all loan trackers
func (s *loanService) List(ctx context.Context) ([]*Loan, error) {
	var result struct {
		Loans []*Loan `json:"loans"`
	}

	if err := s.client.do(ctx, http.MethodGet, "/loans", nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get loans")
	}

	return result.Loans, nil
}

// Get retrieves a single loan tracker
func (s *loanService) Get(ctx context.Context, loanID string) (*Loan, error) {
	var loan Loan

	if err := s.client.do(ctx, http.MethodGet, "/loans/"+loanID, nil, &loan); err != nil {
		return nil, errors.Wrap(err, "failed to get loan")
	}

	return &loan, nil
}

// Create creates a loan tracker. When no EMI is supplied the monthly
// installment is derived from principal, rate and tenure before the
// request is sent, so the server stores the same figure the client
// displays.
func (s *loanService) Create(ctx context.Context, params *CreateLoanParams) (*Loan, error) {
	if params.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "name is required"}
	}

	emi := params.EMIAmount
	if emi == 0 {
		derived, err := trackermath.ComputeEMI(params.TotalAmount, params.InterestRate, params.TenureMonths)
		if err != nil {
			return nil, &ValidationError{Field: "emiAmount", Message: err.Error()}
		}
		emi = derived
	}

	body := map[string]interface{}{
		"name":         params.Name,
		"totalAmount":  params.TotalAmount,
		"interestRate": params.InterestRate,
		"tenureMonths": params.TenureMonths,
		"emiAmount":    emi,
	}
	if !params.StartDate.IsZero() {
		body["startDate"] = params.StartDate.Format("2006-01-02")
	}

	var loan Loan
	if err := s.client.do(ctx, http.MethodPost, "/loans", body, &loan); err != nil {
		return nil, errors.Wrap(err, "failed to create loan")
	}

	return &loan, nil
}

// Update updates an existing loan tracker. Changing the rate or
// tenure re-derives the EMI from the outstanding terms.
func (s *loanService) Update(ctx context.Context, loanID string, params *UpdateLoanParams) (*Loan, error) {
	body := map[string]interface{}{}

	if params.Name != nil {
		body["name"] = *params.Name
	}
	if params.InterestRate != nil {
		body["interestRate"] = *params.InterestRate
	}
	if params.TenureMonths != nil {
		body["tenureMonths"] = *params.TenureMonths
	}

	if params.InterestRate != nil || params.TenureMonths != nil {
		current, err := s.Get(ctx, loanID)
		if err != nil {
			return nil, err
		}

		rate := current.InterestRate
		if params.InterestRate != nil {
			rate = *params.InterestRate
		}
		tenure := current.TenureMonths
		if params.TenureMonths != nil {
			tenure = *params.TenureMonths
		}

		emi, err := trackermath.ComputeEMI(current.TotalAmount, rate, tenure)
		if err != nil {
			return nil, &ValidationError{Field: "emiAmount", Message: err.Error()}
		}
		body["emiAmount"] = emi
	}

	var loan Loan
	if err := s.client.do(ctx, http.MethodPut, "/loans/"+loanID, body, &loan); err != nil {
		return nil, errors.Wrap(err, "failed to update loan")
	}

	return &loan, nil
}

// Delete deletes a loan tracker
func (s *loanService) Delete(ctx context.Context, loanID string) error {
	if err := s.client.do(ctx, http.MethodDelete, "/loans/"+loanID, nil, nil); err != nil {
		return errors.Wrap(err, "failed to delete loan")
	}

	return nil
}

// RecordPayment marks the next installment as paid
func (s *loanService) RecordPayment(ctx context.Context, loanID string) (*Loan, error) {
	var loan Loan

	if err := s.client.do(ctx, http.MethodPost, "/loans/"+loanID+"/payments", nil, &loan); err != nil {
		return nil, errors.Wrap(err, "failed to record loan payment")
	}

	return &loan, nil
}

// paymentVisibleJob builds a job that polls the loan until its paid
// installment count exceeds paidBefore. When latest is non-nil it
// receives the refreshed loan.
func (s *loanService) paymentVisibleJob(loanID string, paidBefore int, timeout time.Duration, latest **Loan) *mutationJob {
	return newMutationJob(s.client, loanID, timeout, func(ctx context.Context) (bool, error) {
		current, err := s.Get(ctx, loanID)
		if err != nil {
			return false, err
		}
		if current.PaidInstallments <= paidBefore {
			return false, nil
		}
		if latest != nil {
			*latest = current
		}
		return true, nil
	})
}

// RecordPaymentAndWait records a payment and blocks until the
// incremented installment count is visible on reads.
func (s *loanService) RecordPaymentAndWait(ctx context.Context, loanID string, timeout time.Duration) (*Loan, error) {
	before, err := s.Get(ctx, loanID)
	if err != nil {
		return nil, err
	}

	loan, err := s.RecordPayment(ctx, loanID)
	if err != nil {
		return nil, err
	}

	if loan.PaidInstallments > before.PaidInstallments {
		return loan, nil
	}

	job := s.paymentVisibleJob(loanID, before.PaidInstallments, timeout, &loan)
	if err := job.Wait(ctx); err != nil {
		return loan, err
	}

	return loan, nil
}

// RecordPaymentJob records a payment and returns a job tracking the
// incremented installment count. The caller decides when to wait.
func (s *loanService) RecordPaymentJob(ctx context.Context, loanID string, timeout time.Duration) (*Loan, MutationJob, error) {
	before, err := s.Get(ctx, loanID)
	if err != nil {
		return nil, nil, err
	}

	loan, err := s.RecordPayment(ctx, loanID)
	if err != nil {
		return nil, nil, err
	}

	return loan, s.paymentVisibleJob(loanID, before.PaidInstallments, timeout, nil), nil
}

// Progress fetches the loan and derives its snapshot locally. The
// remaining balance is echoed from the server record rather than
// recomputed.
func (s *loanService) Progress(ctx context.Context, loanID string) (*trackermath.LoanSnapshot, error) {
	loan, err := s.Get(ctx, loanID)
	if err != nil {
		return nil, err
	}

	snapshot := trackermath.LoanProgress(loan.TenureMonths, loan.PaidInstallments, loan.RemainingBalance)
	return &snapshot, nil
}

// Schedule expands the loan into its full amortization schedule
func (s *loanService) Schedule(ctx context.Context, loanID string) ([]trackermath.ScheduleEntry, error) {
	loan, err := s.Get(ctx, loanID)
	if err != nil {
		return nil, err
	}

	schedule := trackermath.AmortizationSchedule(loan.TotalAmount, loan.InterestRate, loan.TenureMonths, loan.StartDate.Time)
	if schedule == nil {
		return nil, &ValidationError{Field: "tenureMonths", Message: "loan terms do not yield a schedule"}
	}

	return schedule, nil
}
