package budgetflo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AyzeysDev/budgetflo-platform-sub002/pkg/trackermath"
)

func TestLoans_Create_DerivesEMI(t *testing.T) {
	transport := new(MockTransport)
	client := newTestClient(transport)

	transport.On("Do", mock.Anything, "POST", "/loans",
		mock.MatchedBy(func(body interface{}) bool {
			m, ok := body.(map[string]interface{})
			return ok && m["emiAmount"] == 8791.59
		}), mock.Anything).
		Return(`{"id":"l-1","name":"Car","totalAmount":100000,"interestRate":10,"tenureMonths":12,"emiAmount":8791.59}`, nil)

	loan, err := client.Loans.Create(context.Background(), &CreateLoanParams{
		Name:         "Car",
		TotalAmount:  100000,
		InterestRate: 10,
		TenureMonths: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, 8791.59, loan.EMIAmount)
	transport.AssertExpectations(t)
}

func TestLoans_Create_KeepsExplicitEMI(t *testing.T) {
	transport := new(MockTransport)
	client := newTestClient(transport)

	transport.On("Do", mock.Anything, "POST", "/loans",
		mock.MatchedBy(func(body interface{}) bool {
			m, ok := body.(map[string]interface{})
			return ok && m["emiAmount"] == 9000.0
		}), mock.Anything).
		Return(`{"id":"l-1","emiAmount":9000}`, nil)

	_, err := client.Loans.Create(context.Background(), &CreateLoanParams{
		Name:         "Car",
		TotalAmount:  100000,
		InterestRate: 10,
		TenureMonths: 12,
		EMIAmount:    9000,
	})
	require.NoError(t, err)
	transport.AssertExpectations(t)
}

func TestLoans_Create_RejectsBadTerms(t *testing.T) {
	client := newTestClient(new(MockTransport))

	_, err := client.Loans.Create(context.Background(), &CreateLoanParams{
		Name:         "Car",
		TotalAmount:  -1,
		InterestRate: 10,
		TenureMonths: 12,
	})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestLoans_RecordPayment(t *testing.T) {
	transport := new(MockTransport)
	client := newTestClient(transport)

	transport.On("Do", mock.Anything, "POST", "/loans/l-1/payments", nil, mock.Anything).
		Return(`{"id":"l-1","paidInstallments":4,"remainingBalance":70332.72}`, nil)

	loan, err := client.Loans.RecordPayment(context.Background(), "l-1")
	require.NoError(t, err)
	assert.Equal(t, 4, loan.PaidInstallments)
}

func TestLoans_RecordPaymentAndWait_ImmediatelyVisible(t *testing.T) {
	transport := new(MockTransport)
	client := newTestClient(transport)

	transport.On("Do", mock.Anything, "GET", "/loans/l-1", nil, mock.Anything).
		Return(`{"id":"l-1","paidInstallments":3}`, nil).Once()
	transport.On("Do", mock.Anything, "POST", "/loans/l-1/payments", nil, mock.Anything).
		Return(`{"id":"l-1","paidInstallments":4}`, nil)

	loan, err := client.Loans.RecordPaymentAndWait(context.Background(), "l-1", 5*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 4, loan.PaidInstallments)
	transport.AssertExpectations(t)
}

func TestLoans_RecordPaymentAndWait_PollsForVisibility(t *testing.T) {
	transport := new(MockTransport)
	client := newTestClient(transport)

	transport.On("Do", mock.Anything, "GET", "/loans/l-1", nil, mock.Anything).
		Return(`{"id":"l-1","paidInstallments":3}`, nil).Twice()
	transport.On("Do", mock.Anything, "POST", "/loans/l-1/payments", nil, mock.Anything).
		Return(`{"id":"l-1","paidInstallments":3}`, nil)
	transport.On("Do", mock.Anything, "GET", "/loans/l-1", nil, mock.Anything).
		Return(`{"id":"l-1","paidInstallments":4}`, nil).Once()

	loan, err := client.Loans.RecordPaymentAndWait(context.Background(), "l-1", 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 4, loan.PaidInstallments)
}

func TestLoans_RecordPaymentJob(t *testing.T) {
	transport := new(MockTransport)
	client := newTestClient(transport)

	transport.On("Do", mock.Anything, "GET", "/loans/l-1", nil, mock.Anything).
		Return(`{"id":"l-1","paidInstallments":3}`, nil).Once()
	transport.On("Do", mock.Anything, "POST", "/loans/l-1/payments", nil, mock.Anything).
		Return(`{"id":"l-1","paidInstallments":3}`, nil)
	transport.On("Do", mock.Anything, "GET", "/loans/l-1", nil, mock.Anything).
		Return(`{"id":"l-1","paidInstallments":4}`, nil).Once()

	loan, job, err := client.Loans.RecordPaymentJob(context.Background(), "l-1", 30*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 3, loan.PaidInstallments)
	assert.Equal(t, "l-1", job.ID())

	require.NoError(t, job.Wait(context.Background()))
	assert.Equal(t, MutationStatusCompleted, job.Status())
	transport.AssertExpectations(t)
}

func TestLoans_Progress(t *testing.T) {
	transport := new(MockTransport)
	client := newTestClient(transport)

	transport.On("Do", mock.Anything, "GET", "/loans/l-1", nil, mock.Anything).
		Return(`{"id":"l-1","tenureMonths":12,"paidInstallments":3,"remainingBalance":70332.72}`, nil)

	snapshot, err := client.Loans.Progress(context.Background(), "l-1")
	require.NoError(t, err)
	assert.Equal(t, 25.0, snapshot.Percent)
	assert.Equal(t, 9, snapshot.MonthsRemaining)
	assert.Equal(t, 70332.72, snapshot.RemainingBalance)
	assert.Equal(t, trackermath.StatusInProgress, snapshot.Status)
}

func TestLoans_Schedule(t *testing.T) {
	transport := new(MockTransport)
	client := newTestClient(transport)

	transport.On("Do", mock.Anything, "GET", "/loans/l-1", nil, mock.Anything).
		Return(`{"id":"l-1","totalAmount":10000,"interestRate":12,"tenureMonths":6,"startDate":"2026-01-01"}`, nil)

	schedule, err := client.Loans.Schedule(context.Background(), "l-1")
	require.NoError(t, err)
	require.Len(t, schedule, 6)
	assert.True(t, schedule[5].RemainingBalance.IsZero())
}
