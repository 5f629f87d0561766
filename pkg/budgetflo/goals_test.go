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

func TestGoals_List(t *testing.T) {
	transport := new(MockTransport)
	client := newTestClient(transport)

	transport.On("Do", mock.Anything, "GET", "/goals", nil, mock.Anything).
		Return(`{"goals":[{"id":"g-1","name":"Emergency Fund","targetAmount":5000,"currentAmount":1500,"targetDate":"2026-12-31"}]}`, nil)

	goals, err := client.Goals.List(context.Background())
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, 5000.0, goals[0].TargetAmount)
	assert.Equal(t, 2026, goals[0].TargetDate.Year())
}

func TestGoals_Create_Validation(t *testing.T) {
	client := newTestClient(new(MockTransport))

	_, err := client.Goals.Create(context.Background(), &CreateGoalParams{Name: "Trip", TargetAmount: 0})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "targetAmount", verr.Field)
}

func TestGoals_Contribute(t *testing.T) {
	transport := new(MockTransport)
	client := newTestClient(transport)

	transport.On("Do", mock.Anything, "POST", "/goals/g-1/contributions",
		map[string]interface{}{"amount": 200.0, "accountId": "acc-1"}, mock.Anything).
		Return(`{"id":"c-1","goalId":"g-1","accountId":"acc-1","amount":200}`, nil)

	contribution, err := client.Goals.Contribute(context.Background(), "g-1", &ContributeParams{
		AccountID: "acc-1",
		Amount:    200,
	})
	require.NoError(t, err)
	assert.Equal(t, 200.0, contribution.Amount)
	transport.AssertExpectations(t)
}

func TestGoals_Withdraw_RejectsNonPositiveAmount(t *testing.T) {
	client := newTestClient(new(MockTransport))

	_, err := client.Goals.Withdraw(context.Background(), "g-1", &ContributeParams{Amount: 0})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount", verr.Field)
}

func TestGoals_Progress(t *testing.T) {
	transport := new(MockTransport)
	client := newTestClient(transport)

	future := time.Now().AddDate(0, 6, 0).Format("2006-01-02")
	transport.On("Do", mock.Anything, "GET", "/goals/g-1", nil, mock.Anything).
		Return(`{"id":"g-1","targetAmount":5000,"currentAmount":1500,"targetDate":"`+future+`"}`, nil)

	snapshot, err := client.Goals.Progress(context.Background(), "g-1")
	require.NoError(t, err)
	assert.Equal(t, 30.0, snapshot.Percent)
	assert.Equal(t, 3500.0, snapshot.Remaining)
	assert.Equal(t, trackermath.StatusInProgress, snapshot.Status)
}

func TestGoals_SuggestContribution(t *testing.T) {
	transport := new(MockTransport)
	client := newTestClient(transport)

	// About a year out with 1200 still to save
	future := time.Now().AddDate(0, 0, 365).Format("2006-01-02")
	transport.On("Do", mock.Anything, "GET", "/goals/g-1", nil, mock.Anything).
		Return(`{"id":"g-1","targetAmount":1700,"currentAmount":500,"targetDate":"`+future+`"}`, nil)

	suggestion, err := client.Goals.SuggestContribution(context.Background(), "g-1")
	require.NoError(t, err)
	require.NotNil(t, suggestion)
	assert.Equal(t, 100.0, *suggestion)
}

func TestGoals_SuggestContribution_NilWhenTargetMet(t *testing.T) {
	transport := new(MockTransport)
	client := newTestClient(transport)

	future := time.Now().AddDate(0, 6, 0).Format("2006-01-02")
	transport.On("Do", mock.Anything, "GET", "/goals/g-1", nil, mock.Anything).
		Return(`{"id":"g-1","targetAmount":1000,"currentAmount":1000,"targetDate":"`+future+`"}`, nil)

	suggestion, err := client.Goals.SuggestContribution(context.Background(), "g-1")
	require.NoError(t, err)
	assert.Nil(t, suggestion)
}
