package budgetflo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSavings_List(t *testing.T) {
	transport := new(MockTransport)
	client := newTestClient(transport)

	transport.On("Do", mock.Anything, "GET", "/savings", nil, mock.Anything).
		Return(`{"trackers":[{"id":"s-1","name":"Rainy Day","currentBalance":2500,"overallTarget":10000}]}`, nil)

	trackers, err := client.Savings.List(context.Background())
	require.NoError(t, err)
	require.Len(t, trackers, 1)
	require.NotNil(t, trackers[0].OverallTarget)
	assert.Equal(t, 10000.0, *trackers[0].OverallTarget)
}

func TestSavings_Deposit(t *testing.T) {
	transport := new(MockTransport)
	client := newTestClient(transport)

	transport.On("Do", mock.Anything, "POST", "/savings/s-1/deposits",
		map[string]interface{}{"amount": 300.0}, mock.Anything).
		Return(`{"id":"s-1","currentBalance":2800}`, nil)

	tracker, err := client.Savings.Deposit(context.Background(), "s-1", 300)
	require.NoError(t, err)
	require.NotNil(t, tracker.CurrentBalance)
	assert.Equal(t, 2800.0, *tracker.CurrentBalance)
	transport.AssertExpectations(t)
}

func TestSavings_Deposit_RejectsNonPositiveAmount(t *testing.T) {
	client := newTestClient(new(MockTransport))

	_, err := client.Savings.Deposit(context.Background(), "s-1", -1)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount", verr.Field)
}

func TestSavings_Progress(t *testing.T) {
	transport := new(MockTransport)
	client := newTestClient(transport)

	transport.On("Do", mock.Anything, "GET", "/savings/s-1", nil, mock.Anything).
		Return(`{"id":"s-1","currentBalance":2500,"overallTarget":10000}`, nil)

	snapshot, err := client.Savings.Progress(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, 25.0, snapshot.Percent)
	assert.Equal(t, 7500.0, snapshot.Remaining)
}

func TestSavings_Progress_NoTarget(t *testing.T) {
	transport := new(MockTransport)
	client := newTestClient(transport)

	transport.On("Do", mock.Anything, "GET", "/savings/s-1", nil, mock.Anything).
		Return(`{"id":"s-1","currentBalance":2500}`, nil)

	snapshot, err := client.Savings.Progress(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, 0.0, snapshot.Percent)
}
