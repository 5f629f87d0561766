package main

import (
	"context"
	"fmt"
	"time"

	"github.com/AyzeysDev/budgetflo-platform-sub002/pkg/budgetflo"
	"github.com/AyzeysDev/budgetflo-platform-sub002/pkg/trackermath"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// budgetfloTools holds the BudgetFlo client and implements all tool handlers
type budgetfloTools struct {
	client *budgetflo.Client
}

// GetAccounts tool - retrieves all accounts
type GetAccountsInput struct {
	// No input parameters needed
}

type AccountEntry struct {
	ID      string  `json:"id" jsonschema:"Account ID"`
	Name    string  `json:"name" jsonschema:"Account name"`
	Type    string  `json:"type" jsonschema:"Account type (e.g. depository, credit)"`
	Balance float64 `json:"balance" jsonschema:"Current account balance"`
}

type GetAccountsOutput struct {
	Accounts []AccountEntry `json:"accounts" jsonschema:"List of all accounts"`
	Count    int            `json:"count" jsonschema:"Number of accounts"`
}

func (t *budgetfloTools) GetAccounts(ctx context.Context, req *mcp.CallToolRequest, input GetAccountsInput) (*mcp.CallToolResult, GetAccountsOutput, error) {
	accounts, err := t.client.Accounts.List(ctx)
	if err != nil {
		return nil, GetAccountsOutput{}, fmt.Errorf("failed to fetch accounts: %w", err)
	}

	var entries []AccountEntry
	for _, acc := range accounts {
		entries = append(entries, AccountEntry{
			ID:      acc.ID,
			Name:    acc.Name,
			Type:    acc.Type,
			Balance: acc.Balance,
		})
	}

	return nil, GetAccountsOutput{
		Accounts: entries,
		Count:    len(entries),
	}, nil
}

// GetBudgets tool - retrieves budget entries for a month
type GetBudgetsInput struct {
	Month string `json:"month" jsonschema:"Month in YYYY-MM format (e.g. 2026-08)"`
}

type BudgetEntry struct {
	CategoryID string  `json:"categoryId" jsonschema:"Budget category ID"`
	Budgeted   float64 `json:"budgeted" jsonschema:"Budgeted amount for this category"`
	Spent      float64 `json:"spent" jsonschema:"Actual amount spent"`
	Remaining  float64 `json:"remaining" jsonschema:"Remaining budget amount"`
	Percentage float64 `json:"percentage" jsonschema:"Percentage of budget spent"`
}

type GetBudgetsOutput struct {
	Month   string        `json:"month" jsonschema:"Month of the budget data"`
	Budgets []BudgetEntry `json:"budgets" jsonschema:"List of budget entries for each category"`
}

func (t *budgetfloTools) GetBudgets(ctx context.Context, req *mcp.CallToolRequest, input GetBudgetsInput) (*mcp.CallToolResult, GetBudgetsOutput, error) {
	month, err := time.Parse("2006-01", input.Month)
	if err != nil {
		return nil, GetBudgetsOutput{}, fmt.Errorf("invalid month format (expected YYYY-MM): %w", err)
	}

	budgets, err := t.client.Budgets.List(ctx, month, month)
	if err != nil {
		return nil, GetBudgetsOutput{}, fmt.Errorf("failed to fetch budgets: %w", err)
	}

	var entries []BudgetEntry
	for _, b := range budgets {
		entries = append(entries, BudgetEntry{
			CategoryID: b.CategoryID,
			Budgeted:   b.Amount,
			Spent:      b.Spent,
			Remaining:  b.Remaining,
			Percentage: b.PercentageComplete,
		})
	}

	return nil, GetBudgetsOutput{
		Month:   input.Month,
		Budgets: entries,
	}, nil
}

// GetGoalProgress tool - derives progress for a savings goal
type GetGoalProgressInput struct {
	GoalID string `json:"goalId" jsonschema:"ID of the savings goal"`
}

type GetGoalProgressOutput struct {
	GoalID        string  `json:"goalId" jsonschema:"ID of the savings goal"`
	Percent       float64 `json:"percent" jsonschema:"Percent of the target amount saved"`
	Remaining     float64 `json:"remaining" jsonschema:"Amount still to save"`
	DaysRemaining int     `json:"daysRemaining" jsonschema:"Days until the target date (negative when past)"`
	Status        string  `json:"status" jsonschema:"Goal status: in_progress, completed or overdue"`
}

func (t *budgetfloTools) GetGoalProgress(ctx context.Context, req *mcp.CallToolRequest, input GetGoalProgressInput) (*mcp.CallToolResult, GetGoalProgressOutput, error) {
	snapshot, err := t.client.Goals.Progress(ctx, input.GoalID)
	if err != nil {
		return nil, GetGoalProgressOutput{}, fmt.Errorf("failed to fetch goal progress: %w", err)
	}

	return nil, GetGoalProgressOutput{
		GoalID:        input.GoalID,
		Percent:       snapshot.Percent,
		Remaining:     snapshot.Remaining,
		DaysRemaining: snapshot.DaysRemaining,
		Status:        string(snapshot.Status),
	}, nil
}

// CalcEMI tool - computes a loan installment locally
type CalcEMIInput struct {
	Principal    float64 `json:"principal" jsonschema:"Loan principal amount"`
	AnnualRate   float64 `json:"annualRate" jsonschema:"Annual interest rate in percent (e.g. 10 for 10%)"`
	TenureMonths int     `json:"tenureMonths" jsonschema:"Loan tenure in months"`
}

type CalcEMIOutput struct {
	EMI float64 `json:"emi" jsonschema:"Fixed monthly installment, rounded to cents"`
}

func (t *budgetfloTools) CalcEMI(ctx context.Context, req *mcp.CallToolRequest, input CalcEMIInput) (*mcp.CallToolResult, CalcEMIOutput, error) {
	emi, err := trackermath.ComputeEMI(input.Principal, input.AnnualRate, input.TenureMonths)
	if err != nil {
		return nil, CalcEMIOutput{}, err
	}

	return nil, CalcEMIOutput{EMI: emi}, nil
}

// SuggestContribution tool - computes the monthly saving pace locally
type SuggestContributionInput struct {
	TargetAmount float64 `json:"targetAmount" jsonschema:"Amount still to save"`
	TargetDate   string  `json:"targetDate" jsonschema:"Target date in YYYY-MM-DD format"`
}

type SuggestContributionOutput struct {
	SuggestedContribution *float64 `json:"suggestedContribution" jsonschema:"Monthly amount needed, or null when no contribution is needed"`
}

func (t *budgetfloTools) SuggestContribution(ctx context.Context, req *mcp.CallToolRequest, input SuggestContributionInput) (*mcp.CallToolResult, SuggestContributionOutput, error) {
	targetDate, err := time.Parse("2006-01-02", input.TargetDate)
	if err != nil {
		return nil, SuggestContributionOutput{}, fmt.Errorf("invalid targetDate format (expected YYYY-MM-DD): %w", err)
	}

	suggestion := trackermath.SuggestedContribution(input.TargetAmount, targetDate, time.Now())
	return nil, SuggestContributionOutput{SuggestedContribution: suggestion}, nil
}
