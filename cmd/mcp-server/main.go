package main

import (
	"context"
	"log"
	"os"

	"github.com/AyzeysDev/budgetflo-platform-sub002/pkg/budgetflo"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	token := os.Getenv("BUDGETFLO_TOKEN")
	if token == "" {
		log.Fatal("BUDGETFLO_TOKEN environment variable is required")
	}

	opts := &budgetflo.ClientOptions{Token: token}
	if baseURL := os.Getenv("BUDGETFLO_API_URL"); baseURL != "" {
		opts.BaseURL = baseURL
	}

	client, err := budgetflo.NewClient(opts)
	if err != nil {
		log.Fatalf("failed to initialize BudgetFlo client: %v", err)
	}

	impl := &mcp.Implementation{
		Name:    "budgetflo",
		Version: "1.0.0",
	}

	server := mcp.NewServer(impl, nil)

	registerTools(server, client)

	// Stdio transport for desktop assistant integration
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func registerTools(server *mcp.Server, client *budgetflo.Client) {
	tools := &budgetfloTools{client: client}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_accounts",
		Description: "Get all accounts with their current balances and types.",
	}, tools.GetAccounts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_budgets",
		Description: "Get budget entries for a month, including amounts budgeted, spent and remaining per category.",
	}, tools.GetBudgets)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_goal_progress",
		Description: "Get progress toward a savings goal: percent complete, amount remaining, days until the target date and status.",
	}, tools.GetGoalProgress)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "calc_emi",
		Description: "Calculate the fixed monthly installment (EMI) for a loan given principal, annual interest rate percent and tenure in months.",
	}, tools.CalcEMI)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "suggest_contribution",
		Description: "Suggest the monthly contribution needed to reach a savings target by a given date.",
	}, tools.SuggestContribution)
}
