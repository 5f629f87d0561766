package main

import (
	"testing"

	"github.com/AyzeysDev/budgetflo-platform-sub002/pkg/budgetflo"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TestServerInitialization verifies that the server can initialize without panicking
// This catches jsonschema validation errors and other startup issues
func TestServerInitialization(t *testing.T) {
	client := &budgetflo.Client{}

	impl := &mcp.Implementation{
		Name:    "budgetflo",
		Version: "1.0.0",
	}

	server := mcp.NewServer(impl, nil)

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Server initialization panicked: %v", r)
		}
	}()

	registerTools(server, client)
}
