package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/marcelsud/webhookconfig-repository/config"
	"github.com/marcelsud/webhookconfig-repository/internal/invocation"
	"github.com/marcelsud/webhookconfig-repository/internal/provider"
)

/* invoke - runs one event fixture against the Bitbucket API
 * Usage: go run cmd/invoke/main.go [event.yaml]
 * Exit codes: 0 = SUCCESS, 1 = FAILED or unreadable event
 */

func main() {
	eventFile := "event.yaml"
	if len(os.Args) > 1 {
		eventFile = os.Args[1]
	}

	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	req, err := invocation.LoadEvent(eventFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := provider.NewLogger(cfg.LogLevel).Output(os.Stderr)
	ctx := logger.WithContext(context.Background())

	h := provider.NewHandler(cfg, nil, nil)
	resp := invocation.HandleTest(ctx, h, req)

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))

	if resp.Status != "SUCCESS" {
		os.Exit(1)
	}
}
