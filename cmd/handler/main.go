package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/marcelsud/webhookconfig-repository/config"
	"github.com/marcelsud/webhookconfig-repository/internal/invocation"
	"github.com/marcelsud/webhookconfig-repository/internal/provider"
	"github.com/marcelsud/webhookconfig-repository/metrics"
)

/* handler - production entrypoint registered with CloudFormation
 * Each Lambda invocation carries one HandlerRequest and returns one Response
 */

func main() {
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := provider.NewLogger(cfg.LogLevel)

	// No exporter is served inside Lambda
	h := provider.NewHandler(cfg, nil, metrics.Nop{})

	lambda.Start(func(ctx context.Context, req invocation.HandlerRequest) (invocation.Response, error) {
		ctx = logger.With().
			Str("aws_account_id", req.AWSAccountID).
			Str("region", req.Region).
			Str("stack_id", req.StackID).
			Logger().
			WithContext(ctx)
		return invocation.HandleProvider(ctx, h, req), nil
	})
}
