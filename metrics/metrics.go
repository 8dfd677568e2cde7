package metrics

import (
	"context"
	"time"
)

// Recorder receives measurements from the resource handler and the Bitbucket client.
type Recorder interface {
	// RecordInvocation reports one finished lifecycle invocation
	RecordInvocation(ctx context.Context, action, status, errorCode string, elapsed time.Duration)

	// RecordRequest reports one outbound call to the remote API
	// statusCode is 0 when no response was received
	RecordRequest(ctx context.Context, method string, statusCode int, elapsed time.Duration)
}

// Nop discards every measurement. Used where no exporter is served, e.g. inside Lambda.
type Nop struct{}

func (Nop) RecordInvocation(context.Context, string, string, string, time.Duration) {}

func (Nop) RecordRequest(context.Context, string, int, time.Duration) {}
