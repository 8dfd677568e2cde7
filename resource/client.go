package resource

import (
	"context"

	"github.com/marcelsud/webhookconfig-repository/bitbucket"
)

/* Small, focused interfaces following "The Go Way"
 * HookClient is what the handler needs from the remote API
 * *bitbucket.Client satisfies it
 */
type HookClient interface {
	CreateHook(ctx context.Context, creds bitbucket.Credentials, repo bitbucket.Repository, hook bitbucket.Hook) (bitbucket.HookResponse, error)
	UpdateHook(ctx context.Context, creds bitbucket.Credentials, repo bitbucket.Repository, id string, hook bitbucket.Hook) (bitbucket.HookResponse, error)
	DeleteHook(ctx context.Context, creds bitbucket.Credentials, repo bitbucket.Repository, id string) error
	GetHook(ctx context.Context, creds bitbucket.Credentials, repo bitbucket.Repository, id string) (bitbucket.HookResponse, error)
}

// Invoker runs one lifecycle action. Hosting adapters depend on it
type Invoker interface {
	Invoke(ctx context.Context, action Action, req Request) ProgressEvent
}
