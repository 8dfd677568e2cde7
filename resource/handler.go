package resource

import (
	"context"
	"errors"
	"fmt"

	"github.com/marcelsud/webhookconfig-repository/bitbucket"
	"github.com/marcelsud/webhookconfig-repository/metrics"
	"github.com/rs/zerolog"
)

// Options tunes behaviors that differ from the first provider release
type Options struct {
	ErrorMode ErrorMode
	ReadMode  ReadMode
}

/* Handler implements the lifecycle operations of the webhook resource
 * Uses pointer semantics as it's an API, not data
 * Every operation performs at most one remote call and keeps no state between invocations
 */
type Handler struct {
	Client   HookClient
	Options  Options
	Recorder metrics.Recorder
}

// NewHandler creates a handler, zero options fall back to Preserve and Echo
func NewHandler(client HookClient, opts Options, recorder metrics.Recorder) *Handler {
	if opts.ErrorMode == 0 {
		opts.ErrorMode = Preserve
	}
	if opts.ReadMode == 0 {
		opts.ReadMode = Echo
	}
	if recorder == nil {
		recorder = metrics.Nop{}
	}
	return &Handler{
		Client:   client,
		Options:  opts,
		Recorder: recorder,
	}
}

// Create registers the webhook and stores the remote uuid as the model ID
func (h *Handler) Create(ctx context.Context, req Request) (ProgressEvent, error) {
	model := req.DesiredResourceState

	// Id is read only, the remote API mints it
	if model.ID != "" {
		return ProgressEvent{}, newError(InvalidRequest, "Read only property [Id] cannot be provided by the user.")
	}

	hook, err := hookFor(model)
	if err != nil {
		return ProgressEvent{}, err
	}

	created, err := h.Client.CreateHook(ctx, credentialsOf(model), repositoryOf(model), hook)
	if err != nil {
		return ProgressEvent{}, h.remoteError(ctx, err)
	}
	if created.UUID == "" {
		return ProgressEvent{}, newError(InternalFailure, "remote response carries no uuid")
	}

	model.ID = created.UUID
	zerolog.Ctx(ctx).Info().Str("id", model.ID).Msg("webhook created")
	return Succeeded(&model), nil
}

// Update replaces the remote webhook, the ID must match the persisted one
func (h *Handler) Update(ctx context.Context, req Request) (ProgressEvent, error) {
	model := req.DesiredResourceState
	previousID := req.PreviousResourceState.ID

	if model.ID == "" {
		return ProgressEvent{}, notFound(req.LogicalResourceIdentifier)
	}
	if model.ID != previousID {
		zerolog.Ctx(ctx).Warn().
			Str("new_id", model.ID).
			Str("old_id", previousID).
			Msg("identifier does not match the saved resource")
		return ProgressEvent{}, newError(NotUpdatable, "Read only property [Id] cannot be updated.")
	}

	hook, err := hookFor(model)
	if err != nil {
		return ProgressEvent{}, err
	}

	if _, err := h.Client.UpdateHook(ctx, credentialsOf(model), repositoryOf(model), model.ID, hook); err != nil {
		return ProgressEvent{}, h.remoteError(ctx, err)
	}

	zerolog.Ctx(ctx).Info().Str("id", model.ID).Msg("webhook updated")
	return Succeeded(&model), nil
}

// Delete removes the remote webhook, the returned event carries no model
func (h *Handler) Delete(ctx context.Context, req Request) (ProgressEvent, error) {
	model := req.DesiredResourceState
	if model.ID == "" {
		return ProgressEvent{}, notFound(req.LogicalResourceIdentifier)
	}

	if err := h.Client.DeleteHook(ctx, credentialsOf(model), repositoryOf(model), model.ID); err != nil {
		return ProgressEvent{}, h.remoteError(ctx, err)
	}

	zerolog.Ctx(ctx).Info().Str("id", model.ID).Msg("webhook deleted")
	return Succeeded(nil), nil
}

// Read returns the model. In Fetch mode the webhook URL is refreshed from the remote hook
func (h *Handler) Read(ctx context.Context, req Request) (ProgressEvent, error) {
	model := req.DesiredResourceState
	if model.ID == "" {
		return ProgressEvent{}, notFound(req.LogicalResourceIdentifier)
	}
	if h.Options.ReadMode != Fetch {
		return Succeeded(&model), nil
	}

	remote, err := h.Client.GetHook(ctx, credentialsOf(model), repositoryOf(model), model.ID)
	if err != nil {
		return ProgressEvent{}, classified(err)
	}
	if remote.URL != "" {
		model.WebhookURL = remote.URL
	}
	return Succeeded(&model), nil
}

// List wraps the given model, the remote API is never enumerated
func (h *Handler) List(ctx context.Context, req Request) (ProgressEvent, error) {
	return SucceededList([]Model{req.DesiredResourceState}), nil
}

// remoteError wraps a failed remote call according to the configured ErrorMode
func (h *Handler) remoteError(ctx context.Context, err error) *HandlerError {
	zerolog.Ctx(ctx).Error().Err(err).Msg("remote call failed")
	if h.Options.ErrorMode == Flatten {
		return &HandlerError{Code: InternalFailure, Message: err.Error(), Err: err}
	}
	return classified(err)
}

// classified maps the remote classification onto a handler error code
func classified(err error) *HandlerError {
	code := InternalFailure
	switch {
	case errors.Is(err, bitbucket.ErrInvalidRequest):
		code = InvalidRequest
	case errors.Is(err, bitbucket.ErrAccessDenied):
		code = AccessDenied
	case errors.Is(err, bitbucket.ErrNotFound):
		code = NotFound
	}
	return &HandlerError{Code: code, Message: err.Error(), Err: err}
}

func asHandlerError(err error) *HandlerError {
	var he *HandlerError
	if errors.As(err, &he) {
		return he
	}
	return &HandlerError{Code: InternalFailure, Message: err.Error(), Err: err}
}

func notFound(logicalID string) *HandlerError {
	return newError(NotFound, "Resource of type '%s' with identifier '%s' was not found.", TypeName, logicalID)
}

// hookFor builds the fixed-shape hook and checks the target is addressable
func hookFor(model Model) (bitbucket.Hook, error) {
	if model.Workspace == "" || model.Repository == "" {
		return bitbucket.Hook{}, newError(InvalidRequest, "Workspace and Repository are required")
	}
	hook := bitbucket.NewHook(model.WebhookURL)
	if err := hook.Validate(); err != nil {
		return bitbucket.Hook{}, &HandlerError{
			Code:    InvalidRequest,
			Message: fmt.Sprintf("invalid webhook: %v", err),
			Err:     err,
		}
	}
	return hook, nil
}

func credentialsOf(model Model) bitbucket.Credentials {
	return bitbucket.Credentials{Username: model.ServiceUsername, AppPassword: model.ServiceAppPassword}
}

func repositoryOf(model Model) bitbucket.Repository {
	return bitbucket.Repository{Workspace: model.Workspace, Slug: model.Repository}
}
