package resource

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

type operation func(h *Handler, ctx context.Context, req Request) (ProgressEvent, error)

// operations is the dispatch table from lifecycle verb to handler method
var operations = map[Action]operation{
	Create: (*Handler).Create,
	Read:   (*Handler).Read,
	Update: (*Handler).Update,
	Delete: (*Handler).Delete,
	List:   (*Handler).List,
}

// Invoke runs action and converts any error into a Failed event
func (h *Handler) Invoke(ctx context.Context, action Action, req Request) ProgressEvent {
	start := time.Now()
	logger := zerolog.Ctx(ctx).With().
		Str("type_name", TypeName).
		Str("action", action.String()).
		Str("logical_resource_id", req.LogicalResourceIdentifier).
		Str("client_request_token", req.ClientRequestToken).
		Logger()
	ctx = logger.WithContext(ctx)

	event := h.dispatch(ctx, action, req)
	if err := event.Status.Validate(); err != nil {
		event = FailedWith(newError(InternalFailure, "operation returned %v", err))
	}

	h.Recorder.RecordInvocation(ctx, action.String(), event.Status.String(), event.ErrorCode.String(), time.Since(start))
	switch {
	case event.Status == Failed:
		logger.Warn().
			Str("error_code", event.ErrorCode.String()).
			Str("message", event.Message).
			Msg("invocation failed")
	case !event.Status.IsFinal():
		logger.Info().
			Int("callback_delay_seconds", event.CallbackDelaySeconds).
			Msg("invocation in progress")
	default:
		logger.Info().Str("status", event.Status.String()).Msg("invocation finished")
	}
	return event
}

func (h *Handler) dispatch(ctx context.Context, action Action, req Request) ProgressEvent {
	if err := action.Validate(); err != nil {
		return FailedWith(newError(InvalidRequest, "unsupported action: %v", err))
	}
	op, ok := operations[action]
	if !ok {
		return FailedWith(newError(InvalidRequest, "unsupported action: %s", action))
	}

	event, err := op(h, ctx, req)
	if err != nil {
		return FailedWith(err)
	}
	return event
}
