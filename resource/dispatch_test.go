package resource_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/marcelsud/webhookconfig-repository/bitbucket"
	"github.com/marcelsud/webhookconfig-repository/resource"
	"github.com/marcelsud/webhookconfig-repository/resource/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type invocation struct {
	action, status, errorCode string
}

type fakeRecorder struct {
	mu          sync.Mutex
	invocations []invocation
}

func (f *fakeRecorder) RecordInvocation(_ context.Context, action, status, errorCode string, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invocations = append(f.invocations, invocation{action: action, status: status, errorCode: errorCode})
}

func (f *fakeRecorder) RecordRequest(context.Context, string, int, time.Duration) {}

func TestInvoke(t *testing.T) {
	ctx := context.Background()

	t.Run("create success", func(t *testing.T) {
		client := mocks.NewHookClient(t)
		recorder := &fakeRecorder{}
		h := resource.NewHandler(client, resource.Options{}, recorder)

		client.On("CreateHook", mock.Anything, creds, repo, mock.AnythingOfType("bitbucket.Hook")).
			Return(bitbucket.HookResponse{UUID: "{abc-123}"}, nil)

		event := h.Invoke(ctx, resource.Create, resource.Request{DesiredResourceState: desired("")})

		assert.Equal(t, resource.Success, event.Status)
		assert.Equal(t, "{abc-123}", event.ResourceModel.ID)
		require.Len(t, recorder.invocations, 1)
		assert.Equal(t, invocation{action: "CREATE", status: "SUCCESS"}, recorder.invocations[0])
	})

	t.Run("failure converted to failed event", func(t *testing.T) {
		client := mocks.NewHookClient(t)
		recorder := &fakeRecorder{}
		h := resource.NewHandler(client, resource.Options{}, recorder)

		event := h.Invoke(ctx, resource.Update, resource.Request{
			DesiredResourceState:  desired("A"),
			PreviousResourceState: desired("B"),
		})

		assert.Equal(t, resource.Failed, event.Status)
		assert.Equal(t, resource.NotUpdatable, event.ErrorCode)
		assert.Equal(t, "Read only property [Id] cannot be updated.", event.Message)
		assert.Equal(t, invocation{action: "UPDATE", status: "FAILED", errorCode: "NotUpdatable"}, recorder.invocations[0])
	})

	t.Run("every action is dispatched", func(t *testing.T) {
		client := mocks.NewHookClient(t)
		h := resource.NewHandler(client, resource.Options{}, nil)

		client.On("DeleteHook", mock.Anything, creds, repo, "{abc-123}").Return(nil)

		assert.Equal(t, resource.Success, h.Invoke(ctx, resource.Read, resource.Request{DesiredResourceState: desired("{abc-123}")}).Status)
		assert.Equal(t, resource.Success, h.Invoke(ctx, resource.List, resource.Request{DesiredResourceState: desired("{abc-123}")}).Status)
		assert.Equal(t, resource.Success, h.Invoke(ctx, resource.Delete, resource.Request{DesiredResourceState: desired("{abc-123}")}).Status)
	})

	t.Run("unknown action", func(t *testing.T) {
		client := mocks.NewHookClient(t)
		h := resource.NewHandler(client, resource.Options{}, nil)

		event := h.Invoke(ctx, resource.NewAction("PATCH"), resource.Request{})

		assert.Equal(t, resource.Failed, event.Status)
		assert.Equal(t, resource.InvalidRequest, event.ErrorCode)
		assert.Contains(t, event.Message, "unsupported action")
	})
}

func TestFailedWith_UntypedError(t *testing.T) {
	event := resource.FailedWith(assert.AnError)

	assert.Equal(t, resource.Failed, event.Status)
	assert.Equal(t, resource.InternalFailure, event.ErrorCode)
	assert.Equal(t, assert.AnError.Error(), event.Message)
}
