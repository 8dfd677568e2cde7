package resource_test

import (
	"testing"

	"github.com/marcelsud/webhookconfig-repository/resource"
	"github.com/stretchr/testify/assert"
)

func TestAction(t *testing.T) {
	for _, a := range []resource.Action{resource.Create, resource.Read, resource.Update, resource.Delete, resource.List} {
		assert.Equal(t, a, resource.NewAction(a.String()))
		assert.NoError(t, a.Validate())
	}

	assert.Error(t, resource.NewAction("create").Validate())
	assert.Equal(t, "UNKNOWN", resource.Action(99).String())
}

func TestOperationStatus(t *testing.T) {
	assert.Equal(t, "SUCCESS", resource.Success.String())
	assert.Equal(t, "FAILED", resource.Failed.String())
	assert.Equal(t, "IN_PROGRESS", resource.InProgress.String())

	assert.True(t, resource.Success.IsFinal())
	assert.True(t, resource.Failed.IsFinal())
	assert.False(t, resource.InProgress.IsFinal())
	assert.Error(t, resource.OperationStatus(0).Validate())
}

func TestErrorCode_String(t *testing.T) {
	assert.Equal(t, "InvalidRequest", resource.InvalidRequest.String())
	assert.Equal(t, "AccessDenied", resource.AccessDenied.String())
	assert.Equal(t, "NotFound", resource.NotFound.String())
	assert.Equal(t, "NotUpdatable", resource.NotUpdatable.String())
	assert.Equal(t, "InternalFailure", resource.InternalFailure.String())
	assert.Empty(t, resource.ErrorCode(0).String())
}

func TestModes(t *testing.T) {
	assert.Equal(t, resource.Preserve, resource.NewErrorMode(""))
	assert.Equal(t, resource.Flatten, resource.NewErrorMode("flatten"))
	assert.Error(t, resource.NewErrorMode("loose").Validate())

	assert.Equal(t, resource.Echo, resource.NewReadMode(""))
	assert.Equal(t, resource.Fetch, resource.NewReadMode("fetch"))
	assert.Error(t, resource.NewReadMode("poll").Validate())
}
