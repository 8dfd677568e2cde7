package invocation

import (
	"context"

	"github.com/google/uuid"
	"github.com/marcelsud/webhookconfig-repository/resource"
)

/* Wire contracts of the orchestration framework
 * Kept apart from the resource package so the handler never sees transport details
 */

// HandlerRequest is the payload CloudFormation sends to a registered provider
type HandlerRequest struct {
	AWSAccountID        string         `json:"awsAccountId"`
	BearerToken         string         `json:"bearerToken"`
	Region              string         `json:"region"`
	Action              string         `json:"action"`
	ResponseEndpoint    string         `json:"responseEndpoint"`
	ResourceType        string         `json:"resourceType"`
	ResourceTypeVersion string         `json:"resourceTypeVersion"`
	StackID             string         `json:"stackId"`
	CallbackContext     map[string]any `json:"callbackContext,omitempty"`
	RequestData         RequestData    `json:"requestData"`
}

// RequestData carries the resource states of a HandlerRequest
type RequestData struct {
	LogicalResourceID          string         `json:"logicalResourceId"`
	ResourceProperties         resource.Model `json:"resourceProperties"`
	PreviousResourceProperties resource.Model `json:"previousResourceProperties"`
	ProviderLogGroupName       string         `json:"providerLogGroupName,omitempty"`
}

// TestRequest is the payload of the local test entrypoint and of event fixtures
type TestRequest struct {
	Action          string          `json:"action"`
	Request         TestRequestBody `json:"request"`
	CallbackContext map[string]any  `json:"callbackContext,omitempty"`
}

// TestRequestBody mirrors the request section of a TestRequest
type TestRequestBody struct {
	ClientRequestToken        string         `json:"clientRequestToken"`
	DesiredResourceState      resource.Model `json:"desiredResourceState"`
	PreviousResourceState     resource.Model `json:"previousResourceState"`
	LogicalResourceIdentifier string         `json:"logicalResourceIdentifier"`
}

// Response is the progress event as serialized back to the framework
type Response struct {
	Status               string           `json:"status"`
	ErrorCode            string           `json:"errorCode,omitempty"`
	Message              string           `json:"message,omitempty"`
	CallbackContext      map[string]any   `json:"callbackContext,omitempty"`
	CallbackDelaySeconds int              `json:"callbackDelaySeconds,omitempty"`
	ResourceModel        *resource.Model  `json:"resourceModel,omitempty"`
	ResourceModels       []resource.Model `json:"resourceModels,omitempty"`
	BearerToken          string           `json:"bearerToken,omitempty"`
}

// ToRequest converts the provider payload, the bearer token serves as request token
func (r HandlerRequest) ToRequest() resource.Request {
	return resource.Request{
		DesiredResourceState:      r.RequestData.ResourceProperties,
		PreviousResourceState:     r.RequestData.PreviousResourceProperties,
		LogicalResourceIdentifier: r.RequestData.LogicalResourceID,
		ClientRequestToken:        r.BearerToken,
		CallbackContext:           r.CallbackContext,
	}
}

// ToRequest converts the test payload, a missing request token is generated
func (r TestRequest) ToRequest() resource.Request {
	token := r.Request.ClientRequestToken
	if token == "" {
		token = uuid.New().String()
	}
	return resource.Request{
		DesiredResourceState:      r.Request.DesiredResourceState,
		PreviousResourceState:     r.Request.PreviousResourceState,
		LogicalResourceIdentifier: r.Request.LogicalResourceIdentifier,
		ClientRequestToken:        token,
		CallbackContext:           r.CallbackContext,
	}
}

// NewResponse serializes a progress event
func NewResponse(event resource.ProgressEvent) Response {
	return Response{
		Status:               event.Status.String(),
		ErrorCode:            event.ErrorCode.String(),
		Message:              event.Message,
		CallbackContext:      event.CallbackContext,
		CallbackDelaySeconds: event.CallbackDelaySeconds,
		ResourceModel:        event.ResourceModel,
		ResourceModels:       event.ResourceModels,
	}
}

// HandleProvider runs a provider payload against inv
func HandleProvider(ctx context.Context, inv resource.Invoker, req HandlerRequest) Response {
	resp := NewResponse(inv.Invoke(ctx, resource.NewAction(req.Action), req.ToRequest()))
	resp.BearerToken = req.BearerToken
	return resp
}

// HandleTest runs a test payload against inv
func HandleTest(ctx context.Context, inv resource.Invoker, req TestRequest) Response {
	return NewResponse(inv.Invoke(ctx, resource.NewAction(req.Action), req.ToRequest()))
}
