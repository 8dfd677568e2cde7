package resource

/* Request is one lifecycle invocation as handed over by the hosting adapter
 * PreviousResourceState is only populated on Update
 */
type Request struct {
	DesiredResourceState      Model
	PreviousResourceState     Model
	LogicalResourceIdentifier string
	ClientRequestToken        string
	CallbackContext           map[string]any
}

// ProgressEvent is the normalized outcome of an invocation
type ProgressEvent struct {
	Status               OperationStatus
	ErrorCode            ErrorCode
	Message              string
	CallbackContext      map[string]any
	CallbackDelaySeconds int
	ResourceModel        *Model
	ResourceModels       []Model
}

// Succeeded reports the operation as complete with model, which may be nil
func Succeeded(model *Model) ProgressEvent {
	return ProgressEvent{Status: Success, ResourceModel: model}
}

// SucceededList reports a completed List with models
func SucceededList(models []Model) ProgressEvent {
	return ProgressEvent{Status: Success, ResourceModels: models}
}

// FailedWith converts err into a failed event, untyped errors become InternalFailure
func FailedWith(err error) ProgressEvent {
	he := asHandlerError(err)
	return ProgressEvent{Status: Failed, ErrorCode: he.Code, Message: he.Message}
}
