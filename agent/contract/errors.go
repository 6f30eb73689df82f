package contract

import "errors"

var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrStorageWriteFailed = errors.New("storage write failed")
	ErrModelUnavailable   = errors.New("model unavailable")
	ErrAgentInvocation    = errors.New("agent invocation failed")
	ErrValidation         = errors.New("validation failed")
	ErrUnknownTool        = errors.New("unknown tool")
)

// AgentInvocationError carries whatever went wrong inside the reasoning loop.
// Error returns the cause's message unchanged so it can be shown to a customer.
type AgentInvocationError struct {
	Cause error
}

func (e *AgentInvocationError) Error() string {
	if e == nil || e.Cause == nil {
		return ErrAgentInvocation.Error()
	}
	return e.Cause.Error()
}

func (e *AgentInvocationError) Unwrap() []error {
	if e == nil || e.Cause == nil {
		return []error{ErrAgentInvocation}
	}
	return []error{ErrAgentInvocation, e.Cause}
}
