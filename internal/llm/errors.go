package llm

import "fmt"

// ServiceError represents a failed, timed-out, or empty response from the
// external model service. It is terminal for the analysis run: no insights
// means no report.
type ServiceError struct {
	Provider Provider
	Message  string
	Cause    error
}

func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s service error: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s service error: %s", e.Provider, e.Message)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}
