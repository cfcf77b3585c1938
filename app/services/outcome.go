package services

import (
	"fmt"

	"assethook/app/jss"
)

// OutcomeCode classifies the result of one submission attempt. Every code is
// handled locally; none of them bubbles up as a fatal error.
type OutcomeCode int

const (
	OutcomeUpdated OutcomeCode = iota
	OutcomeNotFound
	OutcomeTypeUndetermined
	OutcomeConnectionError
	OutcomeRejected
	OutcomeConfigIncomplete
)

type Outcome struct {
	Code   OutcomeCode
	Kind   jss.DeviceKind // set when the device type was resolved
	Status int            // final HTTP status for OutcomeRejected
	Cause  error          // underlying transport error for OutcomeConnectionError
}

// Message is the operator-facing summary of the outcome.
func (o Outcome) Message() string {
	switch o.Code {
	case OutcomeUpdated:
		return fmt.Sprintf("%s updated", o.Kind)
	case OutcomeNotFound:
		return "serial number not in the local database"
	case OutcomeTypeUndetermined:
		return "could not determine device type"
	case OutcomeConnectionError:
		return "command failed - please see the logs for more information"
	case OutcomeRejected:
		return fmt.Sprintf("connection made but device not updated. %d", o.Status)
	case OutcomeConfigIncomplete:
		return "JSS settings are incomplete"
	}
	return "unknown outcome"
}
