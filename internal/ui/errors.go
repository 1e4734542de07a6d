package ui

import (
	"errors"

	"github.com/sells-group/zorah/pkg/crawlsvc"
)

// ErrorKind classifies why a submission ended in DisplayingError.
type ErrorKind string

const (
	KindInput     ErrorKind = "input"
	KindService   ErrorKind = "service"
	KindTransport ErrorKind = "transport"
)

// InputError is a submission rejected locally, before any network call.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// Classify returns the kind of a submission failure. Anything that is neither
// an input nor a service error is treated as a transport failure.
func Classify(err error) ErrorKind {
	var inErr *InputError
	if errors.As(err, &inErr) {
		return KindInput
	}
	var svcErr *crawlsvc.ServiceError
	if errors.As(err, &svcErr) {
		return KindService
	}
	return KindTransport
}
