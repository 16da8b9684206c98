package services

import "errors"

// ErrMalformedStructuredOutput marks gateway output that failed the
// fence-stripped, bracket-delimited structural check. The turn fails and the
// conversation keeps the phase it had before the call.
var ErrMalformedStructuredOutput = errors.New("completion gateway returned a malformed structured payload")
