package finn

import "errors"

// ErrUnexpectedStatus is returned by HTTPTransport when FINN answers with a
// status other than 200 OK.
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

// ParseError reports a document that is not well-formed XML. No partial
// record is produced alongside it.
type ParseError struct {
	Op  string // "parse listing" or "parse result set"
	Err error
}

func (e *ParseError) Error() string {
	return e.Op + ": malformed XML: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
