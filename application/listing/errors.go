package listing

import "errors"

// ErrNoHeader matches any *NoHeaderError via errors.Is.
var ErrNoHeader = errors.New("no header divider found in query output")

// NoHeaderError means the query output carried no dash divider line, so no
// table could be located. Lines holds how many lines were scanned.
type NoHeaderError struct {
	Lines int
}

func (e *NoHeaderError) Error() string {
	return ErrNoHeader.Error()
}

func (e *NoHeaderError) Is(target error) bool {
	return target == ErrNoHeader
}
