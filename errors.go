package dlnaheader

import "errors"

var (
	// ErrNoField is returned by the header accessors when h has no such field.
	ErrNoField = errors.New("dlnaheader: no such header field")

	// ErrMissingNPT means the value has no NPT token at all.
	ErrMissingNPT = errors.New("dlnaheader: no npt range")

	// ErrMissingUnit means the value has no byte range of the requested unit.
	ErrMissingUnit = errors.New("dlnaheader: no byte range")

	// ErrMissingAssignment means the range token is not followed by '='.
	ErrMissingAssignment = errors.New("dlnaheader: range token without '='")

	ErrInvalidStart = errors.New("dlnaheader: invalid range start")
	ErrInvalidStop  = errors.New("dlnaheader: invalid range stop")
	ErrInvalidTotal = errors.New("dlnaheader: invalid range total")

	// ErrMalformedTime is returned by ParseNPTTime, and wrapped together with
	// one of the field errors by ParseNPTRange.
	ErrMalformedTime = errors.New("dlnaheader: malformed npt time")
)
