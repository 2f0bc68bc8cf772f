package parse

import "errors"

// Sentinel kinds for parse errors.
var (
	// ErrInvalidMark marks entries carrying a recognized invalidity code
	// (DNF, DNS, DQ, NC, ...). Such entries never yield a numeric value
	// but may still surface elsewhere through their place.
	ErrInvalidMark = errors.New("invalid mark")

	// ErrUnparseable marks text matching no known numeric or time pattern.
	ErrUnparseable = errors.New("unparseable performance")
)
