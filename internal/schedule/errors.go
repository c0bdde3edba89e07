package schedule

import "errors"

var (
	// ErrNoRecordsFound means no meeting, TBA or otherwise, was recognised
	// anywhere in the input.
	ErrNoRecordsFound = errors.New("no schedule records found")

	// ErrRecordLimitExceeded means the input has more course headers, or a
	// course has more meetings, than the configured ceilings allow.
	ErrRecordLimitExceeded = errors.New("record limit exceeded")
)
