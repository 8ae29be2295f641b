package entities

// Status is the tri-state integer returned by the find operation across the
// foreign boundary. Negative values report invalid arguments; no exception
// or panic ever crosses into caller code.
type Status int32

const (
	// StatusNoMatch means the search completed without finding a match.
	StatusNoMatch Status = 0

	// StatusMatch means a match was found and both output slots were written.
	StatusMatch Status = 1

	// StatusError means a required argument was invalid. Output slots are
	// left untouched.
	StatusError Status = -1
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusNoMatch:
		return "no_match"
	case StatusMatch:
		return "match"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}
