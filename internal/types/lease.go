package types

// LeaseStatus is the outcome of a bounded DHCP lease acquisition.
type LeaseStatus int

const (
	// LeaseAcquired means the client finished within the wait window.
	LeaseAcquired LeaseStatus = iota
	// LeaseTimedOut means the wait window elapsed and the client was terminated.
	LeaseTimedOut
	// LeaseFailed means the client could not be run at all.
	LeaseFailed
)

func (s LeaseStatus) String() string {
	switch s {
	case LeaseAcquired:
		return "acquired"
	case LeaseTimedOut:
		return "timed_out"
	case LeaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// LeaseResult is returned by DHCP client backends.
type LeaseResult struct {
	Status LeaseStatus
	// ExitCode of the client process, 0 for in-process backends.
	ExitCode int
	Err      error
}
