package engine

// Status of an execution.
type Status int

const (
	STATUS_INITIALIZED = Status(iota) // Constructed, never run.
	STATUS_RUNNING                    // Stepping.
	STATUS_WAITING                    // Blocked on an empty input queue.
	STATUS_STOPPED                    // Halted on a fatal condition.
	STATUS_COMPLETE                   // Reached the end of the program.
)

var _status_names = [...]string{
	STATUS_INITIALIZED: "initialized",
	STATUS_RUNNING:     "running",
	STATUS_WAITING:     "waiting",
	STATUS_STOPPED:     "stopped",
	STATUS_COMPLETE:    "complete",
}

func (st Status) String() string {
	if st < 0 || int(st) >= len(_status_names) {
		return f("status(%d)", int(st))
	}
	return _status_names[st]
}

// ParseStatus returns the Status named by text.
func ParseStatus(text string) (st Status, err error) {
	for n, name := range _status_names {
		if name == text {
			st = Status(n)
			return
		}
	}

	err = ErrStatusUnknown
	return
}
