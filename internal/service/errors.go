package service

// PolicyViolation is the error returned when a submitted command is rejected
// by a business rule. It is the only expected failure of the admission path
// and is always recoverable by resubmitting a corrected command; anything
// else coming out of Submit is an internal fault.
type PolicyViolation struct {
	Cause string
}

func (e *PolicyViolation) Error() string {
	return e.Cause
}
