package errs

import "errors"

var (
	SessionNotFound = errors.New("session not found")
	ProblemNotFound = errors.New("problem not found")
	RunInFlight     = errors.New("a run is already in progress for this session")
	CaseIndexRange  = errors.New("test case index out of range")
	VarIndexRange   = errors.New("variable index out of range")
)
