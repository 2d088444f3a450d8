// File: api/reactor.go
// Author: momentics <momentics@gmail.com>
//
// Defines the externally driven step contract shared by all dispatchers.

package api

// Stepper is advanced by an external driver loop. One Step performs one
// detect (and, depending on the dispatcher, react) cycle and may block for as
// long as the writer slot stays unchanged.
type Stepper interface {
	Step()
}
