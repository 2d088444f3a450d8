// File: reactor/driver.go
// Author: momentics <momentics@gmail.com>

package reactor

import "github.com/momentics/spinreact/api"

// Drive advances s forever. It is the external loop every dispatcher expects
// and only ends with the process.
func Drive(s api.Stepper) {
	for {
		s.Step()
	}
}

// DriveN advances s exactly n times.
func DriveN(s api.Stepper, n int) {
	for i := 0; i < n; i++ {
		s.Step()
	}
}
