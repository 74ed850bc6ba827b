package util

import "log"

// Cell is a board coordinate: X is the column and Y the row.
type Cell struct {
	X, Y int
}

// Check panics through the logger when err is non-nil.
// Only for setup steps that have no sensible recovery.
func Check(err error) {
	if err != nil {
		log.Panic(err.Error())
	}
}
