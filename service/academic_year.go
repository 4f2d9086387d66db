package service

import (
	"fmt"
	"time"
)

// AcademicYear returns the "2026-27" style academic year a submission made
// at the given time belongs to. The year rolls over in June.
func AcademicYear(now time.Time) string {
	y := now.Year()
	if now.Month() < time.June {
		y--
	}
	return fmt.Sprintf("%d-%02d", y, (y+1)%100)
}
