package attendance

import "time"

const ClockLayout = "15:04:05"

type Status string

const (
	StatusPresent    Status = "PRESENT"
	StatusLate       Status = "LATE"
	StatusAbsent     Status = "ABSENT"
	StatusAutoClosed Status = "AUTO_CLOSED"
)

type Attendance struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employeeId"`
	Date         string   `json:"date"`
	CheckIn      string   `json:"checkIn"`
	CheckOut     *string  `json:"checkOut,omitempty"`
	WorkingHours *float64 `json:"workingHours,omitempty"`
	Status       Status   `json:"status"`
}

// IsOpen reports whether the record still waits for a check-out.
func (a Attendance) IsOpen() bool {
	return a.CheckOut == nil && a.CheckIn != ""
}

// Close stamps the check-out time and derives the worked hours from it.
func (a *Attendance) Close(checkOut string) {
	a.CheckOut = &checkOut
	hours := WorkingHours(a.CheckIn, checkOut)
	a.WorkingHours = &hours
}

// WorkingHours returns the hours between two clock readings rounded to two
// decimals, or 0 when either is unparsable or out is before in.
func WorkingHours(in, out string) float64 {
	start, err := time.Parse(ClockLayout, in)
	if err != nil {
		return 0
	}
	end, err := time.Parse(ClockLayout, out)
	if err != nil || end.Before(start) {
		return 0
	}
	hours := end.Sub(start).Hours()
	return float64(int(hours*100+0.5)) / 100
}
