package batch

import "fmt"

type Status string

const (
	StatusUpcoming  Status = "UPCOMING"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
)

// Batch is a training cohort. TrainerName is a copy of the faculty's name
// taken when the trainer was assigned; it is not refreshed afterwards.
type Batch struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	TrainerID   string   `json:"trainerId"`
	TrainerName string   `json:"trainerName"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Progress    int      `json:"progress"`
	Status      Status   `json:"status"`
	Curriculum  []string `json:"curriculum"`
	Timings     string   `json:"timings"`
}

// CodeFor formats the batch code for the seq-th batch started in year.
func CodeFor(year, seq int) string {
	return fmt.Sprintf("BATCH-%d-%02d", year, seq)
}
