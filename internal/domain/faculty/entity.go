package faculty

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// Toggle flips between ACTIVE and INACTIVE.
func (s Status) Toggle() Status {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

// Faculty is a trainer profile. ActiveBatches mirrors batch.Batch.TrainerID
// but is maintained independently of it.
type Faculty struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Designation   string   `json:"designation"`
	Specialty     []string `json:"specialty"`
	Experience    string   `json:"experience"`
	Email         string   `json:"email"`
	Avatar        string   `json:"avatar,omitempty"`
	Status        Status   `json:"status"`
	ActiveBatches []string `json:"activeBatches"`
}
