package batch

import "github.com/prakura/hrms-backend-go/internal/pkg/validator"

type CreateBatchRequest struct {
	Name       string   `json:"name" validate:"required"`
	TrainerID  string   `json:"trainerId"`
	StartDate  string   `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string   `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Progress   int      `json:"progress" validate:"gte=0,lte=100"`
	Status     string   `json:"status" validate:"omitempty,oneof=UPCOMING ACTIVE COMPLETED"`
	Curriculum []string `json:"curriculum"`
	Timings    string   `json:"timings"`
}

func (r *CreateBatchRequest) Validate() error {
	errs := validator.Struct(r)
	if r.EndDate != "" {
		validator.DateRange(&errs, "startDate", r.StartDate, "endDate", r.EndDate)
	}
	return errs.Err()
}

func (r *CreateBatchRequest) ToBatch() Batch {
	status := Status(r.Status)
	if status == "" {
		status = StatusUpcoming
	}
	curriculum := make([]string, len(r.Curriculum))
	copy(curriculum, r.Curriculum)
	return Batch{
		Name:       r.Name,
		TrainerID:  r.TrainerID,
		StartDate:  r.StartDate,
		EndDate:    r.EndDate,
		Progress:   r.Progress,
		Status:     status,
		Curriculum: curriculum,
		Timings:    r.Timings,
	}
}

type UpdateBatchRequest struct {
	ID         string    `json:"-"`
	Name       *string   `json:"name,omitempty"`
	TrainerID  *string   `json:"trainerId,omitempty"`
	StartDate  *string   `json:"startDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EndDate    *string   `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Progress   *int      `json:"progress,omitempty" validate:"omitempty,gte=0,lte=100"`
	Status     *string   `json:"status,omitempty" validate:"omitempty,oneof=UPCOMING ACTIVE COMPLETED"`
	Curriculum *[]string `json:"curriculum,omitempty"`
	Timings    *string   `json:"timings,omitempty"`
}

func (r *UpdateBatchRequest) Validate() error {
	errs := validator.Struct(r)
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	return errs.Err()
}

// Apply overwrites the fields present in r. The trainer name is left to the
// repository, which knows the faculty roster.
func (r *UpdateBatchRequest) Apply(b *Batch) {
	if r.Name != nil {
		b.Name = *r.Name
	}
	if r.TrainerID != nil {
		b.TrainerID = *r.TrainerID
	}
	if r.StartDate != nil {
		b.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		b.EndDate = *r.EndDate
	}
	if r.Progress != nil {
		b.Progress = *r.Progress
	}
	if r.Status != nil {
		b.Status = Status(*r.Status)
	}
	if r.Curriculum != nil {
		b.Curriculum = append([]string(nil), (*r.Curriculum)...)
	}
	if r.Timings != nil {
		b.Timings = *r.Timings
	}
}

type BatchFilter struct {
	TrainerID string `json:"trainerId,omitempty"`
	Status    string `json:"status,omitempty"`
}

func (f BatchFilter) Matches(b Batch) bool {
	if f.TrainerID != "" && b.TrainerID != f.TrainerID {
		return false
	}
	if f.Status != "" && string(b.Status) != f.Status {
		return false
	}
	return true
}
