package intern

import "github.com/prakura/hrms-backend-go/internal/pkg/validator"

type CreateInternRequest struct {
	BatchID          string  `json:"batchId" validate:"required"`
	FirstName        string  `json:"firstName" validate:"required"`
	LastName         string  `json:"lastName"`
	Email            string  `json:"email" validate:"required,email"`
	College          string  `json:"college"`
	PerformanceScore float64 `json:"performanceScore" validate:"gte=0,lte=100"`
	JoinDate         string  `json:"joinDate" validate:"required,datetime=2006-01-02"`
}

func (r *CreateInternRequest) Validate() error {
	return validator.Struct(r).Err()
}

func (r *CreateInternRequest) ToIntern() Intern {
	return Intern{
		BatchID:          r.BatchID,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		College:          r.College,
		PerformanceScore: r.PerformanceScore,
		JoinDate:         r.JoinDate,
	}
}

type UpdateInternRequest struct {
	ID               string   `json:"-"`
	BatchID          *string  `json:"batchId,omitempty"`
	FirstName        *string  `json:"firstName,omitempty"`
	LastName         *string  `json:"lastName,omitempty"`
	Email            *string  `json:"email,omitempty" validate:"omitempty,email"`
	College          *string  `json:"college,omitempty"`
	PerformanceScore *float64 `json:"performanceScore,omitempty" validate:"omitempty,gte=0,lte=100"`
	JoinDate         *string  `json:"joinDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateInternRequest) Validate() error {
	errs := validator.Struct(r)
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.BatchID != nil && validator.IsEmpty(*r.BatchID) {
		errs.Add("batchId", "batchId must not be empty")
	}
	return errs.Err()
}

func (r *UpdateInternRequest) Apply(i *Intern) {
	if r.BatchID != nil {
		i.BatchID = *r.BatchID
	}
	if r.FirstName != nil {
		i.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		i.LastName = *r.LastName
	}
	if r.Email != nil {
		i.Email = *r.Email
	}
	if r.College != nil {
		i.College = *r.College
	}
	if r.PerformanceScore != nil {
		i.PerformanceScore = *r.PerformanceScore
	}
	if r.JoinDate != nil {
		i.JoinDate = *r.JoinDate
	}
}

type InternFilter struct {
	BatchID string `json:"batchId,omitempty"`
}

func (f InternFilter) Matches(i Intern) bool {
	return f.BatchID == "" || i.BatchID == f.BatchID
}
