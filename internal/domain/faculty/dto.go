package faculty

import (
	"strings"

	"github.com/prakura/hrms-backend-go/internal/pkg/validator"
)

type CreateFacultyRequest struct {
	Name          string   `json:"name" validate:"required"`
	Designation   string   `json:"designation"`
	Specialty     []string `json:"specialty"`
	Experience    string   `json:"experience"`
	Email         string   `json:"email" validate:"required,email"`
	Avatar        string   `json:"avatar"`
	Status        string   `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	ActiveBatches []string `json:"activeBatches"`
}

func (r *CreateFacultyRequest) Validate() error {
	return validator.Struct(r).Err()
}

func (r *CreateFacultyRequest) ToFaculty() Faculty {
	status := Status(r.Status)
	if status == "" {
		status = StatusActive
	}
	return Faculty{
		Name:          r.Name,
		Designation:   r.Designation,
		Specialty:     NormalizeSpecialty(r.Specialty),
		Experience:    r.Experience,
		Email:         r.Email,
		Avatar:        r.Avatar,
		Status:        status,
		ActiveBatches: append([]string{}, r.ActiveBatches...),
	}
}

// NormalizeSpecialty trims entries and drops blanks and duplicates, keeping order.
func NormalizeSpecialty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || validator.IsInSlice(s, out) {
			continue
		}
		out = append(out, s)
	}
	return out
}

type UpdateFacultyRequest struct {
	ID            string    `json:"-"`
	Name          *string   `json:"name,omitempty"`
	Designation   *string   `json:"designation,omitempty"`
	Specialty     *[]string `json:"specialty,omitempty"`
	Experience    *string   `json:"experience,omitempty"`
	Email         *string   `json:"email,omitempty" validate:"omitempty,email"`
	Avatar        *string   `json:"avatar,omitempty"`
	Status        *string   `json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
	ActiveBatches *[]string `json:"activeBatches,omitempty"`
}

func (r *UpdateFacultyRequest) Validate() error {
	errs := validator.Struct(r)
	if validator.IsEmpty(r.ID) {
		errs.Add("id", "id is required")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	return errs.Err()
}

func (r *UpdateFacultyRequest) Apply(f *Faculty) {
	if r.Name != nil {
		f.Name = *r.Name
	}
	if r.Designation != nil {
		f.Designation = *r.Designation
	}
	if r.Specialty != nil {
		f.Specialty = NormalizeSpecialty(*r.Specialty)
	}
	if r.Experience != nil {
		f.Experience = *r.Experience
	}
	if r.Email != nil {
		f.Email = *r.Email
	}
	if r.Avatar != nil {
		f.Avatar = *r.Avatar
	}
	if r.Status != nil {
		f.Status = Status(*r.Status)
	}
	if r.ActiveBatches != nil {
		f.ActiveBatches = append([]string{}, (*r.ActiveBatches)...)
	}
}

// FacultyFilter matches on status and a case-insensitive search over name and specialty.
type FacultyFilter struct {
	Status string `json:"status,omitempty"`
	Search string `json:"search,omitempty"`
}

func (f FacultyFilter) Matches(fac Faculty) bool {
	if f.Status != "" && string(fac.Status) != f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}
	term := strings.ToLower(f.Search)
	if strings.Contains(strings.ToLower(fac.Name), term) {
		return true
	}
	for _, s := range fac.Specialty {
		if strings.Contains(strings.ToLower(s), term) {
			return true
		}
	}
	return false
}
