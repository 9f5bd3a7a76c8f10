package intern

type Intern struct {
	ID               string  `json:"id"`
	BatchID          string  `json:"batchId"`
	FirstName        string  `json:"firstName"`
	LastName         string  `json:"lastName"`
	Email            string  `json:"email"`
	College          string  `json:"college"`
	PerformanceScore float64 `json:"performanceScore"`
	JoinDate         string  `json:"joinDate"`
}
