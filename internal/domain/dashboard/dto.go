package dashboard

// Stats is the headline row of the dashboard.
type Stats struct {
	TotalEmployees  int    `json:"totalEmployees"`
	PresentToday    int    `json:"presentToday"`
	LateToday       int    `json:"lateToday"`
	OnLeaveToday    int    `json:"onLeaveToday"`
	PendingLeaves   int    `json:"pendingLeaves"`
	ActiveBatches   int    `json:"activeBatches"`
	ActiveInterns   int    `json:"activeInterns"`
	ActiveFaculties int    `json:"activeFaculties"`
	Date            string `json:"date"`
}
