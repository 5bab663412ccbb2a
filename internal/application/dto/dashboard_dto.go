package dto

// WorkerStats own-entry counters shown to a Wegewart.
type WorkerStats struct {
	Total     int `json:"total"`
	Submitted int `json:"submitted"`
	Rejected  int `json:"rejected"`
}

// SupervisorStats district counters shown to an Ortsvorsteher.
type SupervisorStats struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Total    int `json:"total"`
}

// BillingStats global counters shown to Verwaltung/admin.
type BillingStats struct {
	AwaitingBilling int `json:"awaiting_billing"`
	Total           int `json:"total"`
	Billed          int `json:"billed"`
}

// DashboardResponse per-role summary; only the section matching the
// actor's broadest role is populated.
type DashboardResponse struct {
	Role       string           `json:"role"`
	Worker     *WorkerStats     `json:"worker,omitempty"`
	Supervisor *SupervisorStats `json:"supervisor,omitempty"`
	Billing    *BillingStats    `json:"billing,omitempty"`
}
