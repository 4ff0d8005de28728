package response

type UserView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type IncomePoint struct {
	Label  string  `json:"label"`
	Income float64 `json:"income"`
}

type DashboardStats struct {
	TotalEvents           int           `json:"totalEvents"`
	TotalBookings         int           `json:"totalBookings"`
	TotalUsers            int           `json:"totalUsers"`
	ConfirmedCount        int           `json:"confirmedCount"`
	PendingCount          int           `json:"pendingCount"`
	CancelledCount        int           `json:"cancelledCount"`
	BookingCompletionRate float64       `json:"bookingCompletionRate"`
	TotalIncome           float64       `json:"totalIncome"`
	IncomeOverTime        []IncomePoint `json:"incomeOverTime"`
}
