package model

type MetricChange struct {
	Current          float64 `json:"current"`
	Previous         float64 `json:"previous"`
	PercentageChange float64 `json:"percentage_change"`
}

type AnalyticsOverview struct {
	Period         string       `json:"period"`
	NewUsers       MetricChange `json:"new_users"`
	Donations      MetricChange `json:"donations"`
	DonationAmount MetricChange `json:"donation_amount"`
	Complaints     MetricChange `json:"complaints"`
	Registrations  MetricChange `json:"event_registrations"`
}

type TrendPoint struct {
	Month string  `db:"month" json:"month"`
	Value float64 `db:"value" json:"value"`
}

type AnalyticsTrends struct {
	Users      []TrendPoint `json:"users"`
	Donations  []TrendPoint `json:"donations"`
	Complaints []TrendPoint `json:"complaints"`
}

type AdminDashboard struct {
	TotalUsers       int64            `json:"total_users"`
	PendingUsers     int64            `json:"pending_users"`
	OpenComplaints   int64            `json:"open_complaints"`
	UrgentComplaints int64            `json:"urgent_complaints"`
	UpcomingEvents   int64            `json:"upcoming_events"`
	TotalDonations   float64          `json:"total_donations"`
	PendingDonations int64            `json:"pending_donations"`
	PublishedNews    int64            `json:"published_news"`
	RecentActivity   []ActivityEntity `json:"recent_activity"`
}

type MemberDashboard struct {
	DonationCount     int64   `json:"donation_count"`
	DonationTotal     float64 `json:"donation_total"`
	CertificateCount  int64   `json:"certificate_count"`
	RegistrationCount int64   `json:"registration_count"`
	ComplaintCount    int64   `json:"complaint_count"`
}
