package domain

type ProfessionEarnings struct {
	Profession  string
	TotalEarned string
}

type ClientSpend struct {
	ProfileID int64
	FullName  string
	TotalPaid string
}
