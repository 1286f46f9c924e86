package domain

// Ranked is a name together with the number of bookings attributed to it.
type Ranked struct {
	Name     string
	Bookings int
}

// Dashboard holds the aggregate statistics shown on the analytics page.
// TopVenue and TopUser are nil when there are no bookings.
type Dashboard struct {
	TotalVenues   int
	TotalBookings int
	TotalRevenue  float64
	TopVenue      *Ranked
	TopUser       *Ranked
}
