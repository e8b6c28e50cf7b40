package companyholiday

import "time"

// CompanyHoliday is an organization-specific non-working day, owned and
// edited by the user. At most one exists per calendar date per user.
type CompanyHoliday struct {
	ID   int
	Date time.Time
	Name string
}
