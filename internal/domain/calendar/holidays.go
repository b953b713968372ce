package calendar

import "time"

// Holiday is a single public holiday resolved for a concrete year.
type Holiday struct {
	Date time.Time `json:"date"`
	Name string    `json:"name"`
}

type fixedHoliday struct {
	month time.Month
	day   int
	name  string
}

// Greek public holidays that fall on the same calendar date every year.
var fixedHolidays = []fixedHoliday{
	{time.January, 1, "Πρωτοχρονιά"},
	{time.January, 6, "Θεοφάνεια"},
	{time.March, 25, "Εθνική Εορτή 25ης Μαρτίου"},
	{time.May, 1, "Πρωτομαγιά"},
	{time.August, 15, "Κοίμηση της Θεοτόκου"},
	{time.October, 28, "Εθνική Εορτή 28ης Οκτωβρίου"},
	{time.December, 25, "Χριστούγεννα"},
	{time.December, 26, "Δεύτερη ημέρα Χριστουγέννων"},
}

type movingHoliday struct {
	offset int // days relative to Easter Sunday
	name   string
}

var movingHolidays = []movingHoliday{
	{-48, "Καθαρά Δευτέρα"},
	{-2, "Μεγάλη Παρασκευή"},
	{0, "Κυριακή του Πάσχα"},
	{1, "Δευτέρα του Πάσχα"},
	{50, "Αγίου Πνεύματος"},
}

// OrthodoxEaster returns the Gregorian date of Orthodox Easter Sunday for
// the given year. The Julian computus result is shifted by 13 days, which
// holds for the years 1900 through 2099.
func OrthodoxEaster(year int) time.Time {
	a := year % 4
	b := year % 7
	c := year % 19
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7
	month := (d + e + 114) / 31
	day := (d+e+114)%31 + 1

	julian := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return julian.AddDate(0, 0, 13)
}

// IsPublicHoliday reports whether the date is a Greek public holiday,
// fixed or Easter-relative.
func IsPublicHoliday(date time.Time) bool {
	for _, h := range fixedHolidays {
		if date.Month() == h.month && date.Day() == h.day {
			return true
		}
	}
	easter := OrthodoxEaster(date.Year())
	for _, h := range movingHolidays {
		m := easter.AddDate(0, 0, h.offset)
		if date.Month() == m.Month() && date.Day() == m.Day() {
			return true
		}
	}
	return false
}

// HolidaysForYear lists the fixed public holidays of a year in calendar order.
func HolidaysForYear(year int) []Holiday {
	out := make([]Holiday, 0, len(fixedHolidays))
	for _, h := range fixedHolidays {
		out = append(out, Holiday{
			Date: time.Date(year, h.month, h.day, 0, 0, 0, 0, time.UTC),
			Name: h.name,
		})
	}
	return out
}
