package game

import "fmt"

// Row is one game result after adaptation: codes are canonical and both
// scores parsed. Rows are transient, consumed once by the outcome aggregator
// and never persisted.
type Row struct {
	HomeCode   string
	AwayCode   string
	HomePoints float64
	AwayPoints float64
	Date       string
	Decade     string
}

// DecadeOf formats a season year as its decade label, e.g. 1987 -> "1980s".
func DecadeOf(year int) string {
	return fmt.Sprintf("%ds", year/10*10)
}
