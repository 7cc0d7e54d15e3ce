package rivalry

// Record is the head-to-head tally for an unordered pair of canonical codes.
// TeamA sorts lexicographically before TeamB, so the stored key is the same
// regardless of which side hosted any given meeting.
type Record struct {
	TeamA         string `json:"team1"`
	TeamB         string `json:"team2"`
	TotalMeetings int    `json:"total_meetings"`
	TeamAWins     int    `json:"team1_wins"`
	TeamBWins     int    `json:"team2_wins"`
}

// PairOf orders two canonical codes into the storage key order.
func PairOf(x, y string) (a, b string) {
	if x <= y {
		return x, y
	}
	return y, x
}

// Zero is the synthetic record returned when two teams never met. The sides
// keep the caller's order since there is nothing to reorient.
func Zero(first, second string) Record {
	return Record{TeamA: first, TeamB: second}
}

// OrientedFor returns a copy with TeamA forced to the given code, swapping
// both labels and win counts when the stored order differs. The code must be
// one of the record's two sides.
func (r Record) OrientedFor(first string) Record {
	if r.TeamA == first {
		return r
	}
	return Record{
		TeamA:         r.TeamB,
		TeamB:         r.TeamA,
		TotalMeetings: r.TotalMeetings,
		TeamAWins:     r.TeamBWins,
		TeamBWins:     r.TeamAWins,
	}
}
