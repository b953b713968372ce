package scheduling

import "time"

// Distribute spreads count sessions over the given ordered dates.
//
// When the sessions fit, they are placed at a fixed stride so they cover
// the period evenly; the stride floors, so the tail of the period may stay
// unused. When there are more sessions than dates, every date first gets
// one session and the surplus is dealt round-robin from the start.
func Distribute(dates []time.Time, count int) []Assignment {
	if len(dates) == 0 || count <= 0 {
		return []Assignment{}
	}

	if count <= len(dates) {
		stride := len(dates) / count
		out := make([]Assignment, 0, count)
		for i := 0; i < count; i++ {
			idx := i * stride
			if idx > len(dates)-1 {
				idx = len(dates) - 1
			}
			out = append(out, Assignment{Date: dates[idx], Count: 1})
		}
		return out
	}

	out := make([]Assignment, len(dates))
	for i, d := range dates {
		out[i] = Assignment{Date: d, Count: 1}
	}
	remaining := count - len(dates)
	for i := 0; remaining > 0; i = (i + 1) % len(out) {
		out[i].Count++
		remaining--
	}
	return out
}
