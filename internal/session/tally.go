package session

// Tally counts day votes per candidate for a single day
type Tally map[uint64]int

// Add records one vote for target
func (t Tally) Add(target uint64) {
	t[target]++
}

// Leader returns the candidate with the most votes. ok is false when nobody
// was voted for or the top count is shared.
func (t Tally) Leader() (leader uint64, ok bool) {
	best := 0
	for candidate, votes := range t {
		switch {
		case votes > best:
			best = votes
			leader = candidate
			ok = true
		case votes == best:
			ok = false
		}
	}
	if best == 0 {
		return 0, false
	}
	return leader, ok
}
