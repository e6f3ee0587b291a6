package component

// TTL destroys its entity after Frames more frame passes. Total is the
// starting lifetime, kept so visuals can fade.
type TTL struct {
	Frames int
	Total  int
}

// Remaining is the fraction of the lifetime left, 1 when Total is unset.
func (t TTL) Remaining() float64 {
	if t.Total <= 0 {
		return 1
	}
	return float64(t.Frames) / float64(t.Total)
}

var TTLComponent = NewComponent[TTL]()
