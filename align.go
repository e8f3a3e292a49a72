package reconcile

// Pair holds the two versions of the record at Key. Either side is nil when
// the key is absent from that version.
type Pair struct {
	Key string
	Old *Record
	New *Record
}

// Align pairs the records of old and new by key, for the union of their keys.
//
// The order of the returned pairs is unspecified. A key present on one side
// only is legal and yields a pair with a nil side.
func Align(old, new Series) []Pair {
	pairs := make([]Pair, 0, len(old)+len(new))
	for key, o := range old {
		p := Pair{Key: key, Old: &o}
		if n, ok := new[key]; ok {
			p.New = &n
		}
		pairs = append(pairs, p)
	}
	for key, n := range new {
		if _, ok := old[key]; ok {
			continue // already paired
		}
		pairs = append(pairs, Pair{Key: key, New: &n})
	}
	return pairs
}
