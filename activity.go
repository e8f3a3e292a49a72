package reconcile

// ActivityDiff returns the entries of old that are missing from new, and the
// entries of new that are missing from old.
//
// Entries are compared by name and exact amount, as a multiset: an entry
// recorded twice in old and once in new is removed once. Recorded order is
// preserved in both results.
func ActivityDiff(old, new []Activity) (removed, added []Activity) {
	count := make(map[Activity]int, len(old))
	for _, a := range old {
		count[a]++
	}
	for _, a := range new {
		if count[a] > 0 {
			count[a]--
			continue
		}
		added = append(added, a)
	}
	// What remains in count is what new did not consume, in old's order.
	for _, a := range old {
		if count[a] > 0 {
			count[a]--
			removed = append(removed, a)
		}
	}
	return removed, added
}

// Total returns the sum of the activity amounts, rounded.
func Total(activity []Activity) float64 {
	var sum float64
	for _, a := range activity {
		sum += a.Amount
	}
	return Round(sum)
}
