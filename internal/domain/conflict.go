package domain

// HasConflict reports whether the candidate slot overlaps any slot in the
// pool. The pool may mix regular and special slots, flattened into plain
// intervals.
//
// Intervals are half-open, so the check uses strict comparisons:
// [s1,e1) and [s2,e2) conflict iff s1 < e2 AND s2 < e1. Touching
// endpoints never conflict:
//   - 09:00-12:00 vs 12:00-14:00 → нет пересечения (граничат)
//   - 09:00-12:00 vs 11:00-13:00 → есть пересечение
//
// excludeID carries the candidate's own prior identity when an existing
// slot is being edited, so a slot never conflicts with itself. Pass nil
// when creating a new slot.
func HasConflict(candidate TimeSlot, pool []TimeSlot, excludeID *int64) bool {
	for _, existing := range pool {
		if excludeID != nil && existing.ID == *excludeID {
			continue
		}
		if candidate.Overlaps(existing) {
			return true
		}
	}
	return false
}
