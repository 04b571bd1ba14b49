package appointment

// GenerateSlots produces the ordered candidate start times for a business day:
// every time t with startOfDay <= t < endOfDay reachable from startOfDay in
// whole interval steps. endOfDay itself is never emitted, even when exactly
// reachable. A non-positive interval or an empty window yields an empty slice
// rather than an error; the caller sees it as "no slots available".
func GenerateSlots(startOfDay, endOfDay TimeOfDay, intervalMinutes int) []TimeOfDay {
	if intervalMinutes <= 0 {
		return nil
	}
	start := startOfDay.Minutes()
	end := endOfDay.Minutes()
	if start >= end {
		return nil
	}

	slots := make([]TimeOfDay, 0, (end-start+intervalMinutes-1)/intervalMinutes)
	for m := start; m < end; m += intervalMinutes {
		slots = append(slots, TimeOfDayFromMinutes(m))
	}
	return slots
}
