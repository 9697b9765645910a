package schedule

// Slots enumerates every time of day at the given granularity across a
// full 24-hour day (15 minutes yields 96 entries). The enumeration is
// deliberately blind to working hours, time off and existing bookings;
// callers filter the candidates before offering them.
func Slots(granularityMin int) []TimeOfDay {
	if granularityMin <= 0 || granularityMin > 24*60 {
		return nil
	}
	slots := make([]TimeOfDay, 0, 24*60/granularityMin)
	for m := 0; m < 24*60; m += granularityMin {
		slots = append(slots, TimeOfDay{minutes: m})
	}
	return slots
}
