package domain

// OnDay returns the appointments whose date falls on the same calendar day as
// ref, ordered by time of day ascending. The time-of-day component of ref is
// ignored. A day with no appointments yields an empty slice.
func OnDay(appointments []*Appointment, ref LocalTime) []*Appointment {
	bucket := make([]*Appointment, 0)
	for _, a := range appointments {
		if a.Date.SameDay(ref) {
			bucket = append(bucket, a)
		}
	}
	SortAppointments(bucket)
	return bucket
}
