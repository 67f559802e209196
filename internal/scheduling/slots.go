package scheduling

import "time"

// AvailableSlots returns the open slot start times for date as ascending
// "HH:mm" strings. Candidates start at the clinic open time and step by
// SlotDuration while the slot END still fits before closing time, so an
// unaligned closing time drops the final partial slot.
//
// A candidate is occupied when any of:
//   - date is now's date and the candidate starts strictly before now
//     (future dates are never cut off by the clock);
//   - its time-of-day window intersects the lunch break;
//   - its [start, start+30m) window overlaps an existing booking's window,
//     using the half-open test a.start < b.end && b.start < a.end.
func AvailableSlots(cal Calendar, date time.Time, bookings []Booking, now time.Time) []string {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	today := sameDate(date, now)

	slots := []string{}
	for start := midnight.Add(cal.Open); timeOfDay(start)+SlotDuration <= cal.Close; start = start.Add(SlotDuration) {
		end := start.Add(SlotDuration)
		occupied := false

		if today && start.Before(now) {
			occupied = true
		}

		if !occupied {
			slotStart := timeOfDay(start)
			slotEnd := slotStart + SlotDuration
			if slotStart < cal.LunchEnd && slotEnd > cal.LunchStart {
				occupied = true
			}
		}

		if !occupied {
			for _, b := range bookings {
				if start.Before(b.Start.Add(SlotDuration)) && end.After(b.Start) {
					occupied = true
					break
				}
			}
		}

		if !occupied {
			slots = append(slots, start.Format("15:04"))
		}
	}

	return slots
}
