package appointment

import "time"

// SlotGranularity is the spacing between candidate start times.
const SlotGranularity = 30 * time.Minute

type AvailabilityInput struct {
	StaffID   uint
	ServiceID uint
	Date      time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BusyInterval is an occupied [Start, End) range for a staff member.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// ResolveSlots sweeps candidate start times across [open, close) at the
// fixed granularity and keeps those whose whole service interval fits
// before closing and touches no busy interval. Busy intervals must be
// sorted ascending and non-overlapping, which the overlap invariant
// guarantees for a single staff member's day. Output is ascending.
func ResolveSlots(open, close time.Time, duration time.Duration, busy []BusyInterval) []TimeSlot {
	slots := []TimeSlot{}
	if duration <= 0 || !open.Before(close) {
		return slots
	}

	idx := 0
	for cur := open; !cur.Add(duration).After(close); cur = cur.Add(SlotGranularity) {
		slotStart := cur
		slotEnd := cur.Add(duration)

		for idx < len(busy) && !busy[idx].End.After(slotStart) {
			idx++
		}

		conflict := false
		for i := idx; i < len(busy) && busy[i].Start.Before(slotEnd); i++ {
			if slotStart.Before(busy[i].End) && slotEnd.After(busy[i].Start) {
				conflict = true
				break
			}
		}

		if !conflict {
			slots = append(slots, TimeSlot{
				Start: slotStart.Format("15:04"),
				End:   slotEnd.Format("15:04"),
			})
		}
	}

	return slots
}
