package appointment

import (
	"testing"
	"time"

	"github.com/glowline/salon-scheduler/internal/models"
)

func day(hour, min int) time.Time {
	return time.Date(2026, 9, 1, hour, min, 0, 0, time.UTC)
}

func TestResolveSlotsFreeDay(t *testing.T) {
	slots := ResolveSlots(day(9, 0), day(12, 0), 60*time.Minute, nil)

	want := []string{"09:00", "09:30", "10:00", "10:30", "11:00"}
	if len(slots) != len(want) {
		t.Fatalf("expected %d slots, got %d: %+v", len(want), len(slots), slots)
	}
	for i, w := range want {
		if slots[i].Start != w {
			t.Fatalf("slot %d: expected %s, got %s", i, w, slots[i].Start)
		}
	}
}

func TestResolveSlotsSkipsBusyIntervals(t *testing.T) {
	busy := []BusyInterval{{Start: day(10, 0), End: day(11, 0)}}
	slots := ResolveSlots(day(9, 0), day(12, 0), 60*time.Minute, busy)

	want := []string{"09:00", "11:00"}
	if len(slots) != len(want) {
		t.Fatalf("expected %v, got %+v", want, slots)
	}
	for i, w := range want {
		if slots[i].Start != w {
			t.Fatalf("slot %d: expected %s, got %s", i, w, slots[i].Start)
		}
	}

	// Property: no returned slot may touch a busy interval.
	for _, s := range slots {
		start, _ := time.Parse("15:04", s.Start)
		slotStart := day(start.Hour(), start.Minute())
		slotEnd := slotStart.Add(60 * time.Minute)
		for _, b := range busy {
			if slotStart.Before(b.End) && slotEnd.After(b.Start) {
				t.Fatalf("slot %s overlaps busy interval %v", s.Start, b)
			}
		}
	}
}

func TestResolveSlotsDropsTailThatCannotFit(t *testing.T) {
	slots := ResolveSlots(day(9, 0), day(10, 15), 30*time.Minute, nil)

	// 10:00+30m would cross the 10:15 close.
	want := []string{"09:00", "09:30"}
	if len(slots) != len(want) {
		t.Fatalf("expected %v, got %+v", want, slots)
	}
}

func TestResolveSlotsAscendingOrder(t *testing.T) {
	busy := []BusyInterval{
		{Start: day(9, 30), End: day(10, 0)},
		{Start: day(11, 0), End: day(11, 30)},
	}
	slots := ResolveSlots(day(9, 0), day(13, 0), 30*time.Minute, busy)
	for i := 1; i < len(slots); i++ {
		if slots[i-1].Start >= slots[i].Start {
			t.Fatalf("slots not ascending: %+v", slots)
		}
	}
}

func TestResolveSlotsEmptyCases(t *testing.T) {
	if got := ResolveSlots(day(9, 0), day(9, 0), 30*time.Minute, nil); len(got) != 0 {
		t.Fatalf("zero-width window should have no slots: %+v", got)
	}
	if got := ResolveSlots(day(9, 0), day(10, 0), 2*time.Hour, nil); len(got) != 0 {
		t.Fatalf("oversized duration should have no slots: %+v", got)
	}
	if got := ResolveSlots(day(9, 0), day(10, 0), 0, nil); len(got) != 0 {
		t.Fatalf("non-positive duration should have no slots: %+v", got)
	}
}

func TestDayWindow(t *testing.T) {
	wh := &models.WorkingHours{StaffID: 1, Weekday: 2, StartTime: "09:00", EndTime: "18:00", Active: true}

	open, close, ok := DayWindow(wh, day(0, 0))
	if !ok {
		t.Fatal("expected a window")
	}
	if !open.Equal(day(9, 0)) || !close.Equal(day(18, 0)) {
		t.Fatalf("wrong window: %v - %v", open, close)
	}

	if _, _, ok := DayWindow(&models.WorkingHours{Active: false}, day(0, 0)); ok {
		t.Fatal("inactive row should have no window")
	}
	if _, _, ok := DayWindow(nil, day(0, 0)); ok {
		t.Fatal("nil row should have no window")
	}
	if _, _, ok := DayWindow(&models.WorkingHours{StartTime: "18:00", EndTime: "09:00", Active: true}, day(0, 0)); ok {
		t.Fatal("inverted window should be rejected")
	}
}

func TestWithinWorkingHours(t *testing.T) {
	wh := &models.WorkingHours{StartTime: "09:00", EndTime: "18:00", Active: true}

	if !WithinWorkingHours(wh, day(9, 0), day(9, 45)) {
		t.Fatal("expected opening slot to fit")
	}
	if !WithinWorkingHours(wh, day(17, 15), day(18, 0)) {
		t.Fatal("expected closing slot to fit")
	}
	if WithinWorkingHours(wh, day(8, 30), day(9, 15)) {
		t.Fatal("slot before opening should not fit")
	}
	if WithinWorkingHours(wh, day(17, 30), day(18, 15)) {
		t.Fatal("slot crossing close should not fit")
	}
}
