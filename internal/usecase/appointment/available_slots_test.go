package appointment

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/ArthurMoreiraS/OperlyService/internal/clock"

	domain "github.com/ArthurMoreiraS/OperlyService/internal/domain/appointment"
)

func fixedClock(value string) clock.Clock {
	t, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		panic(err)
	}
	return clock.Fixed(t.UTC())
}

func TestGetAvailableSlotsGrid(t *testing.T) {
	repo := seededRepo()
	uc := NewGetAvailableSlots(repo, fixedClock("2026-03-10 12:00"))

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BusinessID: "biz-1",
		Date:       monday,
		ServiceID:  "svc-1", // 60 min
	})
	if err != nil {
		t.Fatalf("slots: %v", err)
	}

	// 08:00-18:00 stepped by 60: ten starts, all free.
	if len(slots) != 10 {
		t.Fatalf("got %d slots, want 10", len(slots))
	}
	if slots[0].Time != "08:00" || slots[len(slots)-1].Time != "17:00" {
		t.Errorf("grid bounds %s..%s, want 08:00..17:00", slots[0].Time, slots[len(slots)-1].Time)
	}
	for _, s := range slots {
		if !s.Available {
			t.Errorf("slot %s unavailable on empty day", s.Time)
		}
	}
}

func TestGetAvailableSlotsMarksBooked(t *testing.T) {
	repo := seededRepo()
	create := NewCreateAppointment(repo, nil)
	ctx := context.Background()

	if _, err := create.Execute(ctx, CreateInput{
		BusinessID: "biz-1", CustomerID: "cust-1", ServiceID: "svc-1",
		Date: monday, StartTime: "09:00",
	}); err != nil {
		t.Fatal(err)
	}

	uc := NewGetAvailableSlots(repo, fixedClock("2026-03-10 12:00"))
	slots, err := uc.Execute(ctx, domain.AvailabilityInput{
		BusinessID: "biz-1", Date: monday, ServiceID: "svc-1",
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range slots {
		wantFree := s.Time != "09:00"
		if s.Available != wantFree {
			t.Errorf("slot %s available=%v, want %v", s.Time, s.Available, wantFree)
		}
	}
}

func TestGetAvailableSlotsClosedDayEmpty(t *testing.T) {
	repo := seededRepo()
	uc := NewGetAvailableSlots(repo, fixedClock("2026-03-10 12:00"))

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BusinessID: "biz-1", Date: "2026-03-15", // Sunday
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 0 {
		t.Errorf("got %d slots on a closed day, want 0", len(slots))
	}
}

func TestGetAvailableSlotsPastFilterToday(t *testing.T) {
	repo := seededRepo()
	// Clock mid-day on the queried date itself.
	uc := NewGetAvailableSlots(repo, fixedClock(monday+" 12:10"))

	slots, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		BusinessID: "biz-1", Date: monday, DurationMin: 60,
	})
	if err != nil {
		t.Fatal(err)
	}

	for _, s := range slots {
		past := s.Time < "12:10"
		if past && s.Available {
			t.Errorf("past slot %s still available", s.Time)
		}
		if !past && !s.Available {
			t.Errorf("future slot %s unavailable", s.Time)
		}
	}
}

func TestGetAvailableSlotsDurationFallbacks(t *testing.T) {
	repo := seededRepo()
	uc := NewGetAvailableSlots(repo, fixedClock("2026-03-10 12:00"))
	ctx := context.Background()

	// Explicit duration wins over the business default.
	slots, err := uc.Execute(ctx, domain.AvailabilityInput{
		BusinessID: "biz-1", Date: monday, DurationMin: 120,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 5 {
		t.Errorf("explicit 120min: %d slots, want 5", len(slots))
	}

	// No service, no override: business default of 30.
	slots, err = uc.Execute(ctx, domain.AvailabilityInput{
		BusinessID: "biz-1", Date: monday,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 20 {
		t.Errorf("default 30min: %d slots, want 20", len(slots))
	}

	// An inactive service supplies no duration, so the explicit override
	// still wins over the business default.
	slots, err = uc.Execute(ctx, domain.AvailabilityInput{
		BusinessID: "biz-1", Date: monday,
		ServiceID: "svc-inactive", DurationMin: 45,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 14 {
		t.Errorf("inactive service + explicit 45min: %d slots, want 14", len(slots))
	}
	if len(slots) > 1 && slots[1].Time != "08:45" {
		t.Errorf("second slot = %s, want 08:45", slots[1].Time)
	}
}

func TestGetAvailableSlotsIdempotent(t *testing.T) {
	repo := seededRepo()
	create := NewCreateAppointment(repo, nil)
	ctx := context.Background()

	if _, err := create.Execute(ctx, CreateInput{
		BusinessID: "biz-1", CustomerID: "cust-1", ServiceID: "svc-1",
		Date: monday, StartTime: "10:00",
	}); err != nil {
		t.Fatal(err)
	}

	uc := NewGetAvailableSlots(repo, fixedClock("2026-03-10 12:00"))
	in := domain.AvailabilityInput{BusinessID: "biz-1", Date: monday, ServiceID: "svc-1"}

	first, err := uc.Execute(ctx, in)
	if err != nil {
		t.Fatal(err)
	}
	second, err := uc.Execute(ctx, in)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("two reads without writes returned different results")
	}
}
