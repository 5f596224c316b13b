package qts

import "testing"

func fiveDayWeek(t *testing.T) *QuantumTimeSystem {
	t.Helper()
	days := []DaySpec{
		{Day: 0, Label: "Monday", StartMinutes: 8 * 60, EndMinutes: 8*60 + 4*80},
		{Day: 1, Label: "Tuesday", StartMinutes: 8 * 60, EndMinutes: 8*60 + 4*80},
		{Day: 2, Label: "Wednesday", StartMinutes: 8 * 60, EndMinutes: 8*60 + 4*80},
		{Day: 3, Label: "Thursday", StartMinutes: 8 * 60, EndMinutes: 8*60 + 4*80},
		{Day: 4, Label: "Friday", StartMinutes: 8 * 60, EndMinutes: 8*60 + 4*80},
	}
	q, err := New(80, days)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return q
}

func TestTotalIsDense(t *testing.T) {
	q := fiveDayWeek(t)
	if q.Total() != 20 {
		t.Fatalf("expected 20 quanta, got %d", q.Total())
	}
}

func TestQuantumToDayRoundTrip(t *testing.T) {
	q := fiveDayWeek(t)
	for day := Day(0); day < 5; day++ {
		start, end, err := q.OperationalQuantaFor(day)
		if err != nil {
			t.Fatalf("OperationalQuantaFor(%d): %v", day, err)
		}
		for quantum := start; quantum < end; quantum++ {
			got, err := q.QuantumToDay(quantum)
			if err != nil {
				t.Fatalf("QuantumToDay(%d): %v", quantum, err)
			}
			if got != day {
				t.Fatalf("quantum %d: expected day %d, got %d", quantum, day, got)
			}
		}
	}
}

func TestWallToQuantumAndBack(t *testing.T) {
	q := fiveDayWeek(t)
	for day := Day(0); day < 5; day++ {
		for _, hhmm := range []string{"08:00", "09:20", "10:40", "12:00"} {
			quantum, err := q.WallToQuantum(day, hhmm)
			if err != nil {
				t.Fatalf("WallToQuantum(%d,%s): %v", day, hhmm, err)
			}
			gotDay, err := q.QuantumToDay(quantum)
			if err != nil {
				t.Fatalf("QuantumToDay: %v", err)
			}
			if gotDay != day {
				t.Fatalf("quantum_to_day(wall_to_quantum(%d,%s)) = %d, want %d", day, hhmm, gotDay, day)
			}
		}
	}
}

func TestWallToQuantumRejectsNonOperational(t *testing.T) {
	q := fiveDayWeek(t)
	if _, err := q.WallToQuantum(0, "20:00"); err == nil {
		t.Fatal("expected InvalidInput for out-of-window time")
	}
	if _, err := q.WallToQuantum(0, "08:10"); err == nil {
		t.Fatal("expected InvalidInput for unaligned time")
	}
}

func TestNewRejectsNonMultipleWindow(t *testing.T) {
	_, err := New(80, []DaySpec{{Day: 0, StartMinutes: 0, EndMinutes: 100}})
	if err == nil {
		t.Fatal("expected error for non-quantum-aligned window")
	}
}
