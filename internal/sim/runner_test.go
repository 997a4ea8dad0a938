package sim

import (
	"context"
	"testing"
	"time"
)

func TestRunForStepsFixedTicks(t *testing.T) {
	var total float64
	calls := 0
	r := NewRunner(60, SystemFunc(func(dt float64) {
		calls++
		total += dt
	}))

	if n := r.RunFor(500 * time.Millisecond); n != 30 {
		t.Fatalf("ticks=%d want 30", n)
	}
	if calls != 30 {
		t.Fatalf("calls=%d want 30", calls)
	}
	if total < 0.4999 || total > 0.5001 {
		t.Fatalf("simulated time=%f want 0.5", total)
	}
	if r.Elapsed() != 500*time.Millisecond {
		t.Fatalf("elapsed=%v", r.Elapsed())
	}
}

func TestSystemsRunInOrder(t *testing.T) {
	var order []string
	r := NewRunner(0,
		SystemFunc(func(float64) { order = append(order, "engine") }),
		SystemFunc(func(float64) { order = append(order, "controller") }),
	)
	if r.TPS != DefaultTPS {
		t.Fatalf("tps=%d", r.TPS)
	}
	r.Step()
	r.Step()
	want := []string{"engine", "controller", "engine", "controller"}
	if len(order) != len(want) {
		t.Fatalf("order=%v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order=%v want %v", order, want)
		}
	}
	if r.Frame() != 2 {
		t.Fatalf("frame=%d", r.Frame())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	r := NewRunner(60)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Run(ctx, time.Hour); err != context.Canceled {
		t.Fatalf("err=%v want context.Canceled", err)
	}
}

func TestRunPacesTicks(t *testing.T) {
	r := NewRunner(100)
	if err := r.Run(context.Background(), 50*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if r.Frame() != 5 {
		t.Fatalf("frame=%d want 5", r.Frame())
	}
}
