package life

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestBarrierHoldsUntilAllArrive(t *testing.T) {
	const parties = 4
	var actions atomic.Int32
	b := NewBarrier(parties, func() { actions.Add(1) })

	var released atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < parties-1; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Wait()
			released.Add(1)
		}()
	}

	time.Sleep(50 * time.Millisecond)
	if n := released.Load(); n != 0 {
		t.Fatalf("%d participants released with only %d of %d arrivals", n, parties-1, parties)
	}
	if actions.Load() != 0 {
		t.Fatal("action ran before the phase completed")
	}

	b.Wait()
	released.Add(1)
	wg.Wait()

	if n := released.Load(); n != parties {
		t.Fatalf("released %d participants, want %d", n, parties)
	}
	if n := actions.Load(); n != 1 {
		t.Fatalf("action ran %d times, want 1", n)
	}
}

func TestBarrierReusableAcrossPhases(t *testing.T) {
	const (
		parties = 4
		phases  = 50
	)
	var arrivals atomic.Int64
	var releases []int64
	b := NewBarrier(parties, func() { releases = append(releases, arrivals.Load()) })

	var wg sync.WaitGroup
	for i := 0; i < parties; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for p := 0; p < phases; p++ {
				arrivals.Add(1)
				b.Wait()
			}
		}()
	}
	wg.Wait()

	if len(releases) != phases {
		t.Fatalf("observed %d releases, want %d", len(releases), phases)
	}
	for p, n := range releases {
		if want := int64((p + 1) * parties); n != want {
			t.Fatalf("phase %d released after %d arrivals, want %d", p, n, want)
		}
	}
}

func TestBarrierRejectsZeroParties(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewBarrier(0) must panic")
		}
	}()
	NewBarrier(0, nil)
}
