package onceguard_test

import (
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	onceguard "github.com/probablyarth/onceguard-go"
)

func TestVersionClockStrictlyIncreasing(t *testing.T) {
	fake := clockwork.NewFakeClock()
	c := onceguard.NewVersionClock(fake)

	// The fake clock does not move between calls; ties break upward.
	v1 := c.Next()
	v2 := c.Next()
	if v1 == 0 {
		t.Fatal("version must never be zero")
	}
	if v2 != v1+1 {
		t.Fatalf("got %d after %d, want %d", v2, v1, v1+1)
	}

	fake.Advance(10 * time.Millisecond)
	v3 := c.Next()
	if v3 <= v2 {
		t.Fatalf("got %d after %d, want a larger value", v3, v2)
	}
}

func TestVersionClockDefaultsToRealTime(t *testing.T) {
	c := onceguard.NewVersionClock(nil)
	if v := c.Next(); v == 0 {
		t.Fatal("version must never be zero")
	}
}

func TestVersionClockConcurrent(t *testing.T) {
	c := onceguard.NewVersionClock(clockwork.NewFakeClock())

	const n = 50
	var wg sync.WaitGroup
	wg.Add(n)

	versions := make([]int64, n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			versions[i] = c.Next()
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, n)
	for i, v := range versions {
		if seen[v] {
			t.Fatalf("goroutine %d: duplicate version %d", i, v)
		}
		seen[v] = true
	}
}

func TestVersionClockDrivesGuard(t *testing.T) {
	fake := clockwork.NewFakeClockAt(time.UnixMilli(1000))
	c := onceguard.NewVersionClock(fake)
	g := onceguard.New()

	calls := 0
	version := c.Next()

	// Repeated polls with an unchanged version fire once.
	g.Register("doc", true, version, func() { calls++ })
	g.Register("doc", true, version, func() { calls++ })

	// A data change bumps the version and fires again.
	fake.Advance(time.Second)
	version = c.Next()
	g.Register("doc", true, version, func() { calls++ })

	if calls != 2 {
		t.Fatalf("effect fired %d times, want 2", calls)
	}
}
