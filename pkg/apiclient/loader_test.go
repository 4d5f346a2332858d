package apiclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestLoaderSupersedesSlowLoad(t *testing.T) {
	var l Loader

	firstStarted := make(chan struct{})
	firstDone := make(chan error, 1)

	go func() {
		firstDone <- l.Do(context.Background(), func(ctx context.Context) error {
			close(firstStarted)
			<-ctx.Done()
			return ctx.Err()
		})
	}()

	<-firstStarted
	if err := l.Do(context.Background(), func(ctx context.Context) error {
		return nil
	}); err != nil {
		t.Fatalf("second load: %v", err)
	}

	select {
	case err := <-firstDone:
		if !errors.Is(err, ErrSuperseded) {
			t.Errorf("first load err = %v, want ErrSuperseded", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("first load never returned after being superseded")
	}
}

func TestLoaderPassesThroughErrors(t *testing.T) {
	var l Loader
	want := errors.New("boom")
	if err := l.Do(context.Background(), func(ctx context.Context) error {
		return want
	}); !errors.Is(err, want) {
		t.Errorf("err = %v, want %v", err, want)
	}
}

func TestEnrichSwallowsItemErrors(t *testing.T) {
	type row struct {
		ID   string
		Name string
	}
	items := []row{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	err := Enrich(context.Background(), items, 2, func(_ context.Context, it *row) error {
		if it.ID == "2" {
			return errors.New("lookup failed")
		}
		it.Name = "Khách " + it.ID
		return nil
	})
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	if items[0].Name != "Khách 1" || items[2].Name != "Khách 3" {
		t.Errorf("items not enriched: %+v", items)
	}
	if items[1].Name != "" {
		t.Errorf("failed item should keep its fallback, got %+v", items[1])
	}
}

func TestEnrichHonorsLimit(t *testing.T) {
	var inFlight, peak atomic.Int64
	var mu sync.Mutex

	items := make([]int, 20)
	err := Enrich(context.Background(), items, 3, func(_ context.Context, _ *int) error {
		n := inFlight.Add(1)
		mu.Lock()
		if n > peak.Load() {
			peak.Store(n)
		}
		mu.Unlock()
		time.Sleep(5 * time.Millisecond)
		inFlight.Add(-1)
		return nil
	})
	if err != nil {
		t.Fatalf("Enrich: %v", err)
	}
	if p := peak.Load(); p > 3 {
		t.Errorf("peak concurrency = %d, want at most 3", p)
	}
}

func TestEnrichStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int64
	items := make([]int, 50)
	err := Enrich(ctx, items, 4, func(_ context.Context, _ *int) error {
		calls.Add(1)
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if c := calls.Load(); c == 50 {
		t.Error("all items ran despite cancelled context")
	}
}

func TestMemoryStoreSubscribe(t *testing.T) {
	store := NewMemoryStore()

	var got []string
	cancel := store.Subscribe(func(s Session, ok bool) {
		got = append(got, fmt.Sprintf("%v:%s", ok, s.UserID))
	})

	store.Set(Session{UserID: "U1"})
	store.Clear()
	cancel()
	store.Set(Session{UserID: "U2"})

	want := []string{"true:U1", "false:"}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
