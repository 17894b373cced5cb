package event_test

import (
	"testing"

	"github.com/shashiranjanraj/tokri/pkg/event"
)

func TestListenAndFire(t *testing.T) {
	t.Cleanup(event.Flush)

	var got []any
	event.Listen("sale.completed", func(payload any) { got = append(got, payload) })
	event.Listen("sale.completed", func(payload any) { got = append(got, payload) })

	event.Fire("sale.completed", 42)

	if len(got) != 2 {
		t.Fatalf("expected both listeners to run, got %d calls", len(got))
	}
	if got[0] != 42 || got[1] != 42 {
		t.Errorf("unexpected payloads: %v", got)
	}
}

func TestListen_Unsubscribe(t *testing.T) {
	t.Cleanup(event.Flush)

	var first, second int
	off := event.Listen("sale.completed", func(any) { first++ })
	event.Listen("sale.completed", func(any) { second++ })

	event.Fire("sale.completed", nil)
	off()
	event.Fire("sale.completed", nil)

	if first != 1 {
		t.Errorf("unsubscribed listener ran %d times, want 1", first)
	}
	if second != 2 {
		t.Errorf("remaining listener ran %d times, want 2", second)
	}
}

func TestFire_NoListeners(t *testing.T) {
	t.Cleanup(event.Flush)
	event.Fire("nobody.listens", nil) // must not panic
}

func TestFlush(t *testing.T) {
	called := false
	event.Listen("x", func(any) { called = true })
	event.Flush()
	event.Fire("x", nil)

	if called {
		t.Error("listener survived Flush")
	}
}
