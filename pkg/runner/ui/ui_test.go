package ui

import (
	"testing"
	"time"

	"tableflip.dev/monthgrid/pkg/store"
)

func TestGridPrefersFlagsOverState(t *testing.T) {
	p := store.Open(t.TempDir())
	saved := time.Date(2019, time.March, 14, 0, 0, 0, 0, time.UTC)
	if err := p.Save(store.State{Value: &saved, Display: time.Date(2019, time.March, 1, 0, 0, 0, 0, time.UTC)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u := &UI{Config: &store.Config{Name: "due", MatchYear: true}, Persistence: p}
	g, err := u.Grid()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Name() != "due" || !g.MatchYear() || !g.IsSelected(14) || g.DisplayMonth().Month() != time.March {
		t.Fatalf("state not restored: name %q display %v value %v", g.Name(), g.DisplayMonth(), g.Value())
	}

	display := time.Date(2021, time.June, 20, 0, 0, 0, 0, time.UTC)
	u.Display = &display
	g, err = u.Grid()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.DisplayMonth().Month() != time.June || g.DisplayMonth().Day() != 1 {
		t.Fatalf("expected June 1 display, got %v", g.DisplayMonth())
	}
}

func TestGridFresh(t *testing.T) {
	p := store.Open(t.TempDir())
	saved := time.Date(2019, time.March, 14, 0, 0, 0, 0, time.UTC)
	_ = p.Save(store.State{Value: &saved, Display: saved})

	u := &UI{Persistence: p, Fresh: true}
	g, err := u.Grid()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Value() != nil {
		t.Fatalf("fresh grid should not restore a value, got %v", g.Value())
	}
}
