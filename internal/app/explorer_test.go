package app_test

import (
	"errors"
	"testing"

	"monastery_tours/internal/app"
	"monastery_tours/internal/domain"
	"monastery_tours/internal/shared"
)

func selectedID(t *testing.T, e *app.Explorer) string {
	t.Helper()
	s, ok := e.Selected()
	if !ok {
		return ""
	}
	return s.ID
}

func TestExplorer_Defaults(t *testing.T) {
	e := app.NewExplorer(shared.SeedSites())
	if e.Mode() != domain.ModeMap {
		t.Fatalf("default mode: %s", e.Mode())
	}
	if selectedID(t, e) != "rumtek" {
		t.Fatalf("first site should start selected")
	}
	if _, ok := app.NewExplorer(nil).Selected(); ok {
		t.Fatalf("empty catalog cannot have a selection")
	}
}

func TestExplorer_SelectReplacesAndIsIdempotent(t *testing.T) {
	e := app.NewExplorer(shared.SeedSites())
	if _, err := e.Select("tashiding"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := e.Select("enchey"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if got := selectedID(t, e); got != "enchey" {
		t.Fatalf("expected enchey, got %s", got)
	}
	_, _ = e.Select("enchey")
	if got := selectedID(t, e); got != "enchey" {
		t.Fatalf("reselect changed selection to %s", got)
	}

	v := e.View()
	n := 0
	for _, m := range v.Markers {
		if m.Selected {
			n++
		}
	}
	if n != 1 || v.Detail == nil || v.Detail.ID != "enchey" {
		t.Fatalf("detail must mirror the single selection: %+v", v)
	}
}

func TestExplorer_UnknownSelectionKeepsCurrent(t *testing.T) {
	e := app.NewExplorer(shared.SeedSites())
	_, err := e.Select("nowhere")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if selectedID(t, e) != "rumtek" {
		t.Fatalf("failed select must not change selection")
	}
}

func TestExplorer_ModeSwitchKeepsSelection(t *testing.T) {
	e := app.NewExplorer(shared.SeedSites())
	_, _ = e.Select("ralang")
	for _, m := range []domain.ViewMode{domain.ModeList, domain.ModeMap, domain.ModeList} {
		e.SetMode(m)
		if selectedID(t, e) != "ralang" {
			t.Fatalf("switch to %s changed selection", m)
		}
	}
	v := e.View()
	if v.Mode != domain.ModeList || len(v.List) != 5 || len(v.Markers) != 0 {
		t.Fatalf("list view shape: %+v", v)
	}
	if !v.List[4].Selected {
		t.Fatalf("list view must flag the selection")
	}
}

func TestExplorer_ClearSelection(t *testing.T) {
	e := app.NewExplorer(shared.SeedSites())
	e.ClearSelection()
	if v := e.View(); v.Detail != nil {
		t.Fatalf("expected no detail panel, got %+v", v.Detail)
	}
}

func TestMarkerPosition_IndexDerived(t *testing.T) {
	e := app.NewExplorer(shared.SeedSites())
	v := e.View()
	for i, m := range v.Markers {
		left, top := app.MarkerPosition(i)
		if m.Left != left || m.Top != top {
			t.Fatalf("marker %d at (%v,%v), want (%v,%v)", i, m.Left, m.Top, left, top)
		}
	}
	if l, tp := app.MarkerPosition(2); l != 50 || tp != 44 {
		t.Fatalf("position of index 2: (%v,%v)", l, tp)
	}
}
