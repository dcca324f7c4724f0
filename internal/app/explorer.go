package app

import (
	"fmt"

	"monastery_tours/internal/domain"
)

type Marker struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Left     float64 `json:"left"` // percent
	Top      float64 `json:"top"`  // percent
	Selected bool    `json:"selected"`
}

type ListEntry struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	TravelTime  string  `json:"travelTime"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviews"`
	Selected    bool    `json:"selected"`
}

type ExplorerView struct {
	Mode    domain.ViewMode `json:"mode"`
	Markers []Marker        `json:"markers,omitempty"`
	List    []ListEntry     `json:"list,omitempty"`
	Detail  *domain.Site    `json:"detail"`
}

// MarkerPosition places the i-th site on the stylised map. Positions derive
// from list order, not from coordinates.
func MarkerPosition(i int) (left, top float64) {
	return 20 + float64(i)*15, 20 + float64(i)*12
}

// Explorer is one viewer's map/list state over a fixed site list.
type Explorer struct {
	sites    []domain.Site
	mode     domain.ViewMode
	selected int // -1 when nothing is selected
}

func NewExplorer(sites []domain.Site) *Explorer {
	e := &Explorer{sites: sites, mode: domain.ModeMap, selected: -1}
	if len(sites) > 0 {
		e.selected = 0
	}
	return e
}

func (e *Explorer) Mode() domain.ViewMode { return e.mode }

func (e *Explorer) SetMode(m domain.ViewMode) { e.mode = m }

func (e *Explorer) Select(id string) (domain.Site, error) {
	for i, s := range e.sites {
		if s.ID == id {
			e.selected = i
			return s, nil
		}
	}
	return domain.Site{}, fmt.Errorf("site %q: %w", id, domain.ErrNotFound)
}

func (e *Explorer) ClearSelection() { e.selected = -1 }

func (e *Explorer) Selected() (domain.Site, bool) {
	if e.selected < 0 {
		return domain.Site{}, false
	}
	return e.sites[e.selected], true
}

func (e *Explorer) View() ExplorerView {
	v := ExplorerView{Mode: e.mode}
	if s, ok := e.Selected(); ok {
		v.Detail = &s
	}
	switch e.mode {
	case domain.ModeList:
		v.List = make([]ListEntry, len(e.sites))
		for i, s := range e.sites {
			v.List[i] = ListEntry{
				ID: s.ID, Name: s.Name, Location: s.Location, TravelTime: s.TravelTime,
				Rating: s.Rating, ReviewCount: s.ReviewCount, Selected: i == e.selected,
			}
		}
	default:
		v.Markers = make([]Marker, len(e.sites))
		for i, s := range e.sites {
			left, top := MarkerPosition(i)
			v.Markers[i] = Marker{ID: s.ID, Name: s.Name, Left: left, Top: top, Selected: i == e.selected}
		}
	}
	return v
}
