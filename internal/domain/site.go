package domain

type Site struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Location        string   `json:"location"`
	Coords          Coords   `json:"coordinates"` // display only
	Description     string   `json:"description"`
	Highlights      []string `json:"highlights"`
	TravelTime      string   `json:"travelTime"`
	NearestTown     string   `json:"nearestTown"`
	Rating          float64  `json:"rating"`
	ReviewCount     int      `json:"reviews"`
	Established     string   `json:"established"`
	SpecialFeatures []string `json:"specialFeatures"`
}

type Coords struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ViewMode is the explorer presentation: a cosmetic map or a plain list.
type ViewMode string

const (
	ModeMap  ViewMode = "map"
	ModeList ViewMode = "list"
)

func ParseViewMode(s string) (ViewMode, error) {
	switch m := ViewMode(s); m {
	case ModeMap, ModeList:
		return m, nil
	}
	return "", ErrInvalidMode
}
