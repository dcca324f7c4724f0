package app

import (
	"errors"
	"strconv"
	"strings"

	"monastery_tours/internal/domain"
)

/********** alias registry (single source of truth) **********/

var siteAliases = map[string][]string{
	"id":          {"id", "slug", "site_id", "siteId"},
	"name":        {"name", "title", "site_name"},
	"location":    {"location", "region", "district", "address.region"},
	"description": {"description", "summary", "about"},
	"travel_time": {"travelTime", "travel_time", "access.travelTime"},
	"town":        {"nearestTown", "nearest_town", "town", "address.town"},
	"established": {"established", "founded", "founding_era", "history.established"},
}

var (
	latPaths    = []string{"coordinates.lat", "lat", "latitude", "location.lat"}
	lngPaths    = []string{"coordinates.lng", "coordinates.lon", "lng", "lon", "longitude", "location.lng"}
	ratingPaths = []string{"rating", "rating.value", "score"}
	countPaths  = []string{"reviews", "review_count", "reviewCount", "rating.count"}
)

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

func lookupStr(m map[string]any, path string) string {
	if s, ok := lookupAny(m, path).(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func firstAlias(m map[string]any, key string) string {
	for _, p := range siteAliases[key] {
		if s := lookupStr(m, p); s != "" {
			return s
		}
	}
	return ""
}

// floatFlexible: number from several paths (float64/int/string like "4,8").
func floatFlexible(m map[string]any, paths ...string) (float64, bool) {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

// stringsFlexible accepts []any holding strings or {name/label/title} objects.
func stringsFlexible(m map[string]any, paths ...string) []string {
	for _, k := range paths {
		raw, ok := lookupAny(m, k).([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(raw))
		for _, it := range raw {
			switch t := it.(type) {
			case string:
				if s := strings.TrimSpace(t); s != "" {
					out = append(out, s)
				}
			case map[string]any:
				for _, f := range []string{"name", "label", "title"} {
					if s, ok := t[f].(string); ok && s != "" {
						out = append(out, s)
						break
					}
				}
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return []string{}
}

/********** site mapper **********/

func mapSite(p map[string]any) (domain.Site, error) {
	s := domain.Site{
		ID:              firstAlias(p, "id"),
		Name:            firstAlias(p, "name"),
		Location:        firstAlias(p, "location"),
		Description:     firstAlias(p, "description"),
		TravelTime:      firstAlias(p, "travel_time"),
		NearestTown:     firstAlias(p, "town"),
		Established:     firstAlias(p, "established"),
		Highlights:      stringsFlexible(p, "highlights", "tags"),
		SpecialFeatures: stringsFlexible(p, "specialFeatures", "special_features", "features"),
	}
	if s.ID == "" {
		// numeric ids arrive as float64 from encoding/json
		if f, ok := floatFlexible(p, "id"); ok {
			s.ID = strconv.FormatInt(int64(f), 10)
		}
	}
	if s.Name == "" {
		return domain.Site{}, errors.New("record has no name")
	}
	s.Coords.Lat, _ = floatFlexible(p, latPaths...)
	s.Coords.Lng, _ = floatFlexible(p, lngPaths...)
	s.Rating, _ = floatFlexible(p, ratingPaths...)
	if n, ok := floatFlexible(p, countPaths...); ok {
		s.ReviewCount = int(n)
	}
	return s, nil
}
