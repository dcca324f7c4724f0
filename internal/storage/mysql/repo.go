package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"monastery_tours/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func jsonList(v []string) string {
	if v == nil {
		v = []string{}
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func (r *Repo) UpsertSite(ctx context.Context, s domain.Site) error {
	_, err := r.db.ExecContext(ctx, upsertSiteSQL,
		s.ID,
		s.Name,
		s.Location,
		s.Coords.Lat,
		s.Coords.Lng,
		s.Description,
		jsonList(s.Highlights),
		s.TravelTime,
		s.NearestTown,
		s.Rating,
		s.ReviewCount,
		s.Established,
		jsonList(s.SpecialFeatures),
	)
	return err
}

type scanner interface{ Scan(dest ...any) error }

func scanSite(row scanner) (domain.Site, error) {
	var s domain.Site
	var highlights, features []byte
	if err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Location,
		&s.Coords.Lat, &s.Coords.Lng,
		&s.Description,
		&highlights,
		&s.TravelTime,
		&s.NearestTown,
		&s.Rating,
		&s.ReviewCount,
		&s.Established,
		&features,
	); err != nil {
		return domain.Site{}, err
	}
	if err := json.Unmarshal(highlights, &s.Highlights); err != nil {
		return domain.Site{}, fmt.Errorf("site %s highlights: %w", s.ID, err)
	}
	if err := json.Unmarshal(features, &s.SpecialFeatures); err != nil {
		return domain.Site{}, fmt.Errorf("site %s features: %w", s.ID, err)
	}
	return s, nil
}

func (r *Repo) GetSite(ctx context.Context, id string) (domain.Site, error) {
	s, err := scanSite(r.db.QueryRowContext(ctx, getSiteSQL, id))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Site{}, fmt.Errorf("site %q: %w", id, domain.ErrNotFound)
	}
	return s, err
}

func (r *Repo) ListSites(ctx context.Context) ([]domain.Site, error) {
	rows, err := r.db.QueryContext(ctx, listSitesSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Site
	for rows.Next() {
		s, err := scanSite(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
