package mysql

// position is assigned on first insert and never updated, so list order is
// the order sites entered the catalog.
const upsertSiteSQL = `
INSERT INTO sites
  (id, name, location, lat, lng, description, highlights, travel_time,
   nearest_town, rating, review_count, established, special_features)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name             = VALUES(name),
  location         = VALUES(location),
  lat              = VALUES(lat),
  lng              = VALUES(lng),
  description      = VALUES(description),
  highlights       = VALUES(highlights),
  travel_time      = VALUES(travel_time),
  nearest_town     = VALUES(nearest_town),
  rating           = VALUES(rating),
  review_count     = VALUES(review_count),
  established      = VALUES(established),
  special_features = VALUES(special_features)
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

const siteColumns = `
  id, name, location, lat, lng, description, highlights, travel_time,
  nearest_town, rating, review_count, established, special_features`

const getSiteSQL = `SELECT` + siteColumns + `
FROM sites
WHERE id = ?
`

const listSitesSQL = `SELECT` + siteColumns + `
FROM sites
ORDER BY position
`
