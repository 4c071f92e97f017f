package postgres

import (
	"context"
	"fmt"
)

// DefaultLocations seeded at bootstrap. Locations are immutable afterwards.
var DefaultLocations = []string{"Warehouse A", "Warehouse B", "Warehouse C"}

// schema is applied at startup; the app owns its tables the same way it owns
// its endpoints. The CHECK constraint backs the service-level non-negativity
// rule, and UNIQUE(name, location_id) keeps one row per item per location.
const schema = `
CREATE TABLE IF NOT EXISTS locations (
	id   BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS items (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	location_id BIGINT NOT NULL REFERENCES locations (id),
	quantity    BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (name, location_id)
);

CREATE INDEX IF NOT EXISTS idx_items_name ON items (name);

CREATE TABLE IF NOT EXISTS movements (
	id               TEXT PRIMARY KEY,
	item_name        TEXT NOT NULL,
	from_location_id BIGINT NOT NULL REFERENCES locations (id),
	to_location_id   BIGINT NOT NULL REFERENCES locations (id),
	quantity         BIGINT NOT NULL CHECK (quantity > 0),
	created_at       TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// InitSchema creates the tables when missing.
func InitSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}
