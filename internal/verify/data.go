package verify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dataSuite = "data"

// DataVerifier mutates inventory through the API, then asserts ground truth
// with direct SQL. This is the only verifier that can distinguish "the API
// reported success" from "the data actually changed".
type DataVerifier struct {
	baseURL string
	client  *http.Client
	db      *pgxpool.Pool
}

// NewDataVerifier builds the verifier. db must be a connection to the same
// database the API uses, opened independently of the API process.
func NewDataVerifier(baseURL string, db *pgxpool.Pool, client *http.Client) *DataVerifier {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &DataVerifier{baseURL: baseURL, client: client, db: db}
}

// Run executes the data-integrity scenarios.
func (v *DataVerifier) Run(ctx context.Context) []Check {
	return []Check{
		v.checkCreatedRowExists(ctx),
		v.checkCanonicalMove(ctx),
		v.checkConservation(ctx),
		v.checkInsufficientNoEffect(ctx),
	}
}

// checkCreatedRowExists: after POST /inventory the row must exist in the DB.
func (v *DataVerifier) checkCreatedRowExists(ctx context.Context) Check {
	const name = "created_row_exists"
	item := "DB Probe " + uuid.New().String()

	if err := v.createItem(ctx, item, 42, "Warehouse A"); err != nil {
		return fail(dataSuite, name, 0, "create via API: %v", err)
	}
	qty, found, err := v.quantityAt(ctx, item, "Warehouse A")
	if err != nil {
		return fail(dataSuite, name, 0, "direct SQL read: %v", err)
	}
	if !found {
		return fail(dataSuite, name, 0, "API returned 201 but no row exists for %q", item)
	}
	if qty != 42 {
		return fail(dataSuite, name, 0, "stored quantity %d, want 42", qty)
	}
	return pass(dataSuite, name, 0, "row present with quantity 42")
}

// checkCanonicalMove: create 100 at A, move 5 to B via the API, then direct
// SQL must read 95 at A and 5 at B.
func (v *DataVerifier) checkCanonicalMove(ctx context.Context) Check {
	const name = "canonical_move"
	item := "Move Integrity " + uuid.New().String()

	if err := v.createItem(ctx, item, 100, "Warehouse A"); err != nil {
		return fail(dataSuite, name, 0, "create via API: %v", err)
	}
	if status, err := v.move(ctx, item, 5, "Warehouse A", "Warehouse B"); err != nil || status != http.StatusOK {
		return fail(dataSuite, name, 0, "move via API: status %d, err %v", status, err)
	}

	qtyA, _, err := v.quantityAt(ctx, item, "Warehouse A")
	if err != nil {
		return fail(dataSuite, name, 0, "direct SQL read A: %v", err)
	}
	qtyB, _, err := v.quantityAt(ctx, item, "Warehouse B")
	if err != nil {
		return fail(dataSuite, name, 0, "direct SQL read B: %v", err)
	}
	if qtyA != 95 || qtyB != 5 {
		return fail(dataSuite, name, 0, "stored state A=%d B=%d, want A=95 B=5", qtyA, qtyB)
	}
	return pass(dataSuite, name, 0, "A=95 B=5 after moving 5 of 100")
}

// checkConservation: the total across locations is unchanged by chained moves.
func (v *DataVerifier) checkConservation(ctx context.Context) Check {
	const name = "conservation"
	item := "Conservation " + uuid.New().String()

	if err := v.createItem(ctx, item, 50, "Warehouse A"); err != nil {
		return fail(dataSuite, name, 0, "create via API: %v", err)
	}
	if err := v.createItem(ctx, item, 30, "Warehouse B"); err != nil {
		return fail(dataSuite, name, 0, "create via API: %v", err)
	}

	before, err := v.totalQuantity(ctx, item)
	if err != nil {
		return fail(dataSuite, name, 0, "direct SQL total: %v", err)
	}

	if status, err := v.move(ctx, item, 10, "Warehouse A", "Warehouse B"); err != nil || status != http.StatusOK {
		return fail(dataSuite, name, 0, "first move: status %d, err %v", status, err)
	}
	if status, err := v.move(ctx, item, 5, "Warehouse B", "Warehouse C"); err != nil || status != http.StatusOK {
		return fail(dataSuite, name, 0, "second move: status %d, err %v", status, err)
	}

	after, err := v.totalQuantity(ctx, item)
	if err != nil {
		return fail(dataSuite, name, 0, "direct SQL total: %v", err)
	}
	if before != after {
		return fail(dataSuite, name, 0, "total changed from %d to %d", before, after)
	}
	return pass(dataSuite, name, 0, "total %d conserved across two moves", after)
}

// checkInsufficientNoEffect: a rejected move must leave no partial state.
func (v *DataVerifier) checkInsufficientNoEffect(ctx context.Context) Check {
	const name = "insufficient_no_effect"
	item := "Insufficient " + uuid.New().String()

	if err := v.createItem(ctx, item, 5, "Warehouse A"); err != nil {
		return fail(dataSuite, name, 0, "create via API: %v", err)
	}
	status, err := v.move(ctx, item, 10, "Warehouse A", "Warehouse B")
	if err != nil {
		return fail(dataSuite, name, 0, "move via API: %v", err)
	}
	if status != http.StatusBadRequest {
		return fail(dataSuite, name, 0, "over-move returned status %d, want 400", status)
	}

	qtyA, _, err := v.quantityAt(ctx, item, "Warehouse A")
	if err != nil {
		return fail(dataSuite, name, 0, "direct SQL read A: %v", err)
	}
	_, foundB, err := v.quantityAt(ctx, item, "Warehouse B")
	if err != nil {
		return fail(dataSuite, name, 0, "direct SQL read B: %v", err)
	}
	if qtyA != 5 || foundB {
		return fail(dataSuite, name, 0, "partial effect after rejected move: A=%d, B-row=%v", qtyA, foundB)
	}
	return pass(dataSuite, name, 0, "rejected move left both locations untouched")
}

// quantityAt reads the stored quantity of an item at a location, bypassing
// the API.
func (v *DataVerifier) quantityAt(ctx context.Context, item, location string) (int64, bool, error) {
	var qty int64
	err := v.db.QueryRow(ctx, `
		SELECT i.quantity
		FROM items i JOIN locations l ON l.id = i.location_id
		WHERE i.name = $1 AND l.name = $2`, item, location,
	).Scan(&qty)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return qty, true, nil
}

// totalQuantity sums an item's quantity across all locations.
func (v *DataVerifier) totalQuantity(ctx context.Context, item string) (int64, error) {
	var total int64
	err := v.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM items WHERE name = $1`, item,
	).Scan(&total)
	return total, err
}

func (v *DataVerifier) createItem(ctx context.Context, name string, quantity int64, location string) error {
	status, err := v.postJSON(ctx, "/inventory", map[string]any{
		"name": name, "quantity": quantity, "location": location,
	})
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("POST /inventory: status %d", status)
	}
	return nil
}

func (v *DataVerifier) move(ctx context.Context, item string, quantity int64, from, to string) (int, error) {
	return v.postJSON(ctx, "/move", map[string]any{
		"item": item, "quantity": quantity, "from_location": from, "to_location": to,
	})
}

func (v *DataVerifier) postJSON(ctx context.Context, path string, body any) (int, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return 0, fmt.Errorf("marshal body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.StatusCode, nil
}
