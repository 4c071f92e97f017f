package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factoryflow/factoryflow-api/internal/application/dto"
)

func getHomeHTML(t *testing.T, app *fiber.App) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestHome_CarriesLocatorContract(t *testing.T) {
	app := buildTestApp(newMemStore("Warehouse A", "Warehouse B"), nil)
	html := getHomeHTML(t, app)

	assert.Contains(t, html, "FactoryFlow")
	for _, locator := range []string{
		`data-testid="page-header"`,
		`data-testid="page-title"`,
		`data-testid="add-item-form"`,
		`data-testid="input-item-name"`,
		`data-testid="input-item-quantity"`,
		`data-testid="select-item-location"`,
		`data-testid="btn-add-item"`,
		`data-testid="move-item-form"`,
		`data-testid="input-move-item-name"`,
		`data-testid="input-move-quantity"`,
		`data-testid="select-from-location"`,
		`data-testid="select-to-location"`,
		`data-testid="btn-move-item"`,
		`data-testid="inventory-section"`,
		`data-testid="inventory-table-body"`,
	} {
		assert.Contains(t, html, locator)
	}
}

func TestHome_RendersInventoryRows(t *testing.T) {
	app := buildTestApp(newMemStore("Warehouse A"), nil)
	doJSON(t, app, http.MethodPost, "/inventory", dto.CreateItemRequest{
		Name: "Bolt", Quantity: 12, Location: "Warehouse A",
	})

	html := getHomeHTML(t, app)
	assert.Contains(t, html, `data-testid="inventory-row-1"`)
	assert.Contains(t, html, `data-item-name="Bolt"`)
	assert.Contains(t, html, `data-item-location="Warehouse A"`)
	assert.Contains(t, html, `data-testid="item-quantity-1"`)
}

func postForm(t *testing.T, app *fiber.App, path string, values url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAddItemForm_RedirectsAndPersists(t *testing.T) {
	store := newMemStore("Warehouse A")
	app := buildTestApp(store, nil)

	resp := postForm(t, app, "/add-item-form", url.Values{
		"name":     {"Gear"},
		"quantity": {"4"},
		"location": {"Warehouse A"},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	html := getHomeHTML(t, app)
	assert.Contains(t, html, `data-item-name="Gear"`)
}

func TestMoveItemForm_RedirectsAndMoves(t *testing.T) {
	store := newMemStore("Warehouse A", "Warehouse B")
	app := buildTestApp(store, nil)
	doJSON(t, app, http.MethodPost, "/inventory", dto.CreateItemRequest{
		Name: "Gear", Quantity: 10, Location: "Warehouse A",
	})

	resp := postForm(t, app, "/move-item-form", url.Values{
		"item_name":     {"Gear"},
		"quantity":      {"3"},
		"from_location": {"Warehouse A"},
		"to_location":   {"Warehouse B"},
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	list := doJSON(t, app, http.MethodGet, "/inventory?location=Warehouse+B", nil)
	defer list.Body.Close()
	var items []dto.ItemResponse
	require.NoError(t, json.NewDecoder(list.Body).Decode(&items))
	require.Len(t, items, 1)
	assert.Equal(t, int64(3), items[0].Quantity)
}
