package http

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/factoryflow/factoryflow-api/internal/application/inventory"
	"github.com/factoryflow/factoryflow-api/internal/domain/entity"
)

//go:embed templates/index.html
var templateFS embed.FS

var homeTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// HomeHandler renders the HTML frontend and handles its form posts. The page
// carries the data-testid locator contract the UI verifier depends on.
type HomeHandler struct {
	uc     *inventory.UseCase
	moveUC *inventory.MoveUseCase
}

// NewHomeHandler builds the handler.
func NewHomeHandler(uc *inventory.UseCase, moveUC *inventory.MoveUseCase) *HomeHandler {
	return &HomeHandler{uc: uc, moveUC: moveUC}
}

type homePageData struct {
	Items     []*entity.Item
	Locations []*entity.Location
}

// Home renders the inventory page with both forms and the current table.
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), "")
	if err != nil {
		return err
	}
	locations, err := h.uc.ListLocations(c.Context())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := homeTemplate.Execute(&buf, homePageData{Items: items, Locations: locations}); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

type addItemForm struct {
	Name     string `form:"name"`
	Quantity int64  `form:"quantity"`
	Location string `form:"location"`
}

// AddItemForm handles the add-item form post and redirects back to the page.
// Form errors are swallowed; the JSON API is the surface with precise error
// reporting.
func (h *HomeHandler) AddItemForm(c *fiber.Ctx) error {
	var in addItemForm
	if err := c.BodyParser(&in); err == nil {
		_, _ = h.uc.Add(c.Context(), in.Name, in.Location, in.Quantity)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

type moveItemForm struct {
	ItemName     string `form:"item_name"`
	Quantity     int64  `form:"quantity"`
	FromLocation string `form:"from_location"`
	ToLocation   string `form:"to_location"`
}

// MoveItemForm handles the move form post and redirects back to the page.
func (h *HomeHandler) MoveItemForm(c *fiber.Ctx) error {
	var in moveItemForm
	if err := c.BodyParser(&in); err == nil {
		_, _ = h.moveUC.Move(c.Context(), inventory.MoveInput{
			Item:         in.ItemName,
			FromLocation: in.FromLocation,
			ToLocation:   in.ToLocation,
			Quantity:     in.Quantity,
		})
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
