package verify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/google/uuid"
)

const uiSuite = "ui"

// Stable locator set for the inventory page. One selector per page region;
// the rendered HTML owns the matching data-testid attributes.
const (
	locPageTitle     = `[data-testid="page-title"]`
	locPageHeader    = `[data-testid="page-header"]`
	locAddForm       = `[data-testid="add-item-form"]`
	locMoveForm      = `[data-testid="move-item-form"]`
	locInventory     = `[data-testid="inventory-section"]`
	locTableBody     = `[data-testid="inventory-table-body"]`
	locInputName     = `[data-testid="input-item-name"]`
	locInputQty      = `[data-testid="input-item-quantity"]`
	locSelectLoc     = `[data-testid="select-item-location"]`
	locBtnAdd        = `[data-testid="btn-add-item"]`
	locInputMoveName = `[data-testid="input-move-item-name"]`
	locInputMoveQty  = `[data-testid="input-move-quantity"]`
	locSelectFrom    = `[data-testid="select-from-location"]`
	locSelectTo      = `[data-testid="select-to-location"]`
	locBtnMove       = `[data-testid="btn-move-item"]`
)

// UIVerifier drives a real browser against the rendered inventory page.
// Locator-not-found and mismatched displayed values are hard failures.
type UIVerifier struct {
	baseURL  string
	headless bool
	timeout  time.Duration
}

// NewUIVerifier builds the verifier.
func NewUIVerifier(baseURL string, headless bool) *UIVerifier {
	return &UIVerifier{baseURL: baseURL, headless: headless, timeout: 30 * time.Second}
}

// Run starts one browser session and executes the UI scenarios in sequence.
func (v *UIVerifier) Run(ctx context.Context) []Check {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.WindowSize(1920, 1080),
	)
	if !v.headless {
		opts = append(opts, chromedp.Flag("headless", false))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	return []Check{
		v.checkPageLoads(browserCtx),
		v.checkCriticalElements(browserCtx),
		v.checkAddItemShowsInTable(browserCtx),
		v.checkMoveUpdatesQuantities(browserCtx),
	}
}

// checkPageLoads: the page renders and the title names the application.
func (v *UIVerifier) checkPageLoads(ctx context.Context) Check {
	const name = "page_loads"
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	var title string
	err := chromedp.Run(ctx,
		chromedp.Navigate(v.baseURL),
		chromedp.WaitVisible(locPageTitle, chromedp.ByQuery),
		chromedp.Text(locPageTitle, &title, chromedp.ByQuery),
	)
	if err != nil {
		return fail(uiSuite, name, 0, "open page: %v", err)
	}
	if !strings.Contains(title, "FactoryFlow") {
		return fail(uiSuite, name, 0, "page title %q does not contain FactoryFlow", title)
	}
	return pass(uiSuite, name, 0, "page rendered with title %q", title)
}

// checkCriticalElements: every main page region is visible.
func (v *UIVerifier) checkCriticalElements(ctx context.Context) Check {
	const name = "critical_elements"
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	for _, sel := range []string{locPageHeader, locAddForm, locMoveForm, locInventory} {
		if err := chromedp.Run(ctx, chromedp.WaitVisible(sel, chromedp.ByQuery)); err != nil {
			return fail(uiSuite, name, 0, "locator not found: %s (%v)", sel, err)
		}
	}
	return pass(uiSuite, name, 0, "header, both forms and inventory section visible")
}

// checkAddItemShowsInTable: submit the add form and assert the new row shows
// the exact name and quantity.
func (v *UIVerifier) checkAddItemShowsInTable(ctx context.Context) Check {
	const name = "add_item_shows_in_table"
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	itemName := "Bolt " + uuid.New().String()
	if err := v.addItem(ctx, itemName, 10, "Warehouse A"); err != nil {
		return fail(uiSuite, name, 0, "submit add form: %v", err)
	}

	var tableText string
	if err := chromedp.Run(ctx, chromedp.Text(locTableBody, &tableText, chromedp.ByQuery)); err != nil {
		return fail(uiSuite, name, 0, "read table: %v", err)
	}
	if !strings.Contains(tableText, itemName) {
		return fail(uiSuite, name, 0, "row for %q not in rendered table", itemName)
	}
	qty, err := v.displayedQuantity(ctx, itemName, "Warehouse A")
	if err != nil {
		return fail(uiSuite, name, 0, "read quantity cell: %v", err)
	}
	if qty != 10 {
		return fail(uiSuite, name, 0, "displayed quantity %d, want 10", qty)
	}
	return pass(uiSuite, name, 0, "row %q with quantity 10 rendered", itemName)
}

// checkMoveUpdatesQuantities: add 100 at A, move 30 to B, assert rendered
// 70/30.
func (v *UIVerifier) checkMoveUpdatesQuantities(ctx context.Context) Check {
	const name = "move_updates_quantities"
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	itemName := "Move UI " + uuid.New().String()
	if err := v.addItem(ctx, itemName, 100, "Warehouse A"); err != nil {
		return fail(uiSuite, name, 0, "submit add form: %v", err)
	}
	if err := v.moveItem(ctx, itemName, 30, "Warehouse A", "Warehouse B"); err != nil {
		return fail(uiSuite, name, 0, "submit move form: %v", err)
	}

	src, err := v.displayedQuantity(ctx, itemName, "Warehouse A")
	if err != nil {
		return fail(uiSuite, name, 0, "read source quantity: %v", err)
	}
	dst, err := v.displayedQuantity(ctx, itemName, "Warehouse B")
	if err != nil {
		return fail(uiSuite, name, 0, "read destination quantity: %v", err)
	}
	if src != 70 || dst != 30 {
		return fail(uiSuite, name, 0, "displayed quantities src=%d dst=%d, want 70/30", src, dst)
	}
	return pass(uiSuite, name, 0, "source shows 70, destination shows 30")
}

// addItem fills and submits the add-item form, then waits for the page to
// settle after the redirect.
func (v *UIVerifier) addItem(ctx context.Context, name string, quantity int, location string) error {
	return chromedp.Run(ctx,
		chromedp.Navigate(v.baseURL),
		chromedp.WaitVisible(locAddForm, chromedp.ByQuery),
		chromedp.Clear(locInputName, chromedp.ByQuery),
		chromedp.SendKeys(locInputName, name, chromedp.ByQuery),
		chromedp.Clear(locInputQty, chromedp.ByQuery),
		chromedp.SendKeys(locInputQty, fmt.Sprintf("%d", quantity), chromedp.ByQuery),
		chromedp.SetValue(locSelectLoc, location, chromedp.ByQuery),
		chromedp.Click(locBtnAdd, chromedp.ByQuery),
		chromedp.WaitVisible(locTableBody, chromedp.ByQuery),
		chromedp.Sleep(300*time.Millisecond), // let the DOM settle after redirect
	)
}

// moveItem fills and submits the move form.
func (v *UIVerifier) moveItem(ctx context.Context, name string, quantity int, from, to string) error {
	return chromedp.Run(ctx,
		chromedp.Navigate(v.baseURL),
		chromedp.WaitVisible(locMoveForm, chromedp.ByQuery),
		chromedp.Clear(locInputMoveName, chromedp.ByQuery),
		chromedp.SendKeys(locInputMoveName, name, chromedp.ByQuery),
		chromedp.Clear(locInputMoveQty, chromedp.ByQuery),
		chromedp.SendKeys(locInputMoveQty, fmt.Sprintf("%d", quantity), chromedp.ByQuery),
		chromedp.SetValue(locSelectFrom, from, chromedp.ByQuery),
		chromedp.SetValue(locSelectTo, to, chromedp.ByQuery),
		chromedp.Click(locBtnMove, chromedp.ByQuery),
		chromedp.WaitVisible(locTableBody, chromedp.ByQuery),
		chromedp.Sleep(300*time.Millisecond),
	)
}

// displayedQuantity reads the quantity cell of the row matching item name and
// location; -1 when the row is missing.
func (v *UIVerifier) displayedQuantity(ctx context.Context, name, location string) (int, error) {
	js := fmt.Sprintf(`(() => {
		const row = document.querySelector('tr[data-item-name=%q][data-item-location=%q]');
		if (!row) return -1;
		const cell = row.querySelector('[data-testid^="item-quantity-"]');
		return cell ? parseInt(cell.textContent.trim(), 10) : -1;
	})()`, name, location)

	var qty int
	if err := chromedp.Run(ctx, chromedp.Evaluate(js, &qty)); err != nil {
		return 0, err
	}
	if qty < 0 {
		return 0, fmt.Errorf("no rendered row for %q at %q", name, location)
	}
	return qty, nil
}
