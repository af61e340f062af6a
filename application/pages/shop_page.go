package pages

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"web_controls/application/controls"
	"web_controls/domain/entities"
	"web_controls/domain/interfaces"
)

const ShopPath = "/angularpractice/shop"

var (
	shopCheckoutButton = entities.CSS("a[class*='btn-primary']")
	shopProductCard    = entities.XPath("//div[@class='card h-100']")
	shopProductName    = entities.XPath("div/h4/a")
	shopProductAdd     = entities.XPath("div/button")

	checkoutButton           = entities.XPath("//button[contains(@class,'btn-success')]")
	checkoutContinueShopping = entities.XPath("//button[contains(@class,'btn-default')]")
	checkoutProductRow       = entities.XPath("//input[@class='form-control']/parent::td/parent::tr")
	checkoutRowName          = entities.CSS("td:nth-child(1) .media-body h4 a")
	checkoutRowQuantity      = entities.CSS("input[class='form-control']")
	checkoutRowPrice         = entities.CSS("td:nth-child(3)")
	checkoutRowTotal         = entities.CSS("td:nth-child(4)")
	checkoutRowRemove        = entities.CSS("button[class='btn btn-danger']")
	checkoutTotalPrice       = entities.CSS("td[class='text-right'] h3")

	deliveryCountry      = entities.ID("country")
	deliverySuggestions  = entities.CSS("div[class='suggestions'] a")
	deliverySuggestion   = entities.XPath("//a[text()='%s']")
	deliveryTerms        = entities.CSS("div[class*='checkbox']")
	deliveryPurchase     = entities.CSS("input[type='submit']")
	deliveryAlert        = entities.NewLocator(entities.ByClassName, "alert-success")
	deliveryAlertDismiss = entities.CSS("a[data-dismiss='alert']")
)

// ShopPage is the product list of the ProtoCommerce shop
type ShopPage struct {
	*BasePage
}

func NewShopPage(driver interfaces.Driver, baseURL string, opts ...controls.Option) *ShopPage {
	return &ShopPage{BasePage: NewBasePage(driver, baseURL+ShopPath, opts...)}
}

func (p *ShopPage) CheckoutButton(ctx context.Context) (*controls.Button, error) {
	return controls.NewButton(ctx, p.driver, shopCheckoutButton, p.opts...)
}

// AddProductToCart clicks "Add" on the first card named product
func (p *ShopPage) AddProductToCart(ctx context.Context, product string) error {
	cards, err := p.driver.FindElements(ctx, shopProductCard)
	if err != nil {
		return err
	}

	for _, card := range cards {
		name, err := card.FindElement(ctx, shopProductName)
		if err != nil {
			return err
		}
		text, err := name.Text(ctx)
		if err != nil {
			return err
		}
		if text != product {
			continue
		}

		add, err := card.FindElement(ctx, shopProductAdd)
		if err != nil {
			return err
		}
		return add.Click(ctx)
	}
	return errors.Wrapf(entities.ErrNotFound, "product %q", product)
}

// ProductsInCart reads the count from the checkout button, e.g. " Checkout ( 2 )"
func (p *ShopPage) ProductsInCart(ctx context.Context) (int, error) {
	button, err := p.CheckoutButton(ctx)
	if err != nil {
		return 0, err
	}
	text, err := button.GetText(ctx)
	if err != nil {
		return 0, err
	}
	return parseCartCount(text)
}

func parseCartCount(text string) (int, error) {
	open := strings.Index(text, "(")
	end := strings.LastIndex(text, ")")
	if open < 0 || end < open {
		return 0, errors.Wrapf(entities.ErrUnexpectedType, "no count in %q", text)
	}
	n, err := strconv.Atoi(strings.TrimSpace(text[open+1 : end]))
	if err != nil {
		return 0, errors.Wrapf(entities.ErrUnexpectedType, "count in %q", text)
	}
	return n, nil
}

func (p *ShopPage) GoToCheckout(ctx context.Context) (*CheckoutPage, error) {
	button, err := p.CheckoutButton(ctx)
	if err != nil {
		return nil, err
	}
	if err := button.Click(ctx); err != nil {
		return nil, err
	}
	return &CheckoutPage{BasePage: p.BasePage}, nil
}

// CheckoutPage is the cart view of the shop
type CheckoutPage struct {
	*BasePage
}

func (p *CheckoutPage) CheckoutButton(ctx context.Context) (*controls.Button, error) {
	return controls.NewButton(ctx, p.driver, checkoutButton, p.opts...)
}

func (p *CheckoutPage) ContinueShoppingButton(ctx context.Context) (*controls.Button, error) {
	return controls.NewButton(ctx, p.driver, checkoutContinueShopping, p.opts...)
}

// Products returns one entry per cart row
func (p *CheckoutPage) Products(ctx context.Context) ([]*CartProduct, error) {
	rows, err := p.driver.FindElements(ctx, checkoutProductRow)
	if err != nil {
		return nil, err
	}
	products := make([]*CartProduct, 0, len(rows))
	for _, row := range rows {
		products = append(products, &CartProduct{row: row})
	}
	return products, nil
}

// TotalPrice is the sum shown below the cart
func (p *CheckoutPage) TotalPrice(ctx context.Context) (float64, error) {
	el, err := p.driver.FindElement(ctx, checkoutTotalPrice)
	if err != nil {
		return 0, err
	}
	return readPrice(ctx, el)
}

func (p *CheckoutPage) GoToDelivery(ctx context.Context) (*DeliveryLocationPage, error) {
	button, err := p.CheckoutButton(ctx)
	if err != nil {
		return nil, err
	}
	if err := button.Click(ctx); err != nil {
		return nil, err
	}
	return &DeliveryLocationPage{BasePage: p.BasePage}, nil
}

// CartProduct is a row of the checkout table
type CartProduct struct {
	row interfaces.Element
}

func (c *CartProduct) Name(ctx context.Context) (string, error) {
	el, err := c.row.FindElement(ctx, checkoutRowName)
	if err != nil {
		return "", err
	}
	return el.Text(ctx)
}

func (c *CartProduct) Quantity(ctx context.Context) (float64, error) {
	el, err := c.row.FindElement(ctx, checkoutRowQuantity)
	if err != nil {
		return 0, err
	}
	v, err := el.GetAttribute(ctx, "value")
	if err != nil {
		return 0, err
	}
	q, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, errors.Wrapf(entities.ErrUnexpectedType, "quantity %q", v)
	}
	return q, nil
}

func (c *CartProduct) Price(ctx context.Context) (float64, error) {
	el, err := c.row.FindElement(ctx, checkoutRowPrice)
	if err != nil {
		return 0, err
	}
	return readPrice(ctx, el)
}

// Total should equal quantity times price
func (c *CartProduct) Total(ctx context.Context) (float64, error) {
	el, err := c.row.FindElement(ctx, checkoutRowTotal)
	if err != nil {
		return 0, err
	}
	return readPrice(ctx, el)
}

func (c *CartProduct) Remove(ctx context.Context) error {
	el, err := c.row.FindElement(ctx, checkoutRowRemove)
	if err != nil {
		return err
	}
	return el.Click(ctx)
}

// ChangeQuantity types a new quantity, confirms it with Enter and checks it was taken
func (c *CartProduct) ChangeQuantity(ctx context.Context, quantity float64) error {
	el, err := c.row.FindElement(ctx, checkoutRowQuantity)
	if err != nil {
		return err
	}
	if err := el.Clear(ctx); err != nil {
		return err
	}
	if err := el.SendKeys(ctx, strconv.FormatFloat(quantity, 'f', -1, 64)+"\n"); err != nil {
		return err
	}

	got, err := c.Quantity(ctx)
	if err != nil {
		return err
	}
	if got != quantity {
		return errors.Wrapf(entities.ErrValueMismatch, "quantity is %v, want %v", got, quantity)
	}
	return nil
}

// readPrice parses cells like "₹. 65000", taking the last word as the amount
func readPrice(ctx context.Context, el interfaces.Element) (float64, error) {
	text, err := el.Text(ctx)
	if err != nil {
		return 0, err
	}
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, errors.Wrapf(entities.ErrUnexpectedType, "empty price")
	}
	price, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return 0, errors.Wrapf(entities.ErrUnexpectedType, "price %q", text)
	}
	return price, nil
}

// DeliveryLocationPage is the last step of the shop checkout
type DeliveryLocationPage struct {
	*BasePage
}

func (p *DeliveryLocationPage) CountryDropdown(ctx context.Context) (*controls.DynamicDropdown, error) {
	return controls.NewDynamicDropdown(ctx, p.driver, deliveryCountry, deliverySuggestions, deliverySuggestion, p.opts...)
}

func (p *DeliveryLocationPage) TermsCheckbox(ctx context.Context) (*controls.Checkbox, error) {
	return controls.NewCheckbox(ctx, p.driver, deliveryTerms, p.opts...)
}

func (p *DeliveryLocationPage) PurchaseButton(ctx context.Context) (*controls.Button, error) {
	return controls.NewButton(ctx, p.driver, deliveryPurchase, p.opts...)
}

func (p *DeliveryLocationPage) AlertLabel(ctx context.Context) (*controls.Label, error) {
	return controls.NewLabel(ctx, p.driver, deliveryAlert, p.opts...)
}

func (p *DeliveryLocationPage) AlertCloseButton(ctx context.Context) (*controls.Button, error) {
	return controls.NewButton(ctx, p.driver, deliveryAlertDismiss, p.opts...)
}

// Purchase picks the country from the first charNum typed characters,
// accepts the terms and submits the order. It returns the confirmation text.
func (p *DeliveryLocationPage) Purchase(ctx context.Context, country string, charNum int) (string, error) {
	dropdown, err := p.CountryDropdown(ctx)
	if err != nil {
		return "", err
	}
	if err := dropdown.SelectByPartialValue(ctx, country, charNum); err != nil {
		return "", fmt.Errorf("failed to choose %s: %w", country, err)
	}

	terms, err := p.TermsCheckbox(ctx)
	if err != nil {
		return "", err
	}
	if err := terms.Click(ctx); err != nil {
		return "", err
	}

	purchase, err := p.PurchaseButton(ctx)
	if err != nil {
		return "", err
	}
	if err := purchase.Click(ctx); err != nil {
		return "", err
	}

	alert, err := p.AlertLabel(ctx)
	if err != nil {
		return "", err
	}
	return alert.GetText(ctx)
}
