package shop

import (
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/shamisthub/storefront/pkg/common"
	"github.com/shamisthub/storefront/pkg/currency"
)

// CustomerDetails is what the checkout form collects.
type CustomerDetails struct {
	FirstName string `json:"fname" form:"fname"`
	LastName  string `json:"lname" form:"lname"`
	Phone     string `json:"phone" form:"phone"`
	Email     string `json:"email" form:"email"`
	Address   string `json:"address" form:"address"`
	City      string `json:"city" form:"city"`
	Zip       string `json:"zip" form:"zip"`
}

// CheckoutResult is the handoff outcome. Either RedirectTo is set (the
// cart was empty, the message was never built) or WhatsAppURL carries the
// deep link the caller should open.
type CheckoutResult struct {
	RedirectTo  string `json:"redirect_to,omitempty"`
	OrderRef    string `json:"order_ref,omitempty"`
	WhatsAppURL string `json:"whatsapp_url,omitempty"`
}

// Mailer sends the optional owner notification; checkout treats it as
// best effort.
type Mailer interface {
	Send(subject, body string) error
}

// buildOrderMessage formats the order text block sent over the deep
// link: customer block, itemized lines with display prices, total.
func buildOrderMessage(details CustomerDetails, items []Product, total float64, ref string) string {
	var b strings.Builder
	fullName := strings.TrimSpace(details.FirstName + " " + details.LastName)
	fmt.Fprintf(&b, "*New Order %s from %s*\n\n", ref, fullName)
	b.WriteString("*Customer Details:*\n")
	fmt.Fprintf(&b, "Name: %s\n", fullName)
	fmt.Fprintf(&b, "Mobile: %s\n", details.Phone)
	fmt.Fprintf(&b, "Email: %s\n", details.Email)
	fmt.Fprintf(&b, "Address: %s, %s - %s\n\n", details.Address, details.City, details.Zip)

	b.WriteString("*Items:*\n")
	for _, item := range items {
		fmt.Fprintf(&b, "- %s: %s\n", item.Name, currency.Format(item.Price))
	}
	fmt.Fprintf(&b, "\n*Total Amount: %s*", currency.Format(total))
	return b.String()
}

// Checkout turns the cart into a WhatsApp handoff. An empty cart never
// reaches message construction; the shopper is sent back to the cart
// page. On success the cart is cleared and persisted, and the shop
// owner gets a best-effort mail copy when a mailer is configured.
func (s *Session) Checkout(details CustomerDetails) (CheckoutResult, error) {
	if s.cart.Count() == 0 {
		return CheckoutResult{RedirectTo: "cart"}, nil
	}

	ref := "#" + common.NextRef()
	message := buildOrderMessage(details, s.cart.Items(), s.cart.Total(), ref)
	link := "https://wa.me/" + s.whatsappPhone + "?text=" + url.QueryEscape(message)

	s.cart.Clear()

	if s.mailer != nil {
		if err := s.mailer.Send("New order "+ref, message); err != nil {
			zap.L().Warn("order notification mail failed", zap.Error(err))
		}
	}

	zap.L().Info("checkout handoff built",
		zap.String("ref", ref),
		zap.String("customer", details.FirstName+" "+details.LastName))
	return CheckoutResult{OrderRef: ref, WhatsAppURL: link}, nil
}
