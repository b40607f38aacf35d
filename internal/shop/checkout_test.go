package shop

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shamisthub/storefront/internal/shop/store"
)

func newCheckoutSession(t *testing.T, items []Product) *Session {
	t.Helper()
	s := NewSession(Options{
		Store:         store.NewMemStore(),
		Source:        &fakeSource{items: items},
		WhatsAppPhone: "917845818017",
		AdminUsername: "admin",
		AdminPassword: "admin123",
	})
	s.Start(context.Background())
	return s
}

func TestCheckoutEmptyCartRedirects(t *testing.T) {
	s := newCheckoutSession(t, []Product{giftProduct(1, "A", 10)})

	res, err := s.Checkout(CustomerDetails{FirstName: "Asha"})
	require.NoError(t, err)
	assert.Equal(t, "cart", res.RedirectTo)
	assert.Empty(t, res.WhatsAppURL, "message must never be built for an empty cart")
}

func TestCheckoutBuildsDeepLinkAndClearsCart(t *testing.T) {
	s := newCheckoutSession(t, []Product{giftProduct(1, "Candle", 450), giftProduct(2, "Vase", 3500)})
	s.AddToCart(1)
	s.AddToCart(2)

	res, err := s.Checkout(CustomerDetails{
		FirstName: "Asha", LastName: "Rao",
		Phone: "9876543210", Email: "asha@example.com",
		Address: "12 MG Road", City: "Bengaluru", Zip: "560001",
	})
	require.NoError(t, err)
	assert.Empty(t, res.RedirectTo)
	assert.NotEmpty(t, res.OrderRef)
	require.True(t, strings.HasPrefix(res.WhatsAppURL, "https://wa.me/917845818017?text="))

	raw := strings.TrimPrefix(res.WhatsAppURL, "https://wa.me/917845818017?text=")
	message, err := url.QueryUnescape(raw)
	require.NoError(t, err)

	assert.Contains(t, message, "Asha Rao")
	assert.Contains(t, message, "Mobile: 9876543210")
	assert.Contains(t, message, "Address: 12 MG Road, Bengaluru - 560001")
	assert.Contains(t, message, "- Candle: ₹450")
	assert.Contains(t, message, "- Vase: ₹3,500")
	assert.Contains(t, message, "*Total Amount: ₹3,950*")

	// cart cleared and persisted after the handoff
	assert.Equal(t, 0, s.Cart().Count())
}

func TestCheckoutSendsOwnerMailBestEffort(t *testing.T) {
	mailer := &recordingMailer{}
	s := NewSession(Options{
		Store:         store.NewMemStore(),
		Source:        &fakeSource{items: []Product{giftProduct(1, "Candle", 450)}},
		WhatsAppPhone: "917845818017",
		Mailer:        mailer,
	})
	s.Start(context.Background())
	s.AddToCart(1)

	_, err := s.Checkout(CustomerDetails{FirstName: "Asha"})
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Contains(t, mailer.sent[0], "Candle")
}

type recordingMailer struct {
	sent []string
}

func (m *recordingMailer) Send(subject, body string) error {
	m.sent = append(m.sent, body)
	return nil
}
