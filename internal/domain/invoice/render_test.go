//go:build unit

package invoice_test

import (
	"strings"
	"testing"

	"kayak-console/internal/domain/invoice"
	"kayak-console/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderProForma(t *testing.T) {
	t.Run("renders a complete document", func(t *testing.T) {
		inv := builder.NewInvoiceBuilder().WithTotalAmount(1150).WithAmountPaid(0).BuildDomain()
		html := invoice.RenderProForma(inv, johannesburg)

		assert.True(t, strings.HasPrefix(html, "<!doctype html>"))
		assert.Contains(t, html, "PROFORMA INVOICE")
		assert.Contains(t, html, "INV-2026-0042")
		assert.Contains(t, html, "Alice Example")
		assert.Contains(t, html, "Sunset Paddle (14 March 2026)")
		assert.Contains(t, html, "Cape Kayak Adventures")
		assert.Contains(t, html, "Standard Bank")
		assert.Contains(t, html, "VAT - 15.0%")
		assert.Contains(t, html, ">1,000.00<")
		assert.Contains(t, html, ">150.00<")
		assert.Contains(t, html, "R1,150.00")
	})

	t.Run("escapes customer supplied fields", func(t *testing.T) {
		inv := builder.NewInvoiceBuilder().
			WithCustomerName(`<script>alert("x")</script>`).
			WithNotes("Upgraded & re-priced <twice>").
			BuildDomain()
		html := invoice.RenderProForma(inv, johannesburg)

		assert.NotContains(t, html, "<script>alert")
		assert.Contains(t, html, "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;")
		assert.Contains(t, html, "Price Change Reason: Upgraded &amp; re-priced &lt;twice&gt;")
	})

	t.Run("missing fields fall back to safe text", func(t *testing.T) {
		inv := builder.NewInvoiceBuilder().
			WithoutInvoiceNumber().
			WithoutCustomer().
			WithoutTourName().
			WithoutAmounts().
			BuildDomain()
		html := invoice.RenderProForma(inv, johannesburg)

		assert.Contains(t, html, "Customer")
		assert.Contains(t, html, "Kayak booking (")
		assert.NotContains(t, html, "null")
		assert.NotContains(t, html, "undefined")
		assert.NotContains(t, html, "&lt;nil&gt;")
		assert.NotContains(t, html, "<nil>")
	})

	t.Run("note row is omitted when there are no notes", func(t *testing.T) {
		inv := builder.NewInvoiceBuilder().BuildDomain()
		require.Nil(t, inv.Notes)
		html := invoice.RenderProForma(inv, johannesburg)
		assert.NotContains(t, html, "Price Change Reason")
	})

	t.Run("deterministic output", func(t *testing.T) {
		inv := builder.NewInvoiceBuilder().BuildDomain()
		first := invoice.RenderProForma(inv, johannesburg)
		second := invoice.RenderProForma(inv, johannesburg)
		assert.Equal(t, first, second)
	})
}

func TestFileName(t *testing.T) {
	inv := builder.NewInvoiceBuilder().BuildDomain()
	assert.Equal(t, "proforma-INV-2026-0042.html", invoice.FileName(inv))
}
