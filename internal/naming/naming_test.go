package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"ID", []string{"ID"}},
		{"OrderID", []string{"Order", "ID"}},
		{"customerName", []string{"customer", "Name"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"order_item-id", []string{"order", "item", "id"}},
		{"pkg.Name", []string{"pkg", "Name"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokenize(tt.input))
		})
	}
}

func TestNormalize(t *testing.T) {
	for _, in := range []string{"OrderID", "order_id", "order-id", "orderId", "ORDER_ID"} {
		assert.Equal(t, "orderid", Normalize(in), in)
	}
}

func TestSnakeCase(t *testing.T) {
	tests := map[string]string{
		"":               "",
		"ID":             "id",
		"OrderID":        "order_id",
		"PriceCents":     "price_cents",
		"XMLParser":      "xml_parser",
		"already_snake":  "already_snake",
		"CreatedAtUTC":   "created_at_utc",
		"DefaultAddress": "default_address",
	}

	for in, want := range tests {
		assert.Equal(t, want, SnakeCase(in), in)
	}
}

func TestSingular(t *testing.T) {
	tests := map[string]string{
		"books":      "book",
		"categories": "category",
		"addresses":  "address",
		"address":    "address",
		"s":          "s",
		"tag":        "tag",
	}

	for in, want := range tests {
		assert.Equal(t, want, Singular(in), in)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"hello", "hello", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"ab", "abc", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"Hello", "hello", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Distance(tt.a, tt.b))
			assert.Equal(t, tt.expected, Distance(tt.b, tt.a), "distance must be symmetric")
		})
	}
}

func TestLikeness(t *testing.T) {
	assert.InDelta(t, 1.0, Likeness("", ""), 1e-9)
	assert.InDelta(t, 1.0, Likeness("Books", "Book"), 1e-9)
	assert.InDelta(t, 1.0, Likeness("Categories", "category"), 1e-9)
	assert.InDelta(t, 0.0, Likeness("abc", "xyz"), 1e-9)

	assert.Greater(t, Likeness("Books", "Book"), Likeness("Favorites", "Book"))
	assert.Greater(t, Likeness("Authors", "Author"), Likeness("Editors", "Author"))
}
