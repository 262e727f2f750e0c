package serper

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/projectcart/backend/internal/domain"
)

// priceCharsRegex strips currency symbols, thousands separators and any other
// decoration from a price string, keeping only digits and decimal points
var priceCharsRegex = regexp.MustCompile(`[^0-9.]`)

// ParsePrice parses a currency-formatted price string (e.g. "$1,299.99",
// "12.50 USD") into a positive float. Unparseable or non-positive prices
// are an error, never a zero default.
func ParsePrice(raw string) (float64, error) {
	cleaned := priceCharsRegex.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0, fmt.Errorf("no numeric content in price %q", raw)
	}

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed price %q: %w", raw, err)
	}

	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, fmt.Errorf("non-positive price %q", raw)
	}

	return price, nil
}

// NormalizeOffer validates and coerces a raw Serper result into a domain Offer.
// Returns false when the offer is unusable: missing title, missing retailer,
// or a price that cannot be parsed to a positive number.
func NormalizeOffer(raw domain.RawOffer) (domain.Offer, bool) {
	title := strings.TrimSpace(raw.Title)
	source := strings.TrimSpace(raw.Source)
	if title == "" || source == "" {
		return domain.Offer{}, false
	}

	price, err := ParsePrice(raw.Price)
	if err != nil {
		return domain.Offer{}, false
	}

	return domain.Offer{
		Title:       title,
		Price:       price,
		Source:      source,
		ImageURL:    raw.ImageURL,
		Link:        raw.Link,
		Rating:      raw.Rating,
		RatingCount: raw.RatingCount,
	}, true
}

// NormalizeOffers runs NormalizeOffer over a raw result set, dropping
// unusable offers and preserving the original retrieval order of the rest
func NormalizeOffers(raw []domain.RawOffer) []domain.Offer {
	offers := make([]domain.Offer, 0, len(raw))
	for _, r := range raw {
		if offer, ok := NormalizeOffer(r); ok {
			offers = append(offers, offer)
		}
	}
	return offers
}
