package usecase

import (
	"reflect"
	"testing"

	"github.com/projectcart/backend/internal/domain"
)

func resultWithOffers(itemName string, offers ...domain.Offer) domain.ItemSearchResult {
	return domain.ItemSearchResult{
		ItemName:  itemName,
		AllOffers: offers,
	}
}

func offer(source string, price float64) domain.Offer {
	return domain.Offer{Title: source + " offer", Price: price, Source: source}
}

func TestBuildRetailerBundles(t *testing.T) {
	t.Run("single retailer covers all items", func(t *testing.T) {
		results := []domain.ItemSearchResult{
			resultWithOffers("hammer", offer("X", 10)),
			resultWithOffers("nails", offer("X", 20)),
		}

		bundles := BuildRetailerBundles(results, 5)

		if len(bundles) != 1 {
			t.Fatalf("bundles = %d, want 1", len(bundles))
		}
		b := bundles[0]
		if b.Retailer != "X" {
			t.Errorf("retailer = %s, want X", b.Retailer)
		}
		if b.ItemCount != 2 {
			t.Errorf("itemCount = %d, want 2", b.ItemCount)
		}
		if b.TotalPrice != 30.00 {
			t.Errorf("totalPrice = %v, want 30.00", b.TotalPrice)
		}
		if b.Completeness != 100 {
			t.Errorf("completeness = %d, want 100", b.Completeness)
		}
		if b.MissingItems != 0 {
			t.Errorf("missingItems = %d, want 0", b.MissingItems)
		}
	})

	t.Run("completeness beats price in ranking", func(t *testing.T) {
		results := []domain.ItemSearchResult{
			resultWithOffers("item1", offer("A", 5), offer("B", 8)),
			resultWithOffers("item2", offer("B", 3)),
		}

		bundles := BuildRetailerBundles(results, 5)

		if len(bundles) != 2 {
			t.Fatalf("bundles = %d, want 2", len(bundles))
		}

		// B supplies both items so it outranks the cheaper A
		if bundles[0].Retailer != "B" {
			t.Errorf("top bundle = %s, want B", bundles[0].Retailer)
		}
		if bundles[0].ItemCount != 2 || bundles[0].TotalPrice != 11.00 || bundles[0].Completeness != 100 {
			t.Errorf("B bundle = %+v, want 2 items at 11.00, 100%%", bundles[0])
		}
		if bundles[1].Retailer != "A" {
			t.Errorf("second bundle = %s, want A", bundles[1].Retailer)
		}
		if bundles[1].ItemCount != 1 || bundles[1].TotalPrice != 5.00 || bundles[1].Completeness != 50 {
			t.Errorf("A bundle = %+v, want 1 item at 5.00, 50%%", bundles[1])
		}
		if bundles[1].MissingItems != 1 {
			t.Errorf("A missingItems = %d, want 1", bundles[1].MissingItems)
		}
	})

	t.Run("retailer contributes only cheapest offer per item", func(t *testing.T) {
		results := []domain.ItemSearchResult{
			resultWithOffers("stool", offer("X", 25), offer("X", 15), offer("X", 35)),
		}

		bundles := BuildRetailerBundles(results, 5)

		if len(bundles) != 1 {
			t.Fatalf("bundles = %d, want 1", len(bundles))
		}
		if bundles[0].ItemCount != 1 {
			t.Errorf("itemCount = %d, want 1 (never two offers for the same item)", bundles[0].ItemCount)
		}
		if bundles[0].TotalPrice != 15.00 {
			t.Errorf("totalPrice = %v, want 15.00 (cheapest wins)", bundles[0].TotalPrice)
		}
	})

	t.Run("no item name appears twice in a bundle", func(t *testing.T) {
		results := []domain.ItemSearchResult{
			resultWithOffers("stool", offer("X", 25), offer("X", 15)),
			resultWithOffers("lights", offer("X", 12), offer("X", 30), offer("Y", 9)),
		}

		bundles := BuildRetailerBundles(results, 5)

		for _, b := range bundles {
			seen := make(map[string]bool)
			for _, item := range b.Items {
				if seen[item.ItemName] {
					t.Errorf("bundle %s lists %q twice", b.Retailer, item.ItemName)
				}
				seen[item.ItemName] = true
			}
		}
	})

	t.Run("failed and empty items excluded from denominator", func(t *testing.T) {
		results := []domain.ItemSearchResult{
			resultWithOffers("hammer", offer("X", 10)),
			{ItemName: "nails", Error: "serper API request failed", AllOffers: []domain.Offer{}},
			resultWithOffers("glue", offer("X", 5)),
		}

		bundles := BuildRetailerBundles(results, 5)

		if len(bundles) != 1 {
			t.Fatalf("bundles = %d, want 1", len(bundles))
		}
		// Denominator is 2: only items that produced offers count
		if bundles[0].Completeness != 100 {
			t.Errorf("completeness = %d, want 100", bundles[0].Completeness)
		}
		if bundles[0].MissingItems != 0 {
			t.Errorf("missingItems = %d, want 0", bundles[0].MissingItems)
		}
	})

	t.Run("all items empty gives no bundles", func(t *testing.T) {
		results := []domain.ItemSearchResult{
			{ItemName: "a", AllOffers: []domain.Offer{}},
			{ItemName: "b", Error: "timeout"},
		}

		bundles := BuildRetailerBundles(results, 5)

		if len(bundles) != 0 {
			t.Errorf("bundles = %d, want 0", len(bundles))
		}
	})

	t.Run("truncates to max bundles", func(t *testing.T) {
		results := []domain.ItemSearchResult{
			resultWithOffers("item",
				offer("R1", 1), offer("R2", 2), offer("R3", 3),
				offer("R4", 4), offer("R5", 5), offer("R6", 6), offer("R7", 7)),
		}

		bundles := BuildRetailerBundles(results, 5)

		if len(bundles) != 5 {
			t.Errorf("bundles = %d, want 5", len(bundles))
		}
		// Equal item counts, so cheapest totals rank first
		if bundles[0].Retailer != "R1" || bundles[4].Retailer != "R5" {
			t.Errorf("bundle order = %v, want R1..R5", retailers(bundles))
		}
	})

	t.Run("rounds total price to two decimals", func(t *testing.T) {
		results := []domain.ItemSearchResult{
			resultWithOffers("a", offer("X", 10.105)),
			resultWithOffers("b", offer("X", 20.102)),
		}

		bundles := BuildRetailerBundles(results, 5)

		if bundles[0].TotalPrice != 30.21 {
			t.Errorf("totalPrice = %v, want 30.21", bundles[0].TotalPrice)
		}
	})

	t.Run("completeness rounds to nearest percent", func(t *testing.T) {
		results := []domain.ItemSearchResult{
			resultWithOffers("a", offer("X", 1), offer("Y", 1)),
			resultWithOffers("b", offer("X", 1), offer("Y", 1)),
			resultWithOffers("c", offer("X", 1)),
		}

		bundles := BuildRetailerBundles(results, 5)

		for _, b := range bundles {
			if b.Retailer == "Y" && b.Completeness != 67 {
				t.Errorf("Y completeness = %d, want 67 (round(2/3*100))", b.Completeness)
			}
		}
	})

	t.Run("insertion order breaks full ties", func(t *testing.T) {
		// Same item count, same total price: first-seen retailer ranks first
		results := []domain.ItemSearchResult{
			resultWithOffers("item", offer("First", 10), offer("Second", 10)),
		}

		bundles := BuildRetailerBundles(results, 5)

		if bundles[0].Retailer != "First" || bundles[1].Retailer != "Second" {
			t.Errorf("tie order = %v, want [First, Second]", retailers(bundles))
		}
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		results := []domain.ItemSearchResult{
			resultWithOffers("a", offer("X", 12.34), offer("Y", 8), offer("Z", 8)),
			resultWithOffers("b", offer("Y", 3), offer("X", 2.5)),
			{ItemName: "c", Error: "provider error"},
		}

		first := BuildRetailerBundles(results, 5)
		second := BuildRetailerBundles(results, 5)

		if !reflect.DeepEqual(first, second) {
			t.Errorf("aggregation not idempotent:\nfirst  = %+v\nsecond = %+v", first, second)
		}
	})

	t.Run("ranking invariant holds", func(t *testing.T) {
		results := []domain.ItemSearchResult{
			resultWithOffers("a", offer("X", 5), offer("Y", 2), offer("Z", 9)),
			resultWithOffers("b", offer("X", 1), offer("Z", 4)),
			resultWithOffers("c", offer("Z", 7)),
		}

		bundles := BuildRetailerBundles(results, 5)

		for i := 1; i < len(bundles); i++ {
			prev, curr := bundles[i-1], bundles[i]
			if prev.ItemCount < curr.ItemCount {
				t.Errorf("bundle %d has fewer items than bundle %d", i-1, i)
			}
			if prev.ItemCount == curr.ItemCount && prev.TotalPrice > curr.TotalPrice {
				t.Errorf("equal-count bundles not ordered by price: %v > %v", prev.TotalPrice, curr.TotalPrice)
			}
		}
	})

	t.Run("zero max bundles falls back to default", func(t *testing.T) {
		results := []domain.ItemSearchResult{
			resultWithOffers("item",
				offer("R1", 1), offer("R2", 2), offer("R3", 3),
				offer("R4", 4), offer("R5", 5), offer("R6", 6)),
		}

		bundles := BuildRetailerBundles(results, 0)

		if len(bundles) != 5 {
			t.Errorf("bundles = %d, want 5 (default)", len(bundles))
		}
	})
}

func retailers(bundles []domain.RetailerBundle) []string {
	names := make([]string, len(bundles))
	for i, b := range bundles {
		names[i] = b.Retailer
	}
	return names
}
