package usecase

import (
	"math"
	"sort"

	"github.com/projectcart/backend/internal/domain"
)

// defaultMaxBundles is the number of ranked bundles returned to the caller
const defaultMaxBundles = 5

// bundleAccumulator is a retailer's running bundle while results are folded in
type bundleAccumulator struct {
	retailer   string
	items      []domain.BundleItem
	totalPrice float64
	itemCount  int
}

// BuildRetailerBundles reduces the joined per-item results into ranked
// single-retailer bundles. For every item, each retailer contributes only
// its cheapest offer; bundles are ranked by item coverage first (a retailer
// that can supply more of the checklist wins) and total price second.
//
// Items with no usable offers are excluded from the completeness
// denominator and appear in no bundle. The reduction is deterministic:
// retailer accumulators keep first-seen order and the final sort is stable,
// so equal-key ties always break the same way for the same input.
func BuildRetailerBundles(results []domain.ItemSearchResult, maxBundles int) []domain.RetailerBundle {
	if maxBundles <= 0 {
		maxBundles = defaultMaxBundles
	}

	accumulators := make(map[string]*bundleAccumulator)
	var retailerOrder []string

	totalItems := 0
	for _, result := range results {
		if len(result.AllOffers) == 0 {
			continue
		}
		totalItems++

		// Cheapest offer per retailer for this item. Strict less-than keeps
		// the earlier offer on price ties, matching retrieval order.
		best := make(map[string]domain.Offer)
		var bestOrder []string
		for _, offer := range result.AllOffers {
			if offer.Source == "" || offer.Price <= 0 {
				continue
			}
			current, seen := best[offer.Source]
			if !seen {
				best[offer.Source] = offer
				bestOrder = append(bestOrder, offer.Source)
			} else if offer.Price < current.Price {
				best[offer.Source] = offer
			}
		}

		for _, retailer := range bestOrder {
			acc, exists := accumulators[retailer]
			if !exists {
				acc = &bundleAccumulator{retailer: retailer}
				accumulators[retailer] = acc
				retailerOrder = append(retailerOrder, retailer)
			}

			offer := best[retailer]
			acc.items = append(acc.items, domain.BundleItem{
				ItemName: result.ItemName,
				Offer:    offer,
			})
			acc.totalPrice += offer.Price
			acc.itemCount++
		}
	}

	bundles := make([]domain.RetailerBundle, 0, len(retailerOrder))
	for _, retailer := range retailerOrder {
		acc := accumulators[retailer]

		// Guard against corrupted accumulation; should never trigger
		if acc.itemCount == 0 || acc.totalPrice <= 0 {
			continue
		}

		bundles = append(bundles, domain.RetailerBundle{
			Retailer:     acc.retailer,
			Items:        acc.items,
			ItemCount:    acc.itemCount,
			TotalPrice:   roundPrice(acc.totalPrice),
			Completeness: int(math.Round(float64(acc.itemCount) / float64(totalItems) * 100)),
			MissingItems: totalItems - acc.itemCount,
		})
	}

	// More complete bundles first, cheaper wins ties; stable so the
	// insertion order above is the final tie-break
	sort.SliceStable(bundles, func(i, j int) bool {
		if bundles[i].ItemCount != bundles[j].ItemCount {
			return bundles[i].ItemCount > bundles[j].ItemCount
		}
		return bundles[i].TotalPrice < bundles[j].TotalPrice
	})

	if len(bundles) > maxBundles {
		bundles = bundles[:maxBundles]
	}

	return bundles
}

// roundPrice rounds to 2 decimal places
func roundPrice(price float64) float64 {
	return math.Round(price*100) / 100
}
