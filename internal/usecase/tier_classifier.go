package usecase

import (
	"sort"

	"github.com/projectcart/backend/internal/domain"
)

const (
	maxOffersPerTier = 3
	maxAllOffers     = 9
)

// ClassifyTiers sorts one item's offers by ascending price and partitions
// them into low/mid/high bands of ceil(n/3) offers each, capped at 3 per
// band. The sort is stable, so equal prices keep their retrieval order.
// Also returns the full ascending list capped at 9 offers.
//
// With fewer than three offers the mid and high bands may be empty; that
// skew is intentional (a flat partition, not a percentile split).
func ClassifyTiers(offers []domain.Offer) (domain.OfferTiers, []domain.Offer) {
	sorted := make([]domain.Offer, len(offers))
	copy(sorted, offers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price < sorted[j].Price
	})

	n := len(sorted)
	tierSize := (n + 2) / 3

	tiers := domain.OfferTiers{
		Low:  capTier(slice(sorted, 0, tierSize)),
		Mid:  capTier(slice(sorted, tierSize, 2*tierSize)),
		High: capTier(slice(sorted, 2*tierSize, n)),
	}

	all := sorted
	if len(all) > maxAllOffers {
		all = all[:maxAllOffers]
	}

	return tiers, all
}

// slice returns sorted[from:to] clamped to valid bounds
func slice(offers []domain.Offer, from, to int) []domain.Offer {
	n := len(offers)
	if from > n {
		from = n
	}
	if to > n {
		to = n
	}
	return offers[from:to]
}

// capTier limits a tier to maxOffersPerTier offers, always returning a
// non-nil slice so empty tiers serialize as [] rather than null
func capTier(offers []domain.Offer) []domain.Offer {
	if len(offers) > maxOffersPerTier {
		offers = offers[:maxOffersPerTier]
	}
	out := make([]domain.Offer, len(offers))
	copy(out, offers)
	return out
}
