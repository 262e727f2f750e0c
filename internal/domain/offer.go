package domain

// RawOffer is an untrusted shopping result as returned by the Serper API.
// No field is guaranteed to be present or well-formed.
type RawOffer struct {
	Title       string  `json:"title"`
	Price       string  `json:"price"` // currency-formatted, e.g. "$12.50"
	Source      string  `json:"source"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Link        string  `json:"link,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	RatingCount int     `json:"ratingCount,omitempty"`
}

// Offer is a validated, purchasable listing. Every Offer has a positive
// numeric price and a non-empty selling retailer.
type Offer struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Source      string  `json:"source"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Link        string  `json:"link,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	RatingCount int     `json:"ratingCount,omitempty"`
}

// OfferTiers partitions one item's offers into three price bands,
// each holding at most three offers in ascending price order.
type OfferTiers struct {
	Low  []Offer `json:"low"`
	Mid  []Offer `json:"mid"`
	High []Offer `json:"high"`
}

// ItemSearchResult holds the search outcome for a single checklist item.
// Error is set when retrieval failed for this item; the result then carries
// empty tiers and offers but never aborts the request.
type ItemSearchResult struct {
	ItemName    string        `json:"itemName"`
	ItemDetails ChecklistItem `json:"itemDetails"`
	Tiers       OfferTiers    `json:"tiers"`
	AllOffers   []Offer       `json:"allOffers"`
	Error       string        `json:"error,omitempty"`
}

// BundleItem is one checklist item covered by a retailer bundle,
// paired with that retailer's cheapest offer for it.
type BundleItem struct {
	ItemName string `json:"itemName"`
	Offer    Offer  `json:"offer"`
}

// RetailerBundle is a single retailer's best achievable coverage of the
// checklist: one cheapest offer per item the retailer can supply.
type RetailerBundle struct {
	Retailer     string       `json:"retailer"`
	Items        []BundleItem `json:"items"`
	ItemCount    int          `json:"itemCount"`
	TotalPrice   float64      `json:"totalPrice"`
	Completeness int          `json:"completeness"` // percent of requested items covered
	MissingItems int          `json:"missingItems"`
}

// SearchRequest represents a product search request over a checklist
type SearchRequest struct {
	Items []ChecklistItem `json:"items" binding:"required"`
	Notes string          `json:"notes,omitempty"`
}

// SearchResponse is the full product search response: one result per
// requested item, in request order, plus ranked retailer bundles.
type SearchResponse struct {
	Success   bool               `json:"success"`
	Results   []ItemSearchResult `json:"results"`
	Bundles   []RetailerBundle   `json:"bundles"`
	Timestamp string             `json:"timestamp"`
}

// SerperShoppingResponse represents the response from the Serper shopping API
type SerperShoppingResponse struct {
	Shopping []RawOffer `json:"shopping"`
}
