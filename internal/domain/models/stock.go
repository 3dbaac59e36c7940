package models

// StockView is the per-symbol result of a lookup: the normalized ticker,
// the latest price (nil when the upstream could not resolve the symbol),
// and the current like count.
//
// For two-symbol comparisons the raw Likes values are consumed internally
// to compute relative likes and are not exposed to clients.
type StockView struct {
	Stock string   `json:"stock" example:"GOOG"`
	Price *float64 `json:"price" example:"153.42"`
	Likes int      `json:"likes" example:"3"`
}
