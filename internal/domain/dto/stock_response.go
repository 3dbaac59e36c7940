package dto

// StockData is the single-symbol response body for GET /api/stock-prices.
//
// Price is a pointer so an unresolvable symbol serializes as "price": null
// rather than 0. The tuple shape is kept even when no price is available.
type StockData struct {
	Stock string   `json:"stock" example:"GOOG"`
	Price *float64 `json:"price" example:"153.42"`
	Likes int      `json:"likes" example:"3"`
}

// ComparedStockData is one element of the two-symbol comparison response.
// Only the signed relative like count is exposed; raw counts are withheld
// so comparing two tickers never leaks absolute popularity.
type ComparedStockData struct {
	Stock    string   `json:"stock" example:"MSFT"`
	Price    *float64 `json:"price" example:"411.22"`
	RelLikes int      `json:"rel_likes" example:"-2"`
}

// SingleStockResponse wraps a single-symbol lookup result.
type SingleStockResponse struct {
	StockData StockData `json:"stockData"`
}

// CompareStocksResponse wraps a two-symbol comparison. The order of the
// elements matches the order of the "stock" query parameters.
type CompareStocksResponse struct {
	StockData []ComparedStockData `json:"stockData"`
}
