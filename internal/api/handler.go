package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stockpulse/stockpulse/internal/domain/dto"
	"github.com/stockpulse/stockpulse/internal/service"
	"github.com/stockpulse/stockpulse/internal/visitor"
)

// Handler provides HTTP handlers for the stock price endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Derive the anonymized visitor identifier from the client address
//   - Delegate to the lookup service
//   - Translate lookup results into response DTOs with appropriate
//     HTTP status codes
type Handler struct {
	svc service.LookupService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.LookupService) *Handler {
	return &Handler{svc: svc}
}

// GetStockPrices handles GET /api/stock-prices requests.
//
// Query Parameters:
//   - stock (string, 1 or 2 occurrences, required): ticker symbol(s).
//   - like (string, optional): "true" records a like for the caller;
//     any other value (or absence) is read-only.
//
// Responses:
//   - 200 OK: single symbol → {"stockData": {stock, price, likes}};
//     two symbols → {"stockData": [{stock, price, rel_likes} x2]}.
//     An unresolvable price is returned as null, never an error.
//   - 400 Bad Request: missing stock parameter or more than two symbols.
//   - 500 Internal Server Error: like ledger (database) failure.
//
// GetStockPrices godoc
// @Summary      Get stock price and like data
// @Description  Returns the latest price and like count for one ticker, or a relative-likes comparison for two
// @Tags         stock-prices
// @Accept       json
// @Produce      json
// @Param        stock  query     string  true   "Stock ticker (repeat for comparison)" example(GOOG)
// @Param        like   query     string  false  "Set to true to like the stock(s)" example(true)
// @Success      200    {object}  dto.SingleStockResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse        "Bad Request"
// @Failure      500    {object}  dto.ErrorResponse        "Internal Error"
// @Router       /api/stock-prices [get]
func (h *Handler) GetStockPrices(c *gin.Context) {
	// ─── Validate "stock" params ──────────────────────────────
	symbols := c.QueryArray("stock")
	if len(symbols) == 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("stock query parameter is required", nil))
		return
	}
	if len(symbols) > 2 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("at most two stock symbols are supported", nil))
		return
	}
	for _, s := range symbols {
		if strings.TrimSpace(s) == "" {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("stock symbol must not be empty", nil))
			return
		}
	}

	// ─── Parse "like" flag and derive the visitor identifier ──
	like := c.Query("like") == "true"
	vid := visitor.Derive(c.ClientIP())

	// ─── Run the lookup (with request context) ────────────────
	views, err := h.svc.Lookup(c.Request.Context(), symbols, vid, like)
	if err != nil {
		if errors.Is(err, service.ErrSymbolCount) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error(), nil))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to look up stock prices", err))
		return
	}

	// ─── Build and return response DTO ────────────────────────
	if len(views) == 1 {
		v := views[0]
		c.JSON(http.StatusOK, dto.SingleStockResponse{
			StockData: dto.StockData{Stock: v.Stock, Price: v.Price, Likes: v.Likes},
		})
		return
	}

	// Two symbols: expose only the signed difference of like counts.
	rel := views[0].Likes - views[1].Likes
	c.JSON(http.StatusOK, dto.CompareStocksResponse{
		StockData: []dto.ComparedStockData{
			{Stock: views[0].Stock, Price: views[0].Price, RelLikes: rel},
			{Stock: views[1].Stock, Price: views[1].Price, RelLikes: -rel},
		},
	})
}
