package web

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	cartdomain "github.com/dwikikusuma/soundshop/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/soundshop/internal/catalog/app"
	checkoutdomain "github.com/dwikikusuma/soundshop/internal/checkout/domain"
	"github.com/gin-gonic/gin"
)

var priceRanges = []string{
	"0-1000000",
	"1000000-5000000",
	"5000000-10000000",
	"10000000-100000000",
}

type checkoutForm struct {
	Name    string `form:"name"`
	Address string `form:"address"`
	Phone   string `form:"phone"`
	Payment string `form:"payment"`
}

type cartOp func(ctx context.Context, sessionID string, productID int) (cartdomain.Cart, error)

func (s *Server) index(c *gin.Context) {
	search, price := c.Query("search"), c.Query("price")
	category, sort := c.Query("category"), c.Query("sort")

	products := s.catalog.List(catalogapp.ParseFilter(search, price, category, sort))

	s.render(c, "index.tmpl", gin.H{
		"Title":       "Products",
		"Products":    products,
		"Categories":  s.catalog.Categories(),
		"PriceRanges": priceRanges,
		"Search":      search,
		"Price":       price,
		"Category":    category,
		"Sort":        sort,
	})
}

func (s *Server) addToCart(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		c.String(http.StatusNotFound, "Product not found")
		return
	}

	if _, err := s.carts.AddToCart(c.Request.Context(), sessionID(c), id); err != nil {
		s.fail(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/cart")
}

func (s *Server) viewCart(c *gin.Context) {
	cart, err := s.carts.View(c.Request.Context(), sessionID(c))
	if err != nil {
		s.fail(c, err)
		return
	}

	s.render(c, "cart.tmpl", gin.H{
		"Title": "Cart",
		"Lines": cart.Lines(),
		"Total": cart.Total(),
	})
}

func (s *Server) increase(c *gin.Context) {
	s.adjust(c, s.carts.Increase)
}

func (s *Server) decrease(c *gin.Context) {
	s.adjust(c, s.carts.Decrease)
}

func (s *Server) removeFromCart(c *gin.Context) {
	s.adjust(c, s.carts.Remove)
}

// adjust runs a quantity change and always lands back on the cart; unknown ids are ignored.
func (s *Server) adjust(c *gin.Context, op cartOp) {
	if id, ok := productID(c); ok {
		if _, err := op(c.Request.Context(), sessionID(c), id); err != nil {
			s.fail(c, err)
			return
		}
	}
	c.Redirect(http.StatusFound, "/cart")
}

func (s *Server) checkoutForm(c *gin.Context) {
	quote, err := s.checkout.Quote(c.Request.Context(), sessionID(c))
	if err != nil {
		s.fail(c, err)
		return
	}

	s.render(c, "checkout.tmpl", gin.H{
		"Title": "Checkout",
		"Quote": quote,
	})
}

func (s *Server) placeOrder(c *gin.Context) {
	var form checkoutForm
	if err := c.ShouldBind(&form); err != nil {
		s.log.Debug("checkout form bind failed", slog.Any("err", err))
	}

	receipt, err := s.checkout.Checkout(c.Request.Context(), sessionID(c), checkoutdomain.OrderInfo{
		Name:    form.Name,
		Address: form.Address,
		Phone:   form.Phone,
		Payment: form.Payment,
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	s.log.Info("order placed",
		slog.String("order_id", receipt.OrderID),
		slog.Int("items", receipt.ItemCount),
		slog.String("total", receipt.Total.Amount.String()),
	)

	s.render(c, "receipt.tmpl", gin.H{
		"Title":   "Order placed",
		"Receipt": receipt,
	})
}

// render adds the header cart badge, computed after the handler's own changes.
func (s *Server) render(c *gin.Context, name string, data gin.H) {
	count := 0
	if cart, err := s.carts.View(c.Request.Context(), sessionID(c)); err == nil {
		count = cart.Count()
	} else {
		s.log.Warn("cart count unavailable", slog.Any("err", err))
	}
	data["CartCount"] = count

	c.HTML(http.StatusOK, name, data)
}

func (s *Server) fail(c *gin.Context, err error) {
	code, reason, msg := httpStatusFromGRPC(mapErr(err))
	if code >= http.StatusInternalServerError {
		s.log.Error("request failed",
			slog.String("path", c.Request.URL.Path),
			slog.String("code", reason),
			slog.Any("err", err),
		)
	}
	_ = c.Error(err)
	c.String(code, msg)
}

func productID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
