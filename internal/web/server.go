package web

import (
	"log/slog"
	"net/http"
	"time"

	cartapp "github.com/dwikikusuma/soundshop/internal/cart/app"
	catalogapp "github.com/dwikikusuma/soundshop/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/soundshop/internal/checkout/app"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	Catalog  *catalogapp.Service
	Carts    *cartapp.Service
	Checkout *checkoutapp.Service
	Sessions *Sessions
	Log      *slog.Logger
	Access   *zap.Logger
	Currency string
}

type Server struct {
	catalog  *catalogapp.Service
	carts    *cartapp.Service
	checkout *checkoutapp.Service
	log      *slog.Logger
}

// NewRouter wires the storefront routes onto a fresh gin engine.
func NewRouter(d Deps) (*gin.Engine, error) {
	tmpl, err := parseTemplates(d.Currency)
	if err != nil {
		return nil, err
	}

	if d.Log == nil {
		d.Log = slog.Default()
	}

	s := &Server{
		catalog:  d.Catalog,
		carts:    d.Carts,
		checkout: d.Checkout,
		log:      d.Log,
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	if d.Access != nil {
		r.Use(accessLog(d.Access))
	}
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/readyz", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.StaticFS("/static", http.FS(staticFiles()))

	shop := r.Group("/", d.Sessions.Middleware())
	shop.GET("/", s.index)
	shop.GET("/add-to-cart/:id", s.addToCart)
	shop.GET("/cart", s.viewCart)
	shop.GET("/increase/:id", s.increase)
	shop.GET("/decrease/:id", s.decrease)
	shop.GET("/remove-from-cart/:id", s.removeFromCart)
	shop.GET("/checkout", s.checkoutForm)
	shop.POST("/checkout", s.placeOrder)

	return r, nil
}

func accessLog(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Error("http request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			log.Warn("http request", fields...)
		default:
			log.Info("http request", fields...)
		}
	}
}
