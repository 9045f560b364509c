package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	handlers "github.com/stayhub/payment-service/internal/handlers"
)

func (a *App) RegisterRoutes(h *handlers.PaymentHandler) {
	app := a.Router.Group("/payments")
	app.POST("/create-checkout-session", h.CreateCheckoutSession)
	app.POST("/create-payment-intent", h.CreatePaymentIntent)
	app.POST("/confirm", h.ConfirmPayment)
	app.POST("/webhook", h.Webhook)

	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	a.Router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
