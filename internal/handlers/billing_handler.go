package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/belezasmart/internal/httperr"
	"github.com/BruksfildServices01/belezasmart/internal/middleware"
	ucSubscription "github.com/BruksfildServices01/belezasmart/internal/usecase/subscription"
)

type BillingHandler struct {
	checkoutUC *ucSubscription.Checkout
	portalUC   *ucSubscription.Portal
	checkUC    *ucSubscription.CheckSubscription
	log        logrus.FieldLogger
}

func NewBillingHandler(
	checkoutUC *ucSubscription.Checkout,
	portalUC *ucSubscription.Portal,
	checkUC *ucSubscription.CheckSubscription,
	log logrus.FieldLogger,
) *BillingHandler {
	return &BillingHandler{
		checkoutUC: checkoutUC,
		portalUC:   portalUC,
		checkUC:    checkUC,
		log:        log,
	}
}

type CheckoutRequest struct {
	PlanType string `json:"planType" binding:"required"`
}

// paymentError: falhas do provedor respondem 500 com a mensagem.
func (h *BillingHandler) paymentError(c *gin.Context, err error, action string) {
	if httperr.BusinessCode(err) != "" {
		respondError(c, h.log, err, "payment_error")
		return
	}
	h.log.WithError(err).WithFields(logrus.Fields{
		"action":  action,
		"user_id": middleware.OwnerID(c),
	}).Error("payment gateway error")
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func (h *BillingHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}

	url, err := h.checkoutUC.Execute(
		c.Request.Context(),
		middleware.OwnerID(c),
		middleware.OwnerEmail(c),
		req.PlanType,
	)
	if err != nil {
		h.paymentError(c, err, "checkout")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *BillingHandler) Portal(c *gin.Context) {
	url, err := h.portalUC.Execute(c.Request.Context(), middleware.OwnerEmail(c))
	if err != nil {
		h.paymentError(c, err, "portal")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *BillingHandler) CheckSubscription(c *gin.Context) {
	status, err := h.checkUC.Execute(
		c.Request.Context(),
		middleware.OwnerID(c),
		middleware.OwnerEmail(c),
	)
	if err != nil {
		h.paymentError(c, err, "check_subscription")
		return
	}

	c.JSON(http.StatusOK, status)
}
