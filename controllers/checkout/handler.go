package checkoutControllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	orderControllers "github.com/RAravinthRaj/medicine-finder/controllers/order"
	"github.com/RAravinthRaj/medicine-finder/store"
)

type checkoutRequest struct {
	Cart []Line `json:"cart"`
}

// POST /checkout
func CheckoutHandler(st store.Checkout) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		order, err := Run(st, userID, req.Cart)
		if err != nil {
			var cerr *Error
			if errors.As(err, &cerr) {
				c.JSON(cerr.Status(), gin.H{"error": cerr.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		orderControllers.BroadcastNewOrder(order)

		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Checkout successful! Total amount: ₹%.2f", order.TotalAmount),
		})
	}
}
