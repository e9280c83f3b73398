package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SRSager/bucks-county-fence/mailer"
	"github.com/SRSager/bucks-county-fence/models"
)

// SubmitLead is the intake endpoint: it checks the completed lead
// record for required fields, then hands it to the mailer for delivery
// to the sales inbox.
func SubmitLead(svc *mailer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var lead models.Lead
		if err := c.ShouldBindJSON(&lead); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		if missing := lead.MissingFields(); len(missing) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Missing required fields",
				"fields": missing,
			})
			return
		}

		recipients, sent, err := svc.Deliver(c.Request.Context(), lead)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal server error",
				"message": err.Error(),
			})
			return
		}
		if !sent {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "Lead received (email not sent - no delivery configured)",
				"data":    lead,
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"message":    "Lead submitted successfully",
			"recipients": recipients,
		})
	}
}
