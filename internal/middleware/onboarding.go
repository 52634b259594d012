package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ArthurMoreiraS/OperlyService/internal/models"
)

// RequireOnboarded blocks booking and billing routes until the business has
// completed its operating-hours setup.
func RequireOnboarded(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		businessID := c.MustGet(ContextBusinessID).(string)

		var biz models.Business
		if err := db.Select("onboarded").First(&biz, "id = ?", businessID).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "business_not_found"})
			return
		}

		if !biz.Onboarded {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "onboarding_required"})
			return
		}

		c.Next()
	}
}
