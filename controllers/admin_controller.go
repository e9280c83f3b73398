package controllers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/SRSager/bucks-county-fence/config"
	"github.com/SRSager/bucks-county-fence/models"
	"github.com/SRSager/bucks-county-fence/utils"
)

type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AdminLogin exchanges the admin password for a bearer token.
func AdminLogin(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		if cfg.AdminPassword == "" ||
			subtle.ConstantTimeCompare([]byte(req.Password), []byte(cfg.AdminPassword)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		token, err := utils.GenerateJWT(cfg.JWTSecret, "admin", 24*time.Hour)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}

type ExportLeadsRequest struct {
	Leads []models.Lead `json:"leads"`
}

var exportColumns = []string{
	"First Name", "Last Name", "Email", "Phone",
	"Project Type", "Fence Material", "Timeline", "Property Type",
	"Fence Purpose", "Fence Length",
	"Street Address", "City", "ZIP Code",
	"Additional Details", "Marketing Consent",
}

// ExportLeads renders the submitted leads as an XLSX workbook for the
// sales team. The service never stores leads, so the caller supplies
// them in the request body.
func ExportLeads() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ExportLeadsRequest
		if err := c.ShouldBindJSON(&req); err != nil || len(req.Leads) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no leads to export"})
			return
		}

		f := excelize.NewFile()
		defer f.Close()
		const sheet = "Leads"
		f.SetSheetName("Sheet1", sheet)

		for i, h := range exportColumns {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		for row, lead := range req.Leads {
			values := []any{
				lead.FirstName, lead.LastName, lead.Email, lead.Phone,
				models.Label(models.ProjectTypeLabels, lead.ProjectType),
				models.Label(models.FenceMaterialLabels, lead.FenceMaterial),
				models.Label(models.TimelineLabels, lead.Timeline),
				models.Label(models.PropertyTypeLabels, lead.PropertyType),
				models.PurposeList(lead.FencePurpose),
				models.Label(models.FenceLengthLabels, lead.FenceLength),
				lead.StreetAddress, lead.City, lead.ZipCode,
				lead.AdditionalDetails, yesNoCell(lead.MarketingConsent),
			}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(sheet, cell, v)
			}
		}

		buf, err := f.WriteToBuffer()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
			return
		}
		c.Header("Content-Disposition", `attachment; filename="leads.xlsx"`)
		c.Data(http.StatusOK,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			buf.Bytes())
	}
}

func yesNoCell(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
