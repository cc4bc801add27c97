package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"venuescout-api/models"
)

type CateringController struct {
	db *gorm.DB
}

func NewCateringController(db *gorm.DB) *CateringController {
	return &CateringController{db: db}
}

type CreateCateringProviderRequest struct {
	Name           string                 `json:"name" binding:"required"`
	PricePerPerson float64                `json:"price_per_person" binding:"required,gt=0"`
	MenuOptions    map[string]interface{} `json:"menu_options"`
}

func (cc *CateringController) GetProviders(c *gin.Context) {
	query := cc.db.Model(&models.CateringProvider{})
	if c.DefaultQuery("active_only", "true") == "true" {
		query = query.Where("is_active = ?", true)
	}

	var providers []models.CateringProvider
	if err := query.Order("name ASC").Find(&providers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch catering providers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": providers})
}

func (cc *CateringController) CreateProvider(c *gin.Context) {
	var req CreateCateringProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	provider := models.CateringProvider{
		ID:             uuid.New().String(),
		Name:           req.Name,
		PricePerPerson: req.PricePerPerson,
		MenuOptions:    datatypes.JSONMap(req.MenuOptions),
		IsActive:       true,
	}

	if err := cc.db.Create(&provider).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create catering provider"})
		return
	}

	c.JSON(http.StatusCreated, provider)
}

// DeactivateProvider hides a provider from new selections without touching
// existing project links.
func (cc *CateringController) DeactivateProvider(c *gin.Context) {
	providerID := c.Param("id")

	var provider models.CateringProvider
	if err := cc.db.First(&provider, "id = ?", providerID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Catering provider not found"})
		return
	}

	if err := cc.db.Model(&provider).Update("is_active", false).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate catering provider"})
		return
	}

	c.Status(http.StatusNoContent)
}
