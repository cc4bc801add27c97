package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"venuescout-api/models"
	"venuescout-api/utils"
)

type ClientController struct {
	db *gorm.DB
}

func NewClientController(db *gorm.DB) *ClientController {
	return &ClientController{db: db}
}

type CreateClientRequest struct {
	Name                   string                 `json:"name" binding:"required"`
	Industry               *string                `json:"industry"`
	Website                *string                `json:"website"`
	LogoURL                *string                `json:"logo_url"`
	BrandTone              *string                `json:"brand_tone"`
	DescriptionPreferences *string                `json:"description_preferences"`
	StandardRequirements   map[string]interface{} `json:"standard_requirements"`
	Notes                  *string                `json:"notes"`
}

type UpdateClientRequest struct {
	Name                   *string                `json:"name"`
	Industry               *string                `json:"industry"`
	Website                *string                `json:"website"`
	LogoURL                *string                `json:"logo_url"`
	BrandTone              *string                `json:"brand_tone"`
	DescriptionPreferences *string                `json:"description_preferences"`
	StandardRequirements   map[string]interface{} `json:"standard_requirements"`
	Notes                  *string                `json:"notes"`
}

func (cc *ClientController) GetClients(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = utils.ParsePagination(page, pageSize)

	query := cc.db.Model(&models.Client{})
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count clients"})
		return
	}

	var clients []models.Client
	err := query.Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&clients).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch clients"})
		return
	}

	utils.SendPaginated(c, clients, page, pageSize, total)
}

func (cc *ClientController) CreateClient(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Client
	if err := cc.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A client with this name already exists"})
		return
	}

	client := models.Client{
		ID:                     uuid.New().String(),
		Name:                   req.Name,
		Industry:               req.Industry,
		Website:                req.Website,
		LogoURL:                req.LogoURL,
		BrandTone:              req.BrandTone,
		DescriptionPreferences: req.DescriptionPreferences,
		StandardRequirements:   datatypes.JSONMap(req.StandardRequirements),
		Notes:                  req.Notes,
	}

	if err := cc.db.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client"})
		return
	}

	c.JSON(http.StatusCreated, client)
}

func (cc *ClientController) GetClient(c *gin.Context) {
	clientID := c.Param("id")

	var client models.Client
	if err := cc.db.First(&client, "id = ?", clientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	c.JSON(http.StatusOK, client)
}

func (cc *ClientController) UpdateClient(c *gin.Context) {
	clientID := c.Param("id")

	var client models.Client
	if err := cc.db.First(&client, "id = ?", clientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Industry != nil {
		updates["industry"] = *req.Industry
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.LogoURL != nil {
		updates["logo_url"] = *req.LogoURL
	}
	if req.BrandTone != nil {
		updates["brand_tone"] = *req.BrandTone
	}
	if req.DescriptionPreferences != nil {
		updates["description_preferences"] = *req.DescriptionPreferences
	}
	if req.StandardRequirements != nil {
		updates["standard_requirements"] = datatypes.JSONMap(req.StandardRequirements)
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := cc.db.Model(&client).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
			return
		}
	}

	c.JSON(http.StatusOK, client)
}

func (cc *ClientController) DeleteClient(c *gin.Context) {
	clientID := c.Param("id")

	var client models.Client
	if err := cc.db.First(&client, "id = ?", clientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	// Projects keep their client_name snapshot; only the profile link clears
	if err := cc.db.Model(&models.Project{}).Where("client_id = ?", clientID).Update("client_id", nil).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlink client projects"})
		return
	}

	if err := cc.db.Delete(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}

	c.Status(http.StatusNoContent)
}
