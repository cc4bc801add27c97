package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"venuescout-api/models"
	"venuescout-api/services"
	"venuescout-api/utils"
)

type VenueController struct {
	db           *gorm.DB
	photoService *services.PhotoService
	csvService   *services.CSVService
}

func NewVenueController(db *gorm.DB, photoService *services.PhotoService, csvService *services.CSVService) *VenueController {
	return &VenueController{
		db:           db,
		photoService: photoService,
		csvService:   csvService,
	}
}

type CreateVenueRequest struct {
	Name                string   `json:"name" binding:"required"`
	City                string   `json:"city" binding:"required"`
	Capacity            int      `json:"capacity" binding:"required,min=1"`
	Facilities          []string `json:"facilities"`
	EventTypes          []string `json:"event_types"`
	ContactEmail        *string  `json:"contact_email"`
	ContactPhone        *string  `json:"contact_phone"`
	Website             *string  `json:"website"`
	Address             *string  `json:"address"`
	DescriptionTemplate *string  `json:"description_template"`
	Notes               *string  `json:"notes"`
}

type UpdateVenueRequest struct {
	Name                *string  `json:"name"`
	City                *string  `json:"city"`
	Capacity            *int     `json:"capacity"`
	Facilities          []string `json:"facilities"`
	EventTypes          []string `json:"event_types"`
	ContactEmail        *string  `json:"contact_email"`
	ContactPhone        *string  `json:"contact_phone"`
	Website             *string  `json:"website"`
	Address             *string  `json:"address"`
	DescriptionTemplate *string  `json:"description_template"`
	Notes               *string  `json:"notes"`
}

// GetVenues lists venues with filters and pagination. Soft-deleted venues
// never show up in listings.
func (vc *VenueController) GetVenues(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = utils.ParsePagination(page, pageSize)

	query := vc.db.Model(&models.Venue{}).Where("is_deleted = ?", false)

	if city := c.Query("city"); city != "" {
		query = query.Where("LOWER(city) = ?", strings.ToLower(city))
	}
	if minCapacity, err := strconv.Atoi(c.Query("min_capacity")); err == nil && minCapacity > 0 {
		query = query.Where("capacity >= ?", minCapacity)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count venues"})
		return
	}

	var venues []models.Venue
	err := query.Preload("Photos", photoOrder).
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&venues).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch venues"})
		return
	}

	utils.SendPaginated(c, venues, page, pageSize, total)
}

func (vc *VenueController) CreateVenue(c *gin.Context) {
	var req CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ContactEmail != nil && *req.ContactEmail != "" && !utils.IsValidEmail(*req.ContactEmail) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact email"})
		return
	}

	venue := models.Venue{
		ID:                  uuid.New().String(),
		Name:                req.Name,
		City:                req.City,
		Capacity:            req.Capacity,
		Facilities:          models.StringSlice(req.Facilities),
		EventTypes:          models.StringSlice(req.EventTypes),
		ContactEmail:        req.ContactEmail,
		ContactPhone:        req.ContactPhone,
		Website:             req.Website,
		Address:             req.Address,
		DescriptionTemplate: req.DescriptionTemplate,
		Notes:               req.Notes,
	}

	if err := vc.db.Create(&venue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create venue"})
		return
	}

	c.JSON(http.StatusCreated, venue)
}

func (vc *VenueController) GetVenue(c *gin.Context) {
	venueID := c.Param("id")

	var venue models.Venue
	err := vc.db.Preload("Photos", photoOrder).
		First(&venue, "id = ? AND is_deleted = ?", venueID, false).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}

	c.JSON(http.StatusOK, venue)
}

func (vc *VenueController) UpdateVenue(c *gin.Context) {
	venueID := c.Param("id")

	var venue models.Venue
	if err := vc.db.First(&venue, "id = ? AND is_deleted = ?", venueID, false).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}

	var req UpdateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.Capacity != nil {
		if !utils.IsValidCapacity(*req.Capacity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Capacity must be greater than zero"})
			return
		}
		updates["capacity"] = *req.Capacity
	}
	if req.Facilities != nil {
		updates["facilities"] = models.StringSlice(req.Facilities)
	}
	if req.EventTypes != nil {
		updates["event_types"] = models.StringSlice(req.EventTypes)
	}
	if req.ContactEmail != nil {
		if *req.ContactEmail != "" && !utils.IsValidEmail(*req.ContactEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact email"})
			return
		}
		updates["contact_email"] = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		updates["contact_phone"] = *req.ContactPhone
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.DescriptionTemplate != nil {
		updates["description_template"] = *req.DescriptionTemplate
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := vc.db.Model(&venue).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update venue"})
			return
		}
	}

	c.JSON(http.StatusOK, venue)
}

// DeleteVenue soft-deletes a venue so historical project links stay intact.
func (vc *VenueController) DeleteVenue(c *gin.Context) {
	venueID := c.Param("id")

	var venue models.Venue
	if err := vc.db.First(&venue, "id = ? AND is_deleted = ?", venueID, false).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}

	if err := vc.db.Model(&venue).Update("is_deleted", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete venue"})
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadPhoto accepts a multipart image upload for a venue.
func (vc *VenueController) UploadPhoto(c *gin.Context) {
	venueID := c.Param("id")

	var venue models.Venue
	if err := vc.db.First(&venue, "id = ? AND is_deleted = ?", venueID, false).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Photo file is required"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" && contentType != "image/jpg" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only JPEG and PNG images are allowed"})
		return
	}

	var caption *string
	if value := c.PostForm("caption"); value != "" {
		caption = &value
	}
	displayOrder, _ := strconv.Atoi(c.DefaultPostForm("display_order", "0"))

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read photo file"})
		return
	}
	defer file.Close()

	photo, err := vc.photoService.UploadPhoto(
		c.Request.Context(), venueID, fileHeader.Filename, contentType,
		file, fileHeader.Size, caption, displayOrder,
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store photo"})
		return
	}

	c.JSON(http.StatusCreated, photo)
}

func (vc *VenueController) DeletePhoto(c *gin.Context) {
	venueID := c.Param("id")
	photoID := c.Param("photo_id")

	var photo models.Photo
	if err := vc.db.First(&photo, "id = ? AND venue_id = ?", photoID, venueID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found for this venue"})
		return
	}

	if err := vc.photoService.DeletePhoto(c.Request.Context(), &photo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete photo"})
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadCSV imports venues in bulk. Per-row failures are reported, not
// fatal: a batch with bad rows still imports the good ones.
func (vc *VenueController) UploadCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CSV file is required"})
		return
	}

	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be a CSV file (.csv extension)"})
		return
	}

	if fileHeader.Size > services.MaxCSVFileSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large. Maximum size is 5MB"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read CSV file"})
		return
	}
	defer file.Close()

	result, err := vc.csvService.ProcessVenueCSV(file)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetCSVTemplate returns a downloadable import template.
func (vc *VenueController) GetCSVTemplate(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="venue_import_template.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(vc.csvService.GenerateTemplate()))
}

func photoOrder(db *gorm.DB) *gorm.DB {
	return db.Order("display_order ASC")
}
