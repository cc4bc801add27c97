package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"venuescout-api/models"
	"venuescout-api/repositories"
	"venuescout-api/services"
	"venuescout-api/utils"
)

// ProjectVenueController manages the outreach workflow: the venue candidates
// attached to a project, their statuses and responses, AI description
// generation and inquiry emails.
type ProjectVenueController struct {
	db                 *gorm.DB
	descriptionService *services.DescriptionService
	outreachService    *services.OutreachService
	activityRepo       *repositories.ActivityRepository
}

func NewProjectVenueController(
	db *gorm.DB,
	descriptionService *services.DescriptionService,
	outreachService *services.OutreachService,
	activityRepo *repositories.ActivityRepository,
) *ProjectVenueController {
	return &ProjectVenueController{
		db:                 db,
		descriptionService: descriptionService,
		outreachService:    outreachService,
		activityRepo:       activityRepo,
	}
}

type AddVenueRequest struct {
	VenueID string `json:"venue_id" binding:"required"`
}

// AddVenue links a venue to a project in draft status. The database unique
// constraint on (project_id, venue_id) decides races between concurrent
// adds: exactly one wins, the other gets a conflict.
func (pvc *ProjectVenueController) AddVenue(c *gin.Context) {
	project, ok := findOwnedProject(c, pvc.db, false)
	if !ok {
		return
	}

	var req AddVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var venue models.Venue
	if err := pvc.db.First(&venue, "id = ? AND is_deleted = ?", req.VenueID, false).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found"})
		return
	}

	link := models.ProjectVenue{
		ID:                uuid.New().String(),
		ProjectID:         project.ID,
		VenueID:           venue.ID,
		OutreachStatus:    models.OutreachDraft,
		IncludeInProposal: false,
	}

	if err := pvc.db.Create(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Venue already added to this project"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add venue to project"})
		return
	}

	pvc.logActivity(project.ID, c.GetString("user_id"), models.ActionVenueAdded, map[string]interface{}{
		"venue_id":   venue.ID,
		"venue_name": venue.Name,
	})

	link.Venue = venue
	c.JSON(http.StatusCreated, link)
}

// ListVenues returns all venue links for a project with their venues and
// photos. Soft-deleted venues still appear here: historical links survive
// venue deletion.
func (pvc *ProjectVenueController) ListVenues(c *gin.Context) {
	project, ok := findOwnedProject(c, pvc.db, false)
	if !ok {
		return
	}

	var links []models.ProjectVenue
	err := pvc.db.Where("project_id = ?", project.ID).
		Preload("Venue").
		Preload("Venue.Photos", photoOrder).
		Preload("CateringProvider").
		Order("created_at ASC").
		Find(&links).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch project venues"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": links})
}

// UpdateVenue applies a partial update to a link. Only fields present in
// the payload change; explicit null clears a field. Status changes pass
// through the transition policy.
func (pvc *ProjectVenueController) UpdateVenue(c *gin.Context) {
	project, ok := findOwnedProject(c, pvc.db, false)
	if !ok {
		return
	}

	link, ok := pvc.findLink(c, project.ID)
	if !ok {
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read request body"})
		return
	}

	updates, err := services.LinkUpdates(body)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	if newStatus, ok := updates["outreach_status"].(string); ok {
		if !models.AllowTransition(link.OutreachStatus, newStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status transition not allowed"})
			return
		}
	}

	if providerID, ok := updates["catering_provider_id"].(string); ok {
		var provider models.CateringProvider
		if err := pvc.db.First(&provider, "id = ?", providerID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Catering provider not found"})
			return
		}
	}

	if len(updates) > 0 {
		if err := pvc.db.Model(link).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project venue"})
			return
		}

		changed := make([]interface{}, 0, len(updates))
		for field := range updates {
			changed = append(changed, field)
		}
		pvc.logActivity(project.ID, c.GetString("user_id"), models.ActionVenueUpdated, map[string]interface{}{
			"venue_id": link.VenueID,
			"fields":   changed,
		})
	}

	updated, ok := pvc.findLink(c, project.ID)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RemoveVenue deletes the link. The venue and project themselves are
// untouched.
func (pvc *ProjectVenueController) RemoveVenue(c *gin.Context) {
	project, ok := findOwnedProject(c, pvc.db, false)
	if !ok {
		return
	}

	link, ok := pvc.findLink(c, project.ID)
	if !ok {
		return
	}

	if err := pvc.db.Delete(link).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove venue from project"})
		return
	}

	pvc.logActivity(project.ID, c.GetString("user_id"), models.ActionVenueRemoved, map[string]interface{}{
		"venue_id": link.VenueID,
	})

	c.Status(http.StatusNoContent)
}

// GenerateDescription produces AI marketing copy for a venue candidate from
// its stored briefing. Requires a non-empty ai_context on the link.
func (pvc *ProjectVenueController) GenerateDescription(c *gin.Context) {
	project, ok := findOwnedProject(c, pvc.db, false)
	if !ok {
		return
	}

	link, ok := pvc.findLink(c, project.ID)
	if !ok {
		return
	}
	link.Project = *project

	description, err := pvc.descriptionService.GenerateForLink(c.Request.Context(), link)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	pvc.logActivity(project.ID, c.GetString("user_id"), models.ActionDescriptionGenerated, map[string]interface{}{
		"venue_id": link.VenueID,
	})

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"ai_description": description,
		"message":        "Description generated successfully",
	})
}

// SendInquiry emails an availability inquiry to the venue contact and moves
// a draft link to sent.
func (pvc *ProjectVenueController) SendInquiry(c *gin.Context) {
	project, ok := findOwnedProject(c, pvc.db, false)
	if !ok {
		return
	}

	link, ok := pvc.findLink(c, project.ID)
	if !ok {
		return
	}

	var sender models.User
	if err := pvc.db.First(&sender, "id = ?", c.GetString("user_id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := pvc.outreachService.SendVenueInquiry(project, &link.Venue, &sender); err != nil {
		utils.SendServiceError(c, err)
		return
	}

	if link.OutreachStatus == models.OutreachDraft && models.AllowTransition(link.OutreachStatus, models.OutreachSent) {
		if err := pvc.db.Model(link).Update("outreach_status", models.OutreachSent).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Inquiry sent but status update failed"})
			return
		}
		link.OutreachStatus = models.OutreachSent
	}

	pvc.logActivity(project.ID, sender.ID, models.ActionInquirySent, map[string]interface{}{
		"venue_id":   link.VenueID,
		"venue_name": link.Venue.Name,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Inquiry sent to " + link.Venue.Name,
		"status":  link.OutreachStatus,
	})
}

func (pvc *ProjectVenueController) findLink(c *gin.Context, projectID string) (*models.ProjectVenue, bool) {
	venueID := c.Param("venue_id")

	var link models.ProjectVenue
	err := pvc.db.Where("project_id = ? AND venue_id = ?", projectID, venueID).
		Preload("Venue").
		Preload("Venue.Photos", photoOrder).
		Preload("CateringProvider").
		First(&link).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Venue not found in this project"})
		return nil, false
	}

	return &link, true
}

func (pvc *ProjectVenueController) logActivity(projectID, userID, action string, details map[string]interface{}) {
	// The audit trail must never fail the request it describes
	if err := pvc.activityRepo.Append(projectID, userID, action, details); err != nil {
		log.Printf("Warning: failed to record %s activity for project %s: %v", action, projectID, err)
	}
}
