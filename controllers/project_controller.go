package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"venuescout-api/models"
	"venuescout-api/repositories"
	"venuescout-api/utils"
)

type ProjectController struct {
	db           *gorm.DB
	activityRepo *repositories.ActivityRepository
}

func NewProjectController(db *gorm.DB, activityRepo *repositories.ActivityRepository) *ProjectController {
	return &ProjectController{db: db, activityRepo: activityRepo}
}

type CreateProjectRequest struct {
	ClientName         string     `json:"client_name" binding:"required"`
	EventName          string     `json:"event_name" binding:"required"`
	EventDateStart     time.Time  `json:"event_date_start" binding:"required"`
	EventDateEnd       *time.Time `json:"event_date_end"`
	AttendeeCount      int        `json:"attendee_count" binding:"required,min=1"`
	Budget             *float64   `json:"budget"`
	LocationPreference *string    `json:"location_preference"`
	Requirements       []string   `json:"requirements"`
	ClientID           *string    `json:"client_id"`
	Notes              *string    `json:"notes"`
}

type UpdateProjectRequest struct {
	ClientName         *string    `json:"client_name"`
	EventName          *string    `json:"event_name"`
	EventDateStart     *time.Time `json:"event_date_start"`
	EventDateEnd       *time.Time `json:"event_date_end"`
	AttendeeCount      *int       `json:"attendee_count"`
	Budget             *float64   `json:"budget"`
	LocationPreference *string    `json:"location_preference"`
	Requirements       []string   `json:"requirements"`
	Status             *string    `json:"status"`
	ClientID           *string    `json:"client_id"`
	Notes              *string    `json:"notes"`
}

func (pc *ProjectController) GetProjects(c *gin.Context) {
	userID := c.GetString("user_id")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = utils.ParsePagination(page, pageSize)

	query := pc.db.Model(&models.Project{}).Where("user_id = ?", userID)

	if status := c.Query("status"); status != "" {
		if !models.IsValidProjectStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project status"})
			return
		}
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count projects"})
		return
	}

	var projects []models.Project
	err := query.Preload("Client").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&projects).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch projects"})
		return
	}

	utils.SendPaginated(c, projects, page, pageSize, total)
}

func (pc *ProjectController) CreateProject(c *gin.Context) {
	userID := c.GetString("user_id")

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.ClientID != nil {
		var client models.Client
		if err := pc.db.First(&client, "id = ?", *req.ClientID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
			return
		}
	}

	project := models.Project{
		ID:                 uuid.New().String(),
		UserID:             userID,
		ClientName:         req.ClientName,
		EventName:          req.EventName,
		EventDateStart:     req.EventDateStart,
		EventDateEnd:       req.EventDateEnd,
		AttendeeCount:      req.AttendeeCount,
		Budget:             req.Budget,
		LocationPreference: req.LocationPreference,
		Requirements:       models.StringSlice(req.Requirements),
		Status:             models.ProjectStatusActive,
		ClientID:           req.ClientID,
		Notes:              req.Notes,
	}

	if err := pc.db.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, project)
}

func (pc *ProjectController) GetProject(c *gin.Context) {
	project, ok := findOwnedProject(c, pc.db, true)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, project)
}

func (pc *ProjectController) UpdateProject(c *gin.Context) {
	project, ok := findOwnedProject(c, pc.db, false)
	if !ok {
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.ClientName != nil {
		updates["client_name"] = *req.ClientName
	}
	if req.EventName != nil {
		updates["event_name"] = *req.EventName
	}
	if req.EventDateStart != nil {
		updates["event_date_start"] = *req.EventDateStart
	}
	if req.EventDateEnd != nil {
		updates["event_date_end"] = *req.EventDateEnd
	}
	if req.AttendeeCount != nil {
		if *req.AttendeeCount < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Attendee count must be at least 1"})
			return
		}
		updates["attendee_count"] = *req.AttendeeCount
	}
	if req.Budget != nil {
		updates["budget"] = *req.Budget
	}
	if req.LocationPreference != nil {
		updates["location_preference"] = *req.LocationPreference
	}
	if req.Requirements != nil {
		updates["requirements"] = models.StringSlice(req.Requirements)
	}
	if req.Status != nil {
		if !models.IsValidProjectStatus(*req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project status"})
			return
		}
		updates["status"] = *req.Status
	}
	if req.ClientID != nil {
		var client models.Client
		if err := pc.db.First(&client, "id = ?", *req.ClientID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
			return
		}
		updates["client_id"] = *req.ClientID
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	if len(updates) > 0 {
		if err := pc.db.Model(project).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
			return
		}
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject removes a project together with its venue links and audit
// trail.
func (pc *ProjectController) DeleteProject(c *gin.Context) {
	project, ok := findOwnedProject(c, pc.db, false)
	if !ok {
		return
	}

	err := pc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.ProjectVenue{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.ActivityLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(project).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetActivity lists a project's audit trail, newest first.
func (pc *ProjectController) GetActivity(c *gin.Context) {
	project, ok := findOwnedProject(c, pc.db, false)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = utils.ParsePagination(page, pageSize)

	entries, total, err := pc.activityRepo.ListByProject(project.ID, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch activity log"})
		return
	}

	utils.SendPaginated(c, entries, page, pageSize, total)
}

// findOwnedProject loads the project in the :id path parameter and checks
// it belongs to the authenticated user. An ownership mismatch looks exactly
// like a missing project to the caller. With withVenues set, venue links
// come preloaded with their venues, photos and the client profile.
func findOwnedProject(c *gin.Context, db *gorm.DB, withVenues bool) (*models.Project, bool) {
	userID := c.GetString("user_id")
	projectID := c.Param("id")

	query := db.Preload("Client")
	if withVenues {
		query = query.
			Preload("ProjectVenues", func(db *gorm.DB) *gorm.DB {
				return db.Order("created_at ASC")
			}).
			Preload("ProjectVenues.Venue").
			Preload("ProjectVenues.Venue.Photos", photoOrder).
			Preload("ProjectVenues.CateringProvider")
	}

	var project models.Project
	if err := query.First(&project, "id = ? AND user_id = ?", projectID, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return nil, false
	}

	return &project, true
}
