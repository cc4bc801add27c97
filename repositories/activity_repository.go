package repositories

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"venuescout-api/models"
)

// ActivityRepository appends and reads project audit records. The log is
// append-only: there is deliberately no update or delete here.
type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Append records an action taken on a project.
func (r *ActivityRepository) Append(projectID, userID, action string, details map[string]interface{}) error {
	entry := models.ActivityLog{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		UserID:    userID,
		Action:    action,
		Details:   datatypes.JSONMap(details),
	}
	return r.db.Create(&entry).Error
}

// ListByProject returns a project's audit entries, newest first.
func (r *ActivityRepository) ListByProject(projectID string, page, pageSize int) ([]models.ActivityLog, int64, error) {
	var total int64
	if err := r.db.Model(&models.ActivityLog{}).Where("project_id = ?", projectID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []models.ActivityLog
	err := r.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}
