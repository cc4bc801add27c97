package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"venuescout-api/models"
	"venuescout-api/repositories"
	"venuescout-api/services"
	"venuescout-api/utils"
)

// ProposalController turns a project's venue shortlist into client-facing
// proposal documents.
type ProposalController struct {
	db              *gorm.DB
	proposalService *services.ProposalService
	activityRepo    *repositories.ActivityRepository
}

func NewProposalController(db *gorm.DB, proposalService *services.ProposalService, activityRepo *repositories.ActivityRepository) *ProposalController {
	return &ProposalController{
		db:              db,
		proposalService: proposalService,
		activityRepo:    activityRepo,
	}
}

// PreviewProposal renders the proposal as HTML for in-browser review before
// download.
func (pc *ProposalController) PreviewProposal(c *gin.Context) {
	project, ok := findOwnedProject(c, pc.db, true)
	if !ok {
		return
	}

	doc, err := pc.proposalService.BuildProposal(project)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	html, err := pc.proposalService.RenderHTML(doc)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render proposal"})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// DownloadProposal renders the proposal as a PDF attachment.
func (pc *ProposalController) DownloadProposal(c *gin.Context) {
	project, ok := findOwnedProject(c, pc.db, true)
	if !ok {
		return
	}

	doc, err := pc.proposalService.BuildProposal(project)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	pdf, err := pc.proposalService.RenderPDF(doc)
	if err != nil {
		utils.SendServiceError(c, err)
		return
	}

	if err := pc.activityRepo.Append(project.ID, c.GetString("user_id"), models.ActionProposalGenerated, map[string]interface{}{
		"venue_count": len(doc.Included),
	}); err != nil {
		log.Printf("Warning: failed to record proposal activity for project %s: %v", project.ID, err)
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, services.ProposalFilename(project)))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
