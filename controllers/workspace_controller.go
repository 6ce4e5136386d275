package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/vaelen/project-tracker/config"
	"github.com/vaelen/project-tracker/store"
	"github.com/vaelen/project-tracker/utils"
)

// WorkspaceController exposes workspace-wide settings and stats that the
// GUI needs to render forms and the overview page.
type WorkspaceController struct {
	Store  *store.Store
	Config *config.Config
	Logger *log.Logger
}

func NewWorkspaceController(s *store.Store, cfg *config.Config, logger *log.Logger) *WorkspaceController {
	return &WorkspaceController{
		Store:  s,
		Config: cfg,
		Logger: logger,
	}
}

// GetConfig returns the display-relevant configuration: the ticket link
// base, the suggested email domain, and the project type choices
func (wc *WorkspaceController) GetConfig(c *fiber.Ctx) error {
	return c.JSON(utils.SuccessResponse(fiber.Map{
		"jira_base_url":        wc.Config.JiraBaseURL,
		"default_email_domain": wc.Config.DefaultEmailDomain,
		"project_types":        wc.Config.ProjectTypes,
	}))
}

// GetSummary returns entity counts for the workspace overview cards
func (wc *WorkspaceController) GetSummary(c *fiber.Ctx) error {
	summary, err := wc.Store.GetSummary()
	if err != nil {
		return respondStoreError(c, wc.Logger, "Workspace", err)
	}

	return c.JSON(utils.SuccessResponse(summary))
}
