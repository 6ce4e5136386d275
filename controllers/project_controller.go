package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/vaelen/project-tracker/config"
	"github.com/vaelen/project-tracker/models"
	"github.com/vaelen/project-tracker/store"
	"github.com/vaelen/project-tracker/utils"
)

type ProjectController struct {
	Store  *store.Store
	Config *config.Config
	Logger *log.Logger
}

func NewProjectController(s *store.Store, cfg *config.Config, logger *log.Logger) *ProjectController {
	return &ProjectController{
		Store:  s,
		Config: cfg,
		Logger: logger,
	}
}

// projectResponse decorates a project with its reconstructed ticket link.
// The link is derived at read time from configuration, never stored.
type projectResponse struct {
	models.Project
	InitiativeURL *string `json:"initiative_url,omitempty"`
}

func (pc *ProjectController) decorate(p *models.Project) projectResponse {
	return projectResponse{
		Project:       *p,
		InitiativeURL: utils.TicketURL(pc.Config.JiraBaseURL, p.JiraInitiative),
	}
}

// memberResponse is a stakeholder or resource row with the person's
// display name resolved. Deleted people resolve to "unknown".
type memberResponse struct {
	ProjectID   string  `json:"project_id,omitempty"`
	MilestoneID string  `json:"milestone_id,omitempty"`
	PersonEmail string  `json:"person_email"`
	PersonName  string  `json:"person_name"`
	Role        *string `json:"role,omitempty"`
}

type projectInput struct {
	Name              string  `json:"name" validate:"required,max=200"`
	Description       *string `json:"description"`
	ProjectType       string  `json:"project_type" validate:"max=100"`
	RequirementsOwner *string `json:"requirements_owner"`
	TechnicalLead     *string `json:"technical_lead"`
	Manager           *string `json:"manager"`
	Team              *string `json:"team"`
	StartDate         *string `json:"start_date"`
	DueDate           *string `json:"due_date"`
	JiraInitiative    *string `json:"jira_initiative"`
}

// toModel parses the date strings; everything else carries over as-is.
// The project type is not checked against the configured list on purpose:
// the list is a display-time enum and out-of-list values must round-trip.
func (in *projectInput) toModel() (*models.Project, error) {
	start, err := utils.ParseDatePtr(in.StartDate)
	if err != nil {
		return nil, err
	}
	due, err := utils.ParseDatePtr(in.DueDate)
	if err != nil {
		return nil, err
	}

	return &models.Project{
		Name:              in.Name,
		Description:       in.Description,
		ProjectType:       in.ProjectType,
		RequirementsOwner: in.RequirementsOwner,
		TechnicalLead:     in.TechnicalLead,
		Manager:           in.Manager,
		Team:              in.Team,
		StartDate:         start,
		DueDate:           due,
		JiraInitiative:    in.JiraInitiative,
	}, nil
}

// CreateProject registers a project and assigns its id
func (pc *ProjectController) CreateProject(c *fiber.Ctx) error {
	var input projectInput

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	project, err := input.toModel()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid date", err)
	}

	if err := pc.Store.CreateProject(project); err != nil {
		return respondStoreError(c, pc.Logger, "Project", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(pc.decorate(project)))
}

// GetProject returns one project with its reconstructed initiative link
func (pc *ProjectController) GetProject(c *fiber.Ctx) error {
	id := c.Params("id")

	project, err := pc.Store.GetProject(id)
	if err != nil {
		return respondStoreError(c, pc.Logger, "Project", err)
	}

	return c.JSON(utils.SuccessResponse(pc.decorate(project)))
}

// ListProjects returns all projects, optionally narrowed to one team
func (pc *ProjectController) ListProjects(c *fiber.Ctx) error {
	team := c.Query("team")

	projects, err := pc.Store.ListProjects(team)
	if err != nil {
		return respondStoreError(c, pc.Logger, "Project", err)
	}

	out := make([]projectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, pc.decorate(&projects[i]))
	}
	return c.JSON(utils.SuccessResponse(out))
}

// UpdateProject overwrites a project's attributes
func (pc *ProjectController) UpdateProject(c *fiber.Ctx) error {
	id := c.Params("id")

	var input projectInput

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	in, err := input.toModel()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid date", err)
	}

	project, err := pc.Store.UpdateProject(id, in)
	if err != nil {
		return respondStoreError(c, pc.Logger, "Project", err)
	}

	return c.JSON(utils.SuccessResponse(pc.decorate(project)))
}

// DeleteProject removes a project and everything it owns
func (pc *ProjectController) DeleteProject(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := pc.Store.DeleteProject(id); err != nil {
		return respondStoreError(c, pc.Logger, "Project", err)
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{"deleted": id}))
}

// AddStakeholder records a person's interest in a project. Re-adding the
// same person updates the role in place.
func (pc *ProjectController) AddStakeholder(c *fiber.Ctx) error {
	id := c.Params("id")
	email := c.Params("email")

	var input struct {
		Role *string `json:"role"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	link, err := pc.Store.AddProjectStakeholder(id, email, input.Role)
	if err != nil {
		return respondStoreError(c, pc.Logger, "Stakeholder", err)
	}

	return c.JSON(utils.SuccessResponse(link))
}

// GetStakeholders lists a project's stakeholders with names resolved
func (pc *ProjectController) GetStakeholders(c *fiber.Ctx) error {
	id := c.Params("id")

	links, err := pc.Store.GetProjectStakeholders(id)
	if err != nil {
		return respondStoreError(c, pc.Logger, "Stakeholder", err)
	}

	out := make([]memberResponse, 0, len(links))
	for _, l := range links {
		out = append(out, memberResponse{
			ProjectID:   l.ProjectID,
			PersonEmail: l.StakeholderEmail,
			PersonName:  pc.Store.ResolvePersonName(l.StakeholderEmail),
			Role:        l.Role,
		})
	}
	return c.JSON(utils.SuccessResponse(out))
}

// RemoveStakeholder drops a stakeholder link and its notes
func (pc *ProjectController) RemoveStakeholder(c *fiber.Ctx) error {
	id := c.Params("id")
	email := c.Params("email")

	if err := pc.Store.RemoveProjectStakeholder(id, email); err != nil {
		return respondStoreError(c, pc.Logger, "Stakeholder", err)
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{
		"project_id": id,
		"email":      email,
	}))
}

// AddResource assigns a person to work on a project. Re-adding the same
// person updates the role in place.
func (pc *ProjectController) AddResource(c *fiber.Ctx) error {
	id := c.Params("id")
	email := c.Params("email")

	var input struct {
		Role *string `json:"role"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	link, err := pc.Store.AddProjectResource(id, email, input.Role)
	if err != nil {
		return respondStoreError(c, pc.Logger, "Resource", err)
	}

	return c.JSON(utils.SuccessResponse(link))
}

// GetResources lists a project's assigned people with names resolved
func (pc *ProjectController) GetResources(c *fiber.Ctx) error {
	id := c.Params("id")

	links, err := pc.Store.GetProjectResources(id)
	if err != nil {
		return respondStoreError(c, pc.Logger, "Resource", err)
	}

	out := make([]memberResponse, 0, len(links))
	for _, l := range links {
		out = append(out, memberResponse{
			ProjectID:   l.ProjectID,
			PersonEmail: l.PersonEmail,
			PersonName:  pc.Store.ResolvePersonName(l.PersonEmail),
			Role:        l.Role,
		})
	}
	return c.JSON(utils.SuccessResponse(out))
}

// RemoveResource unassigns a person from a project
func (pc *ProjectController) RemoveResource(c *fiber.Ctx) error {
	id := c.Params("id")
	email := c.Params("email")

	if err := pc.Store.RemoveProjectResource(id, email); err != nil {
		return respondStoreError(c, pc.Logger, "Resource", err)
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{
		"project_id": id,
		"email":      email,
	}))
}
