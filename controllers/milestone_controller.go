package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/vaelen/project-tracker/config"
	"github.com/vaelen/project-tracker/models"
	"github.com/vaelen/project-tracker/store"
	"github.com/vaelen/project-tracker/utils"
)

type MilestoneController struct {
	Store  *store.Store
	Config *config.Config
	Logger *log.Logger
}

func NewMilestoneController(s *store.Store, cfg *config.Config, logger *log.Logger) *MilestoneController {
	return &MilestoneController{
		Store:  s,
		Config: cfg,
		Logger: logger,
	}
}

// milestoneResponse decorates a milestone with its reconstructed epic link
type milestoneResponse struct {
	models.Milestone
	EpicURL *string `json:"epic_url,omitempty"`
}

func (mc *MilestoneController) decorate(m *models.Milestone) milestoneResponse {
	return milestoneResponse{
		Milestone: *m,
		EpicURL:   utils.TicketURL(mc.Config.JiraBaseURL, m.JiraEpic),
	}
}

// milestoneInput uses a pointer for the number so zero is distinguishable
// from absent; the number is caller-chosen, not generated.
type milestoneInput struct {
	Number        *int    `json:"number" validate:"required"`
	Name          string  `json:"name" validate:"required,max=200"`
	Description   *string `json:"description"`
	TechnicalLead *string `json:"technical_lead"`
	Team          *string `json:"team"`
	DesignDocURL  *string `json:"design_doc_url"`
	StartDate     *string `json:"start_date"`
	DueDate       *string `json:"due_date"`
	JiraEpic      *string `json:"jira_epic"`
}

func (in *milestoneInput) toModel() (*models.Milestone, error) {
	start, err := utils.ParseDatePtr(in.StartDate)
	if err != nil {
		return nil, err
	}
	due, err := utils.ParseDatePtr(in.DueDate)
	if err != nil {
		return nil, err
	}

	return &models.Milestone{
		Number:        *in.Number,
		Name:          in.Name,
		Description:   in.Description,
		TechnicalLead: in.TechnicalLead,
		Team:          in.Team,
		DesignDocURL:  in.DesignDocURL,
		StartDate:     start,
		DueDate:       due,
		JiraEpic:      in.JiraEpic,
	}, nil
}

// CreateMilestone adds a numbered milestone to a project
func (mc *MilestoneController) CreateMilestone(c *fiber.Ctx) error {
	projectID := c.Params("id")

	var input milestoneInput

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	milestone, err := input.toModel()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid date", err)
	}
	milestone.ProjectID = projectID

	if err := mc.Store.CreateMilestone(milestone); err != nil {
		return respondStoreError(c, mc.Logger, "Milestone", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(mc.decorate(milestone)))
}

// GetMilestone returns one milestone with its reconstructed epic link
func (mc *MilestoneController) GetMilestone(c *fiber.Ctx) error {
	id := c.Params("id")

	milestone, err := mc.Store.GetMilestone(id)
	if err != nil {
		return respondStoreError(c, mc.Logger, "Milestone", err)
	}

	return c.JSON(utils.SuccessResponse(mc.decorate(milestone)))
}

// GetProjectMilestones lists a project's milestones in number order
func (mc *MilestoneController) GetProjectMilestones(c *fiber.Ctx) error {
	projectID := c.Params("id")

	milestones, err := mc.Store.GetProjectMilestones(projectID)
	if err != nil {
		return respondStoreError(c, mc.Logger, "Milestone", err)
	}

	out := make([]milestoneResponse, 0, len(milestones))
	for i := range milestones {
		out = append(out, mc.decorate(&milestones[i]))
	}
	return c.JSON(utils.SuccessResponse(out))
}

// UpdateMilestone overwrites a milestone's attributes. The number may
// change as long as it stays unique within the project; the owning
// project never changes.
func (mc *MilestoneController) UpdateMilestone(c *fiber.Ctx) error {
	id := c.Params("id")

	var input milestoneInput

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

	milestone, err := mc.Store.UpdateMilestone(id, in)
	if err != nil {
		return respondStoreError(c, mc.Logger, "Milestone", err)
	}

	return c.JSON(utils.SuccessResponse(mc.decorate(milestone)))
}

// DeleteMilestone removes a milestone, its assignments, and its notes
func (mc *MilestoneController) DeleteMilestone(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := mc.Store.DeleteMilestone(id); err != nil {
		return respondStoreError(c, mc.Logger, "Milestone", err)
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{"deleted": id}))
}

// AddResource assigns a person to work on a milestone. Re-adding the
// same person updates the role in place.
func (mc *MilestoneController) AddResource(c *fiber.Ctx) error {
	id := c.Params("id")
	email := c.Params("email")

	var input struct {
		Role *string `json:"role"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	link, err := mc.Store.AddMilestoneResource(id, email, input.Role)
	if err != nil {
		return respondStoreError(c, mc.Logger, "Resource", err)
	}

	return c.JSON(utils.SuccessResponse(link))
}

// GetResources lists a milestone's assigned people with names resolved
func (mc *MilestoneController) GetResources(c *fiber.Ctx) error {
	id := c.Params("id")

	links, err := mc.Store.GetMilestoneResources(id)
	if err != nil {
		return respondStoreError(c, mc.Logger, "Resource", err)
	}

	out := make([]memberResponse, 0, len(links))
	for _, l := range links {
		out = append(out, memberResponse{
			MilestoneID: l.MilestoneID,
			PersonEmail: l.PersonEmail,
			PersonName:  mc.Store.ResolvePersonName(l.PersonEmail),
			Role:        l.Role,
		})
	}
	return c.JSON(utils.SuccessResponse(out))
}

// RemoveResource unassigns a person from a milestone
func (mc *MilestoneController) RemoveResource(c *fiber.Ctx) error {
	id := c.Params("id")
	email := c.Params("email")

	if err := mc.Store.RemoveMilestoneResource(id, email); err != nil {
		return respondStoreError(c, mc.Logger, "Resource", err)
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{
		"milestone_id": id,
		"email":        email,
	}))
}
