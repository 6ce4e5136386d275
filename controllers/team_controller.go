package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/vaelen/project-tracker/models"
	"github.com/vaelen/project-tracker/store"
	"github.com/vaelen/project-tracker/utils"
)

type TeamController struct {
	Store  *store.Store
	Logger *log.Logger
}

func NewTeamController(s *store.Store, logger *log.Logger) *TeamController {
	return &TeamController{
		Store:  s,
		Logger: logger,
	}
}

// CreateTeam registers a team keyed by name
func (tc *TeamController) CreateTeam(c *fiber.Ctx) error {
	var input struct {
		Name        string  `json:"name" validate:"required,max=200"`
		Description *string `json:"description"`
		Manager     *string `json:"manager"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	team := models.Team{
		Name:        input.Name,
		Description: input.Description,
		Manager:     input.Manager,
	}

	if err := tc.Store.CreateTeam(&team); err != nil {
		return respondStoreError(c, tc.Logger, "Team", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(team))
}

// GetTeam returns one team by name
func (tc *TeamController) GetTeam(c *fiber.Ctx) error {
	name := c.Params("name")

	team, err := tc.Store.GetTeam(name)
	if err != nil {
		return respondStoreError(c, tc.Logger, "Team", err)
	}

	return c.JSON(utils.SuccessResponse(team))
}

// ListTeams returns all teams ordered by name
func (tc *TeamController) ListTeams(c *fiber.Ctx) error {
	teams, err := tc.Store.ListTeams()
	if err != nil {
		return respondStoreError(c, tc.Logger, "Team", err)
	}

	return c.JSON(utils.SuccessResponse(teams))
}

// SearchTeams does a case-insensitive substring match on names
func (tc *TeamController) SearchTeams(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Query parameter q is required", nil)
	}

	teams, err := tc.Store.SearchTeams(query)
	if err != nil {
		return respondStoreError(c, tc.Logger, "Team", err)
	}

	return c.JSON(utils.SuccessResponse(teams))
}

// UpdateTeam overwrites a team's description and manager. The name key
// never changes.
func (tc *TeamController) UpdateTeam(c *fiber.Ctx) error {
	name := c.Params("name")

	var input struct {
		Description *string `json:"description"`
		Manager     *string `json:"manager"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	team, err := tc.Store.UpdateTeam(name, &models.Team{
		Description: input.Description,
		Manager:     input.Manager,
	})
	if err != nil {
		return respondStoreError(c, tc.Logger, "Team", err)
	}

	return c.JSON(utils.SuccessResponse(team))
}

// DeleteTeam removes a team and its membership rows. People who named
// the team keep the dangling reference.
func (tc *TeamController) DeleteTeam(c *fiber.Ctx) error {
	name := c.Params("name")

	if err := tc.Store.DeleteTeam(name); err != nil {
		return respondStoreError(c, tc.Logger, "Team", err)
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{"deleted": name}))
}

// AddTeamMember adds a person to a team's explicit member list
func (tc *TeamController) AddTeamMember(c *fiber.Ctx) error {
	name := c.Params("name")

	var input struct {
		Email string `json:"email" validate:"required,max=320"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := tc.Store.AddTeamMember(name, input.Email); err != nil {
		return respondStoreError(c, tc.Logger, "Team member", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(fiber.Map{
		"team":  name,
		"email": input.Email,
	}))
}

// RemoveTeamMember drops a person from a team's member list
func (tc *TeamController) RemoveTeamMember(c *fiber.Ctx) error {
	name := c.Params("name")
	email := c.Params("email")

	if err := tc.Store.RemoveTeamMember(name, email); err != nil {
		return respondStoreError(c, tc.Logger, "Team member", err)
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{
		"team":  name,
		"email": email,
	}))
}

// GetTeamMembers lists a team's members as full person records
func (tc *TeamController) GetTeamMembers(c *fiber.Ctx) error {
	name := c.Params("name")

	members, err := tc.Store.GetTeamMembers(name)
	if err != nil {
		return respondStoreError(c, tc.Logger, "Team", err)
	}

	return c.JSON(utils.SuccessResponse(members))
}
