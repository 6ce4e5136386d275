package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/vaelen/project-tracker/config"
	"github.com/vaelen/project-tracker/models"
	"github.com/vaelen/project-tracker/store"
	"github.com/vaelen/project-tracker/utils"
)

type PersonController struct {
	Store  *store.Store
	Config *config.Config
	Logger *log.Logger
}

func NewPersonController(s *store.Store, cfg *config.Config, logger *log.Logger) *PersonController {
	return &PersonController{
		Store:  s,
		Config: cfg,
		Logger: logger,
	}
}

// CreatePerson registers a person keyed by email
func (pc *PersonController) CreatePerson(c *fiber.Ctx) error {
	var input struct {
		Email   string  `json:"email" validate:"required,max=320"`
		Name    string  `json:"name" validate:"required,max=200"`
		Team    *string `json:"team"`
		Manager *string `json:"manager"`
		Notes   *string `json:"notes"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	// Odd-looking addresses are allowed on purpose; directories carry
	// service accounts and historical entries that fail strict checks.
	if !utils.ValidEmailFormat(input.Email) {
		pc.Logger.Printf("creating person with unusual email format: %s", input.Email)
	}

	person := models.Person{
		Email:   input.Email,
		Name:    input.Name,
		Team:    input.Team,
		Manager: input.Manager,
		Notes:   input.Notes,
	}

	if err := pc.Store.CreatePerson(&person); err != nil {
		return respondStoreError(c, pc.Logger, "Person", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(person))
}

// GetPerson returns one person by email
func (pc *PersonController) GetPerson(c *fiber.Ctx) error {
	email := c.Params("email")

	person, err := pc.Store.GetPerson(email)
	if err != nil {
		return respondStoreError(c, pc.Logger, "Person", err)
	}

	return c.JSON(utils.SuccessResponse(person))
}

// ListPeople returns everyone, optionally narrowed to one team. A team
// filter naming a deleted team matches whoever still references it.
func (pc *PersonController) ListPeople(c *fiber.Ctx) error {
	team := c.Query("team")

	people, err := pc.Store.ListPeople(team)
	if err != nil {
		return respondStoreError(c, pc.Logger, "Person", err)
	}

	return c.JSON(utils.SuccessResponse(people))
}

// SearchPeople does a case-insensitive substring match on names, for
// autocomplete fields
func (pc *PersonController) SearchPeople(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Query parameter q is required", nil)
	}

	people, err := pc.Store.SearchPeople(query)
	if err != nil {
		return respondStoreError(c, pc.Logger, "Person", err)
	}

	return c.JSON(utils.SuccessResponse(people))
}

// UpdatePerson overwrites a person's mutable attributes. The email key
// never changes.
func (pc *PersonController) UpdatePerson(c *fiber.Ctx) error {
	email := c.Params("email")

	var input struct {
		Name    string  `json:"name" validate:"required,max=200"`
		Team    *string `json:"team"`
		Manager *string `json:"manager"`
		Notes   *string `json:"notes"`
	}

	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	person, err := pc.Store.UpdatePerson(email, &models.Person{
		Name:    input.Name,
		Team:    input.Team,
		Manager: input.Manager,
		Notes:   input.Notes,
	})
	if err != nil {
		return respondStoreError(c, pc.Logger, "Person", err)
	}

	return c.JSON(utils.SuccessResponse(person))
}

// DeletePerson removes a person. References to them elsewhere survive
// and render as unknown.
func (pc *PersonController) DeletePerson(c *fiber.Ctx) error {
	email := c.Params("email")

	if err := pc.Store.DeletePerson(email); err != nil {
		return respondStoreError(c, pc.Logger, "Person", err)
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{"deleted": email}))
}

// SuggestEmail proposes an address from a display name and the workspace
// default domain, for form autofill. Suggestion only, never enforced.
func (pc *PersonController) SuggestEmail(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Query parameter name is required", nil)
	}

	suggestion := utils.SuggestEmail(name, pc.Config.DefaultEmailDomain)
	return c.JSON(utils.SuccessResponse(fiber.Map{"email": suggestion}))
}
