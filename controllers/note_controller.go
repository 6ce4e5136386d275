package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/vaelen/project-tracker/store"
	"github.com/vaelen/project-tracker/utils"
)

// NoteController serves the three note kinds. Notes live and die with
// their owner but are otherwise edited independently.
type NoteController struct {
	Store  *store.Store
	Logger *log.Logger
}

func NewNoteController(s *store.Store, logger *log.Logger) *NoteController {
	return &NoteController{
		Store:  s,
		Logger: logger,
	}
}

type noteInput struct {
	Title string `json:"title" validate:"required,max=300"`
	Body  string `json:"body"`
}

// CreateProjectNote attaches a note to a project
func (nc *NoteController) CreateProjectNote(c *fiber.Ctx) error {
	projectID := c.Params("id")

	var input noteInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	note, err := nc.Store.CreateProjectNote(projectID, input.Title, input.Body)
	if err != nil {
		return respondStoreError(c, nc.Logger, "Note", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(note))
}

// GetProjectNotes lists a project's notes, newest first
func (nc *NoteController) GetProjectNotes(c *fiber.Ctx) error {
	projectID := c.Params("id")

	notes, err := nc.Store.GetProjectNotes(projectID)
	if err != nil {
		return respondStoreError(c, nc.Logger, "Note", err)
	}

	return c.JSON(utils.SuccessResponse(notes))
}

// UpdateProjectNote overwrites a note's title and body
func (nc *NoteController) UpdateProjectNote(c *fiber.Ctx) error {
	id := c.Params("id")

	var input noteInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	note, err := nc.Store.UpdateProjectNote(id, input.Title, input.Body)
	if err != nil {
		return respondStoreError(c, nc.Logger, "Note", err)
	}

	return c.JSON(utils.SuccessResponse(note))
}

// DeleteProjectNote removes a single note
func (nc *NoteController) DeleteProjectNote(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := nc.Store.DeleteProjectNote(id); err != nil {
		return respondStoreError(c, nc.Logger, "Note", err)
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{"deleted": id}))
}

// CreateMilestoneNote attaches a note to a milestone
func (nc *NoteController) CreateMilestoneNote(c *fiber.Ctx) error {
	milestoneID := c.Params("id")

	var input noteInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	note, err := nc.Store.CreateMilestoneNote(milestoneID, input.Title, input.Body)
	if err != nil {
		return respondStoreError(c, nc.Logger, "Note", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(note))
}

// GetMilestoneNotes lists a milestone's notes, newest first
func (nc *NoteController) GetMilestoneNotes(c *fiber.Ctx) error {
	milestoneID := c.Params("id")

	notes, err := nc.Store.GetMilestoneNotes(milestoneID)
	if err != nil {
		return respondStoreError(c, nc.Logger, "Note", err)
	}

	return c.JSON(utils.SuccessResponse(notes))
}

// UpdateMilestoneNote overwrites a note's title and body
func (nc *NoteController) UpdateMilestoneNote(c *fiber.Ctx) error {
	id := c.Params("id")

	var input noteInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	note, err := nc.Store.UpdateMilestoneNote(id, input.Title, input.Body)
	if err != nil {
		return respondStoreError(c, nc.Logger, "Note", err)
	}

	return c.JSON(utils.SuccessResponse(note))
}

// DeleteMilestoneNote removes a single note
func (nc *NoteController) DeleteMilestoneNote(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := nc.Store.DeleteMilestoneNote(id); err != nil {
		return respondStoreError(c, nc.Logger, "Note", err)
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{"deleted": id}))
}

// CreateStakeholderNote attaches a note to a project's stakeholder link.
// The stakeholder link must exist first.
func (nc *NoteController) CreateStakeholderNote(c *fiber.Ctx) error {
	projectID := c.Params("id")
	email := c.Params("email")

	var input noteInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	note, err := nc.Store.CreateStakeholderNote(projectID, email, input.Title, input.Body)
	if err != nil {
		return respondStoreError(c, nc.Logger, "Note", err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(note))
}

// GetStakeholderNotes lists the notes on one stakeholder link, newest first
func (nc *NoteController) GetStakeholderNotes(c *fiber.Ctx) error {
	projectID := c.Params("id")
	email := c.Params("email")

	notes, err := nc.Store.GetStakeholderNotes(projectID, email)
	if err != nil {
		return respondStoreError(c, nc.Logger, "Note", err)
	}

	return c.JSON(utils.SuccessResponse(notes))
}

// UpdateStakeholderNote overwrites a note's title and body
func (nc *NoteController) UpdateStakeholderNote(c *fiber.Ctx) error {
	id := c.Params("id")

	var input noteInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	note, err := nc.Store.UpdateStakeholderNote(id, input.Title, input.Body)
	if err != nil {
		return respondStoreError(c, nc.Logger, "Note", err)
	}

	return c.JSON(utils.SuccessResponse(note))
}

// DeleteStakeholderNote removes a single note
func (nc *NoteController) DeleteStakeholderNote(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := nc.Store.DeleteStakeholderNote(id); err != nil {
		return respondStoreError(c, nc.Logger, "Note", err)
	}

	return c.JSON(utils.SuccessResponse(fiber.Map{"deleted": id}))
}
