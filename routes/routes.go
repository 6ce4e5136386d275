package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"github.com/vaelen/project-tracker/config"
	controller "github.com/vaelen/project-tracker/controllers"
	"github.com/vaelen/project-tracker/middleware"
	"github.com/vaelen/project-tracker/store"
)

func SetupAPIRoutes(app *fiber.App, db *gorm.DB) {
	// One store instance backs every controller
	engine := store.New(db)
	cfg := &config.AppConfig

	personController := controller.NewPersonController(engine, cfg, log.New(os.Stdout, "PERSON: ", log.Ldate|log.Ltime|log.Lshortfile))
	teamController := controller.NewTeamController(engine, log.New(os.Stdout, "TEAM: ", log.Ldate|log.Ltime|log.Lshortfile))
	projectController := controller.NewProjectController(engine, cfg, log.New(os.Stdout, "PROJECT: ", log.Ldate|log.Ltime|log.Lshortfile))
	milestoneController := controller.NewMilestoneController(engine, cfg, log.New(os.Stdout, "MILESTONE: ", log.LstdFlags))
	noteController := controller.NewNoteController(engine, log.New(os.Stdout, "NOTE: ", log.LstdFlags))
	timelineController := controller.NewTimelineController(engine, log.New(os.Stdout, "TIMELINE: ", log.LstdFlags))
	workspaceController := controller.NewWorkspaceController(engine, cfg, log.New(os.Stdout, "WORKSPACE: ", log.LstdFlags))

	// API group with versioning, rate limiting, and request logging
	api := app.Group("/api/v1", middleware.APIRateLimiter(), logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// People routes. The static paths come before the :email wildcard.
	people := api.Group("/people")
	people.Post("/", personController.CreatePerson)
	people.Get("/", personController.ListPeople)
	people.Get("/search", personController.SearchPeople)
	people.Get("/suggest-email", personController.SuggestEmail)
	people.Get("/:email", personController.GetPerson)
	people.Put("/:email", personController.UpdatePerson)
	people.Delete("/:email", personController.DeletePerson)

	// Team routes
	teams := api.Group("/teams")
	teams.Post("/", teamController.CreateTeam)
	teams.Get("/", teamController.ListTeams)
	teams.Get("/search", teamController.SearchTeams)
	teams.Get("/:name", teamController.GetTeam)
	teams.Put("/:name", teamController.UpdateTeam)
	teams.Delete("/:name", teamController.DeleteTeam)
	teams.Post("/:name/members", teamController.AddTeamMember)
	teams.Get("/:name/members", teamController.GetTeamMembers)
	teams.Delete("/:name/members/:email", teamController.RemoveTeamMember)

	// Project routes
	projects := api.Group("/projects")
	projects.Post("/", projectController.CreateProject)
	projects.Get("/", projectController.ListProjects)
	projects.Get("/:id", projectController.GetProject)
	projects.Put("/:id", projectController.UpdateProject)
	projects.Delete("/:id", projectController.DeleteProject)

	// Milestones nested under their project for create and list
	projects.Post("/:id/milestones", milestoneController.CreateMilestone)
	projects.Get("/:id/milestones", milestoneController.GetProjectMilestones)

	// Stakeholder links. PUT because re-adding a pair is an upsert.
	projects.Put("/:id/stakeholders/:email", projectController.AddStakeholder)
	projects.Get("/:id/stakeholders", projectController.GetStakeholders)
	projects.Delete("/:id/stakeholders/:email", projectController.RemoveStakeholder)

	// Resource assignment links, same upsert shape
	projects.Put("/:id/resources/:email", projectController.AddResource)
	projects.Get("/:id/resources", projectController.GetResources)
	projects.Delete("/:id/resources/:email", projectController.RemoveResource)

	// Notes attached to projects and stakeholder links
	projects.Post("/:id/notes", noteController.CreateProjectNote)
	projects.Get("/:id/notes", noteController.GetProjectNotes)
	projects.Post("/:id/stakeholders/:email/notes", noteController.CreateStakeholderNote)
	projects.Get("/:id/stakeholders/:email/notes", noteController.GetStakeholderNotes)

	// Milestone routes addressed by milestone id
	milestones := api.Group("/milestones")
	milestones.Get("/:id", milestoneController.GetMilestone)
	milestones.Put("/:id", milestoneController.UpdateMilestone)
	milestones.Delete("/:id", milestoneController.DeleteMilestone)
	milestones.Put("/:id/resources/:email", milestoneController.AddResource)
	milestones.Get("/:id/resources", milestoneController.GetResources)
	milestones.Delete("/:id/resources/:email", milestoneController.RemoveResource)
	milestones.Post("/:id/notes", noteController.CreateMilestoneNote)
	milestones.Get("/:id/notes", noteController.GetMilestoneNotes)

	// Note edits address the note id directly, one path per note kind
	notes := api.Group("/notes")
	notes.Put("/project/:id", noteController.UpdateProjectNote)
	notes.Delete("/project/:id", noteController.DeleteProjectNote)
	notes.Put("/milestone/:id", noteController.UpdateMilestoneNote)
	notes.Delete("/milestone/:id", noteController.DeleteMilestoneNote)
	notes.Put("/stakeholder/:id", noteController.UpdateStakeholderNote)
	notes.Delete("/stakeholder/:id", noteController.DeleteStakeholderNote)

	// Timeline route
	api.Get("/timeline", timelineController.GetTimeline)

	// Workspace routes
	workspace := api.Group("/workspace")
	workspace.Get("/config", workspaceController.GetConfig)
	workspace.Get("/summary", workspaceController.GetSummary)

	// Log initialization
	log.Println("API routes initialized successfully")
}

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Setup health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup API routes
	SetupAPIRoutes(app, db)

	// Setup 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":   "Not Found",
			"message": "The requested resource was not found",
		})
	})
}
