package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vaelen/project-tracker/store"
	"github.com/vaelen/project-tracker/timeline"
	"github.com/vaelen/project-tracker/utils"
)

type TimelineController struct {
	Store  *store.Store
	Logger *log.Logger
}

func NewTimelineController(s *store.Store, logger *log.Logger) *TimelineController {
	return &TimelineController{
		Store:  s,
		Logger: logger,
	}
}

// GetTimeline computes the occupancy grid. Granularity defaults to week;
// team and project narrow the rows and the assignments respectively.
//
// The now parameter pins the grid's reference time. This is the only
// place the wall clock is read; everything below takes now as an
// argument, so the same request with now pinned is fully reproducible.
func (tc *TimelineController) GetTimeline(c *fiber.Ctx) error {
	granularity, err := timeline.ParseGranularity(c.Query("granularity"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid granularity", err)
	}

	now := time.Now()
	if q := c.Query("now"); q != "" {
		parsed, err := utils.ParseDate(q)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid now parameter", err)
		}
		now = parsed
	}

	input, err := tc.Store.TimelineInput(c.Query("team"), c.Query("project"))
	if err != nil {
		return respondStoreError(c, tc.Logger, "Timeline", err)
	}

	grid := timeline.Compute(*input, granularity, now)
	return c.JSON(utils.SuccessResponse(grid))
}
