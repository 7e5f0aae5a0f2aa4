package handlers_fiber

import (
	"net/http"

	"github.com/Swayam792/Bugwise-Backend/internal/dto"
	"github.com/Swayam792/Bugwise-Backend/internal/entities"
	"github.com/Swayam792/Bugwise-Backend/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// CreateBug reports a new bug on behalf of the acting user.
func (h *Handler) CreateBug(c *fiber.Ctx) error {
	actor, ok := requireActor(c)
	if !ok {
		return badRequest(c, "X-User-Email header is required")
	}
	var body dto.CreateBugRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	bug, err := h.uc.CreateBug(c.Context(), actor, mapper.FromDTOCreateBug(body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToDTOBug(*bug))
}

// GetBug returns one bug by id.
func (h *Handler) GetBug(c *fiber.Ctx) error {
	bug, err := h.uc.GetBug(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOBug(*bug))
}

// UpdateBug changes descriptive bug fields for an authorized actor.
func (h *Handler) UpdateBug(c *fiber.Ctx) error {
	actor, ok := requireActor(c)
	if !ok {
		return badRequest(c, "X-User-Email header is required")
	}
	var body dto.UpdateBugRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	bug, err := h.uc.UpdateBug(c.Context(), c.Params("id"), actor, mapper.FromDTOUpdateBug(body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOBug(*bug))
}

// UpdateBugStatus moves a bug to a new lifecycle state.
func (h *Handler) UpdateBugStatus(c *fiber.Ctx) error {
	actor, ok := requireActor(c)
	if !ok {
		return badRequest(c, "X-User-Email header is required")
	}
	var body dto.UpdateBugStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	bug, err := h.uc.UpdateBugStatus(c.Context(), c.Params("id"), entities.BugStatus(body.Status), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOBug(*bug))
}

// AssignBugToDevelopers replaces the assignee set of a bug.
func (h *Handler) AssignBugToDevelopers(c *fiber.Ctx) error {
	var body dto.AssignDevelopersRequest
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "invalid body")
	}

	bug, err := h.uc.AssignBugToDevelopers(c.Context(), c.Params("id"), body.DeveloperEmails)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOBug(*bug))
}

// SearchBugsInProject pages a project's bugs with optional term and status.
func (h *Handler) SearchBugsInProject(c *fiber.Ctx) error {
	filter := entities.BugSearchFilter{
		ProjectID: c.Params("id"),
		Term:      c.Query("q"),
		Page:      queryInt(c, "page", 0),
		Size:      queryInt(c, "size", 10),
	}
	if raw := c.Query("status"); raw != "" {
		status := entities.BugStatus(raw)
		filter.Status = &status
	}

	page, err := h.uc.SearchBugsInProject(c.Context(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOBugPage(page))
}

// ListBugsForUser pages the bugs visible to the acting user.
func (h *Handler) ListBugsForUser(c *fiber.Ctx) error {
	actor, ok := requireActor(c)
	if !ok {
		return badRequest(c, "X-User-Email header is required")
	}

	page, err := h.uc.BugsForUser(c.Context(), actor, queryInt(c, "page", 0), queryInt(c, "size", 10))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOBugPage(page))
}

// ListAssignedBugs pages the acting developer's bugs within a project.
func (h *Handler) ListAssignedBugs(c *fiber.Ctx) error {
	actor, ok := requireActor(c)
	if !ok {
		return badRequest(c, "X-User-Email header is required")
	}

	page, err := h.uc.AssignedBugs(c.Context(), c.Params("id"), actor, queryInt(c, "page", 0), queryInt(c, "size", 10))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOBugPage(page))
}

// GetBugStatistics returns per-status counts for a project.
func (h *Handler) GetBugStatistics(c *fiber.Ctx) error {
	counts, err := h.uc.GetBugStatistics(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOStatusCounts(counts))
}

// GetBugStatisticsForUser returns role-scoped per-status counts.
func (h *Handler) GetBugStatisticsForUser(c *fiber.Ctx) error {
	actor, ok := requireActor(c)
	if !ok {
		return badRequest(c, "X-User-Email header is required")
	}

	counts, err := h.uc.GetBugStatisticsForUser(c.Context(), actor)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOStatusCounts(counts))
}

// AnalyzeBug runs AI triage over a bug.
func (h *Handler) AnalyzeBug(c *fiber.Ctx) error {
	analysis, err := h.uc.AnalyzeBug(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToDTOAnalysis(*analysis))
}

// ReindexProject rebuilds the search projection for a project.
func (h *Handler) ReindexProject(c *fiber.Ctx) error {
	n, err := h.uc.ReindexProject(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.ReindexResponse{IndexedBugs: n})
}

// ReindexAll rebuilds the whole search projection.
func (h *Handler) ReindexAll(c *fiber.Ctx) error {
	n, err := h.uc.ReindexAll(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(dto.ReindexResponse{IndexedBugs: n})
}
