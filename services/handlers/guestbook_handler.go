package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/lac-hong-legacy/guestbook_api/dto"
	"github.com/lac-hong-legacy/guestbook_api/shared"
)

type GuestbookHandler struct {
	guestbookSvc GuestbookServiceInterface
}

func NewGuestbookHandler(guestbookSvc GuestbookServiceInterface) *GuestbookHandler {
	return &GuestbookHandler{
		guestbookSvc: guestbookSvc,
	}
}

// @Summary Submit Guestbook Entry
// @Description Stores a sanitized guestbook entry. Submissions are limited per client identifier.
// @Tags guestbook
// @Accept  json
// @Produce json
// @Param submitEntryRequest body dto.SubmitEntryRequest true "Guestbook entry"
// @Param X-Client-ID header string false "Client identifier used for rate limiting"
// @Success 201 {object} shared.Response{data=dto.SubmitEntryResponse}
// @Failure 400 {object} shared.Response{data=shared.ValidationData}
// @Failure 429 {object} shared.Response{data=shared.RateLimitData}
// @Router /api/v1/guestbook [post]
func (h *GuestbookHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return shared.NewBadRequestError(err, "Invalid request")
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	clientID := req.ClientID
	if clientID == "" {
		clientID, _ = c.Locals(shared.ClientID).(string)
	}
	if err := dto.ValidateClientIdentifier(clientID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.CreateValidationErrorResponse(err))
	}

	res, err := h.guestbookSvc.Submit(c.UserContext(), req.Name, req.Message, clientID)
	if err != nil {
		if appErr, ok := shared.GetAppError(err); ok && appErr.Kind == shared.KindRateLimited {
			if data, ok := appErr.Data.(shared.RateLimitData); ok {
				c.Set(fiber.HeaderRetryAfter, strconv.FormatInt(data.RetryAfter, 10))
			}
		}
		return err
	}

	return shared.ResponseCreated(c, res)
}

// @Summary List Guestbook Entries
// @Description Returns every guestbook entry, most recent first
// @Tags guestbook
// @Produce json
// @Success 200 {object} shared.Response{data=[]dto.GuestbookEntryResponse}
// @Router /api/v1/guestbook [get]
func (h *GuestbookHandler) List(c *fiber.Ctx) error {
	entries, err := h.guestbookSvc.List(c.UserContext())
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, entries)
}

// @Summary Guestbook Statistics
// @Description Returns the number of stored entries and rate-limited identifiers. tracked_identifiers is omitted with the redis limiter.
// @Tags guestbook
// @Produce json
// @Success 200 {object} shared.Response{data=dto.GuestbookStatsResponse}
// @Router /api/v1/guestbook/stats [get]
func (h *GuestbookHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.guestbookSvc.Stats(c.UserContext())
	if err != nil {
		return err
	}

	return shared.ResponseOK(c, stats)
}
