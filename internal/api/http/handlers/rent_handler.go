package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Saadaqmacalin/houserent-gateway/internal/browse"
)

// RentHandler serves the public house browser.
type RentHandler struct {
	svc  *browse.Service
	live *browse.Registry
}

// NewRentHandler constructs handler.
func NewRentHandler(svc *browse.Service, live *browse.Registry) *RentHandler {
	return &RentHandler{svc: svc, live: live}
}

// List handles GET /rent: the filtered, paginated public listing.
func (h *RentHandler) List(c *fiber.Ctx) error {
	filters := browse.Filters{
		Search:   c.Query("search"),
		MinPrice: c.Query("minPrice"),
		MaxPrice: c.Query("maxPrice"),
		Type:     c.Query("type"),
		Page:     browse.ParsePage(c.Query("page")),
	}

	page, err := h.svc.List(c.UserContext(), filters)
	if err != nil {
		return mapUpstream(err)
	}
	return c.JSON(page)
}

// Search handles GET /rent/search: the search-as-you-type path. Input is
// debounced per client; the response carries the last resolved snapshot,
// which may lag the latest keystrokes by the quiet period.
func (h *RentHandler) Search(c *fiber.Ctx) error {
	sid, err := clientID(c)
	if err != nil {
		return err
	}

	live := h.live.Get(sid)
	live.Input(browse.Filters{
		Search:   c.Query("search"),
		MinPrice: c.Query("minPrice"),
		MaxPrice: c.Query("maxPrice"),
		Type:     c.Query("type"),
		Page:     browse.ParsePage(c.Query("page")),
	})

	page, snapErr := live.Snapshot()
	if snapErr != nil {
		return mapUpstream(snapErr)
	}
	if page == nil {
		// Nothing resolved yet: the debounce window is still open.
		return c.JSON(fiber.Map{"pending": true})
	}
	return c.JSON(page)
}
