package browse

import (
	"context"
	"strconv"
	"time"

	"github.com/Saadaqmacalin/houserent-gateway/internal/domain"
	"github.com/Saadaqmacalin/houserent-gateway/internal/upstream"
)

// HousesPerPage matches the public listing's page size.
const HousesPerPage = 6

// Filters is the public listing filter surface.
type Filters struct {
	Search   string
	MinPrice string
	MaxPrice string
	Type     string
	Page     int
}

// Query maps the filters onto upstream listing parameters.
func (f Filters) Query() upstream.HouseQuery {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return upstream.HouseQuery{
		Address:   f.Search,
		MinPrice:  f.MinPrice,
		MaxPrice:  f.MaxPrice,
		HouseType: f.Type,
		Page:      page,
		Limit:     HousesPerPage,
	}
}

// ParsePage parses a page query value, defaulting to 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Service serves the public house listing.
type Service struct {
	api     *upstream.Client
	timeout time.Duration
}

// NewService builds the browse service.
func NewService(api *upstream.Client, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Service{api: api, timeout: timeout}
}

// List fetches one page of the public listing. The listing is public: no
// credentials are attached.
func (s *Service) List(ctx context.Context, filters Filters) (*domain.HousePage, error) {
	return s.api.ListHouses(ctx, upstream.Credentials{}, filters.Query())
}

// NewLive builds a live-search session backed by this service.
func (s *Service) NewLive(delay time.Duration) *Live {
	fetch := func(filters Filters) (*domain.HousePage, error) {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()
		return s.List(ctx, filters)
	}
	return NewLive(fetch, delay)
}
