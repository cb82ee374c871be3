package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Saadaqmacalin/houserent-gateway/internal/domain"
)

// HouseQuery is the filter/paging surface of the public house listing.
type HouseQuery struct {
	Address   string
	MinPrice  string
	MaxPrice  string
	HouseType string
	Search    string
	Page      int
	Limit     int
}

func (q HouseQuery) encode() string {
	params := url.Values{}
	if q.Address != "" {
		params.Set("address", q.Address)
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.MinPrice != "" {
		params.Set("minPrice", q.MinPrice)
	}
	if q.MaxPrice != "" {
		params.Set("maxPrice", q.MaxPrice)
	}
	if q.HouseType != "" {
		params.Set("houseType", q.HouseType)
	}
	if q.Page > 0 {
		params.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if encoded := params.Encode(); encoded != "" {
		return "?" + encoded
	}
	return ""
}

// HouseInput is the create/update payload for a house record.
type HouseInput struct {
	Address       string  `json:"address"`
	Price         float64 `json:"price"`
	NumberOfRooms int     `json:"numberOfRooms"`
	HouseType     string  `json:"houseType"`
	Status        string  `json:"status,omitempty"`
	Description   string  `json:"description,omitempty"`
	Owner         string  `json:"owner,omitempty"`
}

// OwnerInput is the create/update payload for an owner record.
type OwnerInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	NationalID  string `json:"nationalID"`
	Address     string `json:"address"`
}

// AuthResponse is what the rental API returns on admin/customer auth.
type AuthResponse struct {
	ID    string      `json:"_id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  domain.Role `json:"role"`
	Token string      `json:"token"`
}

// LandlordAuthResponse is what the rental API returns on landlord auth.
type LandlordAuthResponse struct {
	Token       string `json:"token"`
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	NationalID  string `json:"nationalID"`
	Address     string `json:"address"`
}

// UserInput is the admin-side create/update payload for platform users.
type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Login authenticates the admin/customer audience.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.Post(ctx, "/auth/login", Credentials{}, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegisterUser creates an account via the shared register endpoint. Called
// unauthenticated for customer self-registration and with admin credentials
// from the user-management screen.
func (c *Client) RegisterUser(ctx context.Context, creds Credentials, input UserInput) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.Post(ctx, "/auth/register", creds, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LandlordLogin authenticates the landlord audience.
func (c *Client) LandlordLogin(ctx context.Context, email, password string) (*LandlordAuthResponse, error) {
	var out LandlordAuthResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.Post(ctx, "/auth/landlord/login", Credentials{}, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LandlordRegister registers a landlord account.
func (c *Client) LandlordRegister(ctx context.Context, input OwnerInput, password string) (*LandlordAuthResponse, error) {
	var out LandlordAuthResponse
	body := map[string]string{
		"name":        input.Name,
		"email":       input.Email,
		"password":    password,
		"phoneNumber": input.PhoneNumber,
		"nationalID":  input.NationalID,
		"address":     input.Address,
	}
	if err := c.Post(ctx, "/auth/landlord/register", Credentials{}, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListHouses returns the filtered, paginated public listing.
func (c *Client) ListHouses(ctx context.Context, creds Credentials, query HouseQuery) (*domain.HousePage, error) {
	var out domain.HousePage
	if err := c.Get(ctx, "/houses"+query.encode(), creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetHouse fetches a single house record.
func (c *Client) GetHouse(ctx context.Context, creds Credentials, id string) (*domain.House, error) {
	var out domain.House
	if err := c.Get(ctx, "/houses/"+id, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateHouse creates a house record.
func (c *Client) CreateHouse(ctx context.Context, creds Credentials, input HouseInput) (*domain.House, error) {
	var out domain.House
	if err := c.Post(ctx, "/houses", creds, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateHouse updates a house record.
func (c *Client) UpdateHouse(ctx context.Context, creds Credentials, id string, input HouseInput) (*domain.House, error) {
	var out domain.House
	if err := c.Put(ctx, "/houses/"+id, creds, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteHouse removes a house record.
func (c *Client) DeleteHouse(ctx context.Context, creds Credentials, id string) error {
	return c.Delete(ctx, "/houses/"+id, creds, nil)
}

// ListOwners returns all owner records.
func (c *Client) ListOwners(ctx context.Context, creds Credentials) ([]domain.Owner, error) {
	var out []domain.Owner
	if err := c.Get(ctx, "/owners", creds, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetOwner fetches one owner record.
func (c *Client) GetOwner(ctx context.Context, creds Credentials, id string) (*domain.Owner, error) {
	var out domain.Owner
	if err := c.Get(ctx, "/owners/"+id, creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateOwner creates an owner record.
func (c *Client) CreateOwner(ctx context.Context, creds Credentials, input OwnerInput) (*domain.Owner, error) {
	var out domain.Owner
	if err := c.Post(ctx, "/owners", creds, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateOwner updates an owner record.
func (c *Client) UpdateOwner(ctx context.Context, creds Credentials, id string, input OwnerInput) (*domain.Owner, error) {
	var out domain.Owner
	if err := c.Put(ctx, "/owners/"+id, creds, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteOwner removes an owner record.
func (c *Client) DeleteOwner(ctx context.Context, creds Credentials, id string) error {
	return c.Delete(ctx, "/owners/"+id, creds, nil)
}

// ListCustomers returns all customer records.
func (c *Client) ListCustomers(ctx context.Context, creds Credentials) ([]domain.Customer, error) {
	var out []domain.Customer
	if err := c.Get(ctx, "/customers", creds, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListUsers returns all platform user accounts.
func (c *Client) ListUsers(ctx context.Context, creds Credentials) ([]domain.User, error) {
	var out []domain.User
	if err := c.Get(ctx, "/users", creds, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateUser updates a platform user account.
func (c *Client) UpdateUser(ctx context.Context, creds Credentials, id string, input UserInput) (*domain.User, error) {
	var out domain.User
	if err := c.Put(ctx, "/users/"+id, creds, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes a platform user account.
func (c *Client) DeleteUser(ctx context.Context, creds Credentials, id string) error {
	return c.Delete(ctx, "/users/"+id, creds, nil)
}

// ListBookings returns bookings visible to the caller; the rental API
// scopes the result to the authenticated customer or to everything for
// admin tokens.
func (c *Client) ListBookings(ctx context.Context, creds Credentials) ([]domain.Booking, error) {
	var out []domain.Booking
	if err := c.Get(ctx, "/bookings", creds, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateBooking submits a booking-creation request.
func (c *Client) CreateBooking(ctx context.Context, creds Credentials, houseID, startDate string) (*domain.Booking, error) {
	var out domain.Booking
	body := map[string]string{"houseId": houseID, "startDate": startDate}
	if err := c.Post(ctx, "/bookings", creds, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EndBooking transitions an active booking to ended.
func (c *Client) EndBooking(ctx context.Context, creds Credentials, id string) error {
	return c.Put(ctx, fmt.Sprintf("/bookings/%s/end", id), creds, nil, nil)
}

// ListPayments returns payment records visible to the caller.
func (c *Client) ListPayments(ctx context.Context, creds Credentials) ([]domain.Payment, error) {
	var out []domain.Payment
	if err := c.Get(ctx, "/payments", creds, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePayment records a checkout settlement for a booking.
func (c *Client) CreatePayment(ctx context.Context, creds Credentials, bookingID string, amount float64, method domain.PaymentMethod) (*domain.Payment, error) {
	var out domain.Payment
	body := map[string]any{
		"bookingId":     bookingID,
		"amount":        amount,
		"paymentMethod": method,
	}
	if err := c.Post(ctx, "/payments", creds, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DashboardReport fetches the admin dashboard aggregates.
func (c *Client) DashboardReport(ctx context.Context, creds Credentials) (*domain.DashboardReport, error) {
	var out domain.DashboardReport
	if err := c.Get(ctx, "/reports/dashboard", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LandlordStats fetches landlord portfolio aggregates.
func (c *Client) LandlordStats(ctx context.Context, creds Credentials) (*domain.LandlordStats, error) {
	var out domain.LandlordStats
	if err := c.Get(ctx, "/landlords/stats", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LandlordHouses returns the landlord's own houses, paginated.
func (c *Client) LandlordHouses(ctx context.Context, creds Credentials, page, limit int) (*domain.HousePage, error) {
	var out domain.HousePage
	query := HouseQuery{Page: page, Limit: limit}
	if err := c.Get(ctx, "/landlords/houses"+query.encode(), creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateLandlordHouse creates a house in the landlord's portfolio.
func (c *Client) CreateLandlordHouse(ctx context.Context, creds Credentials, input HouseInput) (*domain.House, error) {
	var out domain.House
	if err := c.Post(ctx, "/landlords/houses", creds, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLandlordHouse updates a house in the landlord's portfolio.
func (c *Client) UpdateLandlordHouse(ctx context.Context, creds Credentials, id string, input HouseInput) (*domain.House, error) {
	var out domain.House
	if err := c.Put(ctx, "/landlords/houses/"+id, creds, input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteLandlordHouse removes a house from the landlord's portfolio.
func (c *Client) DeleteLandlordHouse(ctx context.Context, creds Credentials, id string) error {
	return c.Delete(ctx, "/landlords/houses/"+id, creds, nil)
}

// LandlordTenants returns the landlord's active tenants.
func (c *Client) LandlordTenants(ctx context.Context, creds Credentials) ([]domain.Tenant, error) {
	var out []domain.Tenant
	if err := c.Get(ctx, "/landlords/tenants", creds, &out); err != nil {
		return nil, err
	}
	return out, nil
}
