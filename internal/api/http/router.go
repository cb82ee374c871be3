package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Saadaqmacalin/houserent-gateway/internal/api/http/handlers"
	"github.com/Saadaqmacalin/houserent-gateway/internal/auth"
	"github.com/Saadaqmacalin/houserent-gateway/internal/domain"
	"github.com/Saadaqmacalin/houserent-gateway/internal/session"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Rent     *handlers.RentHandler
	Booking  *handlers.BookingHandler
	Houses   *handlers.HousesHandler
	Owners   *handlers.OwnersHandler
	Admin    *handlers.AdminHandler
	Landlord *handlers.LandlordHandler
	Session  *session.CookieCodec
	Guard    *auth.Guard
}

// RegisterRoutes wires HTTP routes. Role gating is attached at route
// registration, never re-checked inside handlers.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	// Everything below carries the signed client-id cookie.
	app.Use(session.Middleware(cfg.Session))

	// Public browse surface.
	app.Get("/rent", cfg.Rent.List)
	app.Get("/rent/search", cfg.Rent.Search)

	// Auth entry points for the three audiences.
	app.Post("/auth/login", cfg.Auth.Login)
	app.Post("/auth/logout", cfg.Auth.Logout)
	app.Get("/auth/me", cfg.Auth.Me)
	app.Post("/customer-auth/login", cfg.Auth.CustomerLogin)
	app.Post("/customer-auth/register", cfg.Auth.CustomerRegister)
	app.Post("/auth/landlord/login", cfg.Auth.LandlordLogin)
	app.Post("/auth/landlord/register", cfg.Auth.LandlordRegister)
	app.Post("/auth/landlord/logout", cfg.Auth.LandlordLogout)

	// Booking workflow, customer sessions only.
	customer := cfg.Guard.RequireCustomer()
	app.Post("/rent/:id/select", customer, cfg.Booking.Select)
	app.Post("/bookings", customer, cfg.Booking.Create)
	app.Get("/checkout", customer, cfg.Booking.Checkout)
	app.Post("/checkout/pay", customer, cfg.Booking.Pay)
	app.Get("/my-rentals", customer, cfg.Booking.Rentals)
	app.Put("/my-rentals/:id/end", customer, cfg.Booking.EndLease)

	// Admin console, any authenticated staff session.
	staff := cfg.Guard.RequireUser()
	app.Get("/admin/dashboard", staff, cfg.Admin.Dashboard)
	app.Get("/reports", staff, cfg.Admin.Dashboard)

	app.Get("/houses", staff, cfg.Houses.List)
	app.Get("/houses/:id", staff, cfg.Houses.Get)
	app.Post("/houses", staff, cfg.Houses.Create)
	app.Put("/houses/:id", staff, cfg.Houses.Update)
	app.Delete("/houses/:id", staff, cfg.Houses.Delete)

	app.Get("/owners", staff, cfg.Owners.List)
	app.Get("/owners/:id", staff, cfg.Owners.Get)
	app.Post("/owners", staff, cfg.Owners.Create)
	app.Put("/owners/:id", staff, cfg.Owners.Update)
	app.Delete("/owners/:id", staff, cfg.Owners.Delete)

	app.Get("/bookings", staff, cfg.Admin.Bookings)
	app.Get("/customers", staff, cfg.Admin.Customers)
	app.Get("/payments", staff, cfg.Admin.Payments)

	// User management stays admin-only.
	users := app.Group("/users", staff, auth.RequireRole(domain.RoleAdmin))
	users.Get("/", cfg.Admin.Users)
	users.Post("/", cfg.Admin.CreateUser)
	users.Put("/:id", cfg.Admin.UpdateUser)
	users.Delete("/:id", cfg.Admin.DeleteUser)

	// Landlord console rides its own session.
	landlord := app.Group("/landlord", cfg.Guard.RequireLandlord())
	landlord.Get("/dashboard", cfg.Landlord.Dashboard)
	landlord.Get("/houses", cfg.Landlord.Houses)
	landlord.Post("/houses", cfg.Landlord.CreateHouse)
	landlord.Put("/houses/:id", cfg.Landlord.UpdateHouse)
	landlord.Delete("/houses/:id", cfg.Landlord.DeleteHouse)
	landlord.Get("/tenants", cfg.Landlord.Tenants)
}
