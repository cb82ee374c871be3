package domain

// Role enumerates platform user roles for the admin/customer audience.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStaff    Role = "staff"
	RoleCustomer Role = "customer"
)

// User is a platform account (admin, staff or customer).
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Customer is the renter view of a user as embedded in bookings and payments.
type Customer struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
