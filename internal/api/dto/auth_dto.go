package dto

// LoginRequest is the admin/customer login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the customer self-registration payload. The
// confirmation field is checked client-side before any request goes out.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// LandlordAuthRequest covers landlord login and registration; the extra
// profile fields are only used when registering.
type LandlordAuthRequest struct {
	Name        string `json:"name,omitempty"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	NationalID  string `json:"nationalID,omitempty"`
	Address     string `json:"address,omitempty"`
}

// SessionResponse describes the current admin/customer session to pages.
type SessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Name          string `json:"name,omitempty"`
	Email         string `json:"email,omitempty"`
	Role          string `json:"role,omitempty"`
}
