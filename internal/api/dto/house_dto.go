package dto

// HouseRequest is the admin/landlord create-or-update payload for a house.
type HouseRequest struct {
	Address       string  `json:"address"`
	Price         float64 `json:"price"`
	NumberOfRooms int     `json:"numberOfRooms"`
	HouseType     string  `json:"houseType"`
	Status        string  `json:"status,omitempty"`
	Description   string  `json:"description,omitempty"`
	Owner         string  `json:"owner,omitempty"`
}

// OwnerRequest is the create-or-update payload for an owner record.
type OwnerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	NationalID  string `json:"nationalID"`
	Address     string `json:"address"`
}

// UserRequest is the admin-side create-or-update payload for platform users.
type UserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty"`
}
