package domain

// Owner is the property owner record referenced by House.
type Owner struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	NationalID  string `json:"nationalID"`
	Address     string `json:"address"`
}
