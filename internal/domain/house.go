package domain

// HouseType enumerates the rental property categories.
type HouseType string

const (
	HouseTypeApartment   HouseType = "apartment"
	HouseTypeVilla       HouseType = "villa"
	HouseTypeSingleHouse HouseType = "single house"
	HouseTypeOther       HouseType = "other"
)

// HouseStatus enumerates availability states.
type HouseStatus string

const (
	HouseStatusAvailable   HouseStatus = "available"
	HouseStatusBooked      HouseStatus = "booked"
	HouseStatusMaintenance HouseStatus = "maintenance"
)

// House is a rental unit as served by the rental API. The address is
// immutable after creation; everything else is server-owned and the
// gateway only holds per-request copies.
type House struct {
	ID            string      `json:"_id"`
	Address       string      `json:"address"`
	Price         float64     `json:"price"`
	NumberOfRooms int         `json:"numberOfRooms"`
	HouseType     HouseType   `json:"houseType"`
	Status        HouseStatus `json:"status"`
	Description   string      `json:"description,omitempty"`
	Owner         *Owner      `json:"owner,omitempty"`
}

// HousePage is the paginated listing response shape.
type HousePage struct {
	Houses []House `json:"houses"`
	Total  int     `json:"total"`
	Pages  int     `json:"pages"`
}
