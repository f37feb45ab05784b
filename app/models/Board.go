package models

type SpaceType string

const (
	SpaceProperty SpaceType = "property"
	SpaceAction   SpaceType = "action"
	SpaceQuestion SpaceType = "question"
	SpaceCorner   SpaceType = "corner"
	SpaceJail     SpaceType = "jail"
)

// BoardSpace is one of the 40 positions on the board ring. Id doubles as the
// ring index. Only property spaces carry Price/Rent and may have an owner.
type BoardSpace struct {
	Id      int       `json:"id"`
	Name    string    `json:"name"`
	Type    SpaceType `json:"type"`
	Color   string    `json:"color,omitempty"`
	Price   int       `json:"price,omitempty"`
	Rent    int       `json:"rent,omitempty"`
	OwnerId string    `json:"ownerId,omitempty"`
}

// PropertyCard is the settings-editor view of a purchasable space.
type PropertyCard struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Price       int    `json:"price"`
	Rent        int    `json:"rent"`
	Description string `json:"description,omitempty"`
}
