package entities

type Provider struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"provider_id"`
	Name    string `gorm:"not null" json:"name"`
	Type    string `json:"type"` // "Restaurant", "Grocery Store", "Supermarket", "Catering Service", ...
	Address string `json:"address"`
	City    string `gorm:"index" json:"city"`
	Contact string `json:"contact"`

	Listings []*FoodListing `gorm:"foreignKey:ProviderID" json:"-"`
	Timestamp
}
