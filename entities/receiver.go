package entities

type Receiver struct {
	ID      uint   `gorm:"primaryKey;autoIncrement" json:"receiver_id"`
	Name    string `gorm:"not null" json:"name"`
	Type    string `json:"type"` // "NGO", "Shelter", "Charity", "Individual", ...
	City    string `gorm:"index" json:"city"`
	Contact string `json:"contact"`

	Claims []*Claim `gorm:"foreignKey:ReceiverID" json:"-"`
	Timestamp
}
