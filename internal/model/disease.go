package model

// Disease is one row of the reference catalog. The table is seeded once at
// startup from the bundled dataset and is read-only afterwards.
type Disease struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Symptom     string `gorm:"type:text" json:"symptom"`
	Treatment   string `gorm:"type:text" json:"treatment"`
	Image       string `gorm:"size:255" json:"image"`
}
