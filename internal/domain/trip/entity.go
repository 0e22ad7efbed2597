package trip

import "time"

// Trip is owned by the trip service; this service only reads it for
// existence checks. The struct carries just the columns touched here.
type Trip struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	OwnerID   string    `gorm:"column:owner_id;index" json:"owner_id"`
	Title     string    `gorm:"column:title" json:"title"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Trip) TableName() string { return "trips" }
