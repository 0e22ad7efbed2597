package message

import "time"

// Message is a single chat message in a trip, optionally carrying a
// file attachment by URL. The attachment fields reference a stored
// file by its public URL only — there is no foreign key to the file,
// and deleting the file leaves the reference dangling.
type Message struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	TripID    int64     `gorm:"column:trip_id;index" json:"trip_id"`
	UserID    string    `gorm:"column:user_id;index" json:"user_id"`
	Body      string    `gorm:"column:body" json:"body"`
	FileURL   *string   `gorm:"column:file_url" json:"file_url,omitempty"`
	FileType  *string   `gorm:"column:file_type" json:"file_type,omitempty"`
	FileName  *string   `gorm:"column:file_name" json:"file_name,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Message) TableName() string { return "chat_messages" }
