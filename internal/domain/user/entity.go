package user

import "time"

// User is owned by the user service; this service only reads it for
// existence checks. Users are keyed by their firebase uid.
type User struct {
	FirebaseUID string    `gorm:"column:firebase_uid;primaryKey" json:"firebase_uid"`
	Username    string    `gorm:"column:username;uniqueIndex" json:"username"`
	Email       string    `gorm:"column:email;uniqueIndex" json:"email"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (User) TableName() string { return "users" }
