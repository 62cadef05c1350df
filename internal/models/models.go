package models

// User column sizes back up the request-level validation: the database
// rejects what a buggy caller lets through.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"               json:"id"`
	Username     string `gorm:"type:varchar(50);uniqueIndex;not null"  json:"username"`
	Email        string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null"                               json:"-"`
}
