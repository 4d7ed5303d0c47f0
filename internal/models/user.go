package models

import "time"

const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

type User struct {
	ID           string    `bson:"_id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Role         string    `bson:"role" json:"role"`
	ManagerID    string    `bson:"manager_id,omitempty" json:"manager_id,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

func (u *User) IsManager() bool {
	return u.Role == RoleManager
}
