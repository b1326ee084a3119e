package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the privilege level of a user. Anything other than RoleAdmin is ordinary.
type Role string

const (
	RoleOrdinary Role = "user"
	RoleAdmin    Role = "admin"
)

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	PhotoURL  string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Role      Role               `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
