package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "ACTIVE"
	UserStatusInactive  UserStatus = "INACTIVE"
	UserStatusSuspended UserStatus = "SUSPENDED"
)

type KycStatus string

const (
	KycStatusNotStarted KycStatus = "NOT_STARTED"
	KycStatusInProgress KycStatus = "IN_PROGRESS"
	KycStatusCompleted  KycStatus = "COMPLETED"
	KycStatusRejected   KycStatus = "REJECTED"
)

type Role string

const (
	RoleUser   Role = "USER"
	RoleAdmin  Role = "ADMIN"
	RoleTrader Role = "TRADER"
)

// User is a document of the users collection. Password holds the bcrypt hash.
type User struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	FirstName string             `json:"firstName" bson:"firstName"`
	LastName  string             `json:"lastName" bson:"lastName"`
	Password  string             `json:"-" bson:"password"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Status    UserStatus         `json:"status,omitempty" bson:"status,omitempty"`
	KycStatus KycStatus          `json:"kycStatus,omitempty" bson:"kycStatus,omitempty"`
	Roles     []Role             `json:"roles,omitempty" bson:"roles,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
