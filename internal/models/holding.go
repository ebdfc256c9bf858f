package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Holding struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID       string             `json:"userId" bson:"userId"`
	SymbolID     string             `json:"symbolId" bson:"symbolId"`
	Quantity     int64              `json:"quantity" bson:"quantity"`
	AveragePrice float64            `json:"averagePrice" bson:"averagePrice"`
	TotalCost    float64            `json:"totalCost" bson:"totalCost"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type Wallet struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID        string             `json:"userId" bson:"userId"`
	Currency      string             `json:"currency" bson:"currency"`
	Balance       float64            `json:"balance" bson:"balance"`
	LockedBalance float64            `json:"lockedBalance" bson:"lockedBalance"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type UserWatchlist struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID   string             `json:"userId" bson:"userId"`
	SymbolID string             `json:"symbolId" bson:"symbolId"`
	AddedAt  time.Time          `json:"addedAt" bson:"addedAt"`
}
