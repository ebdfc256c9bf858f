package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderType string

const (
	OrderTypeMarket OrderType = "MARKET"
	OrderTypeLimit  OrderType = "LIMIT"
)

type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusFilled    OrderStatus = "FILLED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusRejected  OrderStatus = "REJECTED"
)

// Order is a document of the orders collection. Quantity is int32 so it is
// stored as a bson int, which the collection validator requires.
type Order struct {
	ID             primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID         string             `json:"userId" bson:"userId"`
	SymbolID       string             `json:"symbolId" bson:"symbolId"`
	OrderType      OrderType          `json:"orderType" bson:"orderType"`
	Side           OrderSide          `json:"side" bson:"side"`
	Quantity       int32              `json:"quantity" bson:"quantity"`
	Price          float64            `json:"price,omitempty" bson:"price,omitempty"`
	Status         OrderStatus        `json:"status,omitempty" bson:"status,omitempty"`
	FilledQuantity int32              `json:"filledQuantity,omitempty" bson:"filledQuantity,omitempty"`
	FilledPrice    float64            `json:"filledPrice,omitempty" bson:"filledPrice,omitempty"`
	Fees           float64            `json:"fees,omitempty" bson:"fees,omitempty"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt"`
	FilledAt       *time.Time         `json:"filledAt,omitempty" bson:"filledAt,omitempty"`
}
