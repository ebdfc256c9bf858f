package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Symbol struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Symbol      string             `json:"symbol" bson:"symbol"`
	CompanyName string             `json:"companyName" bson:"companyName"`
	Exchange    string             `json:"exchange" bson:"exchange"`
	Sector      string             `json:"sector,omitempty" bson:"sector,omitempty"`
	Active      bool               `json:"active" bson:"active"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}
