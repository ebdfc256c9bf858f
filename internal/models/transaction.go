package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "PENDING"
	TransactionStatusCompleted TransactionStatus = "COMPLETED"
	TransactionStatusFailed    TransactionStatus = "FAILED"
	TransactionStatusCancelled TransactionStatus = "CANCELLED"
)

type TransactionType string

const (
	TransactionTypeDeposit        TransactionType = "DEPOSIT"
	TransactionTypeWithdrawal     TransactionType = "WITHDRAWAL"
	TransactionTypeFee            TransactionType = "FEE"
	TransactionTypeBuySettlement  TransactionType = "BUY_SETTLEMENT"
	TransactionTypeSellSettlement TransactionType = "SELL_SETTLEMENT"
)

type Transaction struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID        string             `bson:"userId" json:"userId"`
	Type          TransactionType    `bson:"type" json:"type"`
	Amount        float64            `bson:"amount" json:"amount"`
	Fees          float64            `bson:"fees,omitempty" json:"fees,omitempty"`
	Status        TransactionStatus  `bson:"status" json:"status"`
	PaymentMethod string             `bson:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	ReferenceID   string             `bson:"referenceId,omitempty" json:"referenceId,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
