package schema

import "github.com/mehrbod2002/brokerdb/internal/models"

const (
	CollectionUsers          = "users"
	CollectionSymbols        = "symbols"
	CollectionOrders         = "orders"
	CollectionHoldings       = "holdings"
	CollectionWallets        = "wallets"
	CollectionTransactions   = "transactions"
	CollectionUserWatchlists = "userWatchlists"
)

const (
	EmailPattern  = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	SymbolPattern = `^[A-Z]+$`
)

var Users = CollectionSchema{
	Name:     CollectionUsers,
	Required: []string{"email", "firstName", "lastName", "password"},
	Fields: []FieldRule{
		{Name: "email", BSONType: TypeString, Pattern: EmailPattern, Description: "must be a valid email address"},
		{Name: "firstName", BSONType: TypeString, MinLength: 1, MaxLength: 50, Description: "must be a string between 1-50 characters"},
		{Name: "lastName", BSONType: TypeString, MinLength: 1, MaxLength: 50, Description: "must be a string between 1-50 characters"},
		{Name: "password", BSONType: TypeString, MinLength: 6, Description: "must be a string with minimum 6 characters"},
		{Name: "status", Enum: enumOf(models.UserStatusActive, models.UserStatusInactive, models.UserStatusSuspended), Description: "must be one of the enum values"},
		{Name: "kycStatus", Enum: enumOf(models.KycStatusNotStarted, models.KycStatusInProgress, models.KycStatusCompleted, models.KycStatusRejected), Description: "must be one of the enum values"},
	},
}

var Symbols = CollectionSchema{
	Name:     CollectionSymbols,
	Required: []string{"symbol", "companyName", "exchange"},
	Fields: []FieldRule{
		{Name: "symbol", BSONType: TypeString, Pattern: SymbolPattern, MaxLength: 10, Description: "must be uppercase letters only, max 10 characters"},
		{Name: "companyName", BSONType: TypeString, MinLength: 1, MaxLength: 200, Description: "must be a string between 1-200 characters"},
		{Name: "exchange", BSONType: TypeString, MinLength: 1, MaxLength: 10, Description: "must be a string between 1-10 characters"},
	},
}

var Orders = CollectionSchema{
	Name:     CollectionOrders,
	Required: []string{"userId", "symbolId", "orderType", "side", "quantity"},
	Fields: []FieldRule{
		{Name: "orderType", Enum: enumOf(models.OrderTypeMarket, models.OrderTypeLimit), Description: "must be either MARKET or LIMIT"},
		{Name: "side", Enum: enumOf(models.OrderSideBuy, models.OrderSideSell), Description: "must be either BUY or SELL"},
		{Name: "status", Enum: enumOf(models.OrderStatusPending, models.OrderStatusFilled, models.OrderStatusCancelled, models.OrderStatusRejected), Description: "must be one of the enum values"},
		{Name: "quantity", BSONType: TypeInt, Minimum: minimum(1), Description: "must be a positive integer"},
	},
}

func enumOf[T ~string](values ...T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
