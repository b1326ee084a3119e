package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const OrderCurrency = "BDT"

// Order is written once the payment gateway hands back a redirect URL and
// stays unpaid until the gateway calls back.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	TransactionID string             `bson:"transaction_id" json:"transaction_id"`
	Items         []OrderItem        `bson:"items" json:"items"`
	TotalAmount   float64            `bson:"total_amount" json:"total_amount"`
	Currency      string             `bson:"currency" json:"currency"`
	PaidStatus    bool               `bson:"paidStatus" json:"paidStatus"`
	Name          string             `bson:"name" json:"name"`
	Email         string             `bson:"email" json:"email"`
	Address       string             `bson:"address" json:"address"`
	PhoneNumber   string             `bson:"phoneNumber" json:"phoneNumber"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at" json:"updated_at"`
}

// OrderItem is a snapshot of the cart entry the order was placed from.
type OrderItem struct {
	CartID   string  `bson:"cartId" json:"cartId"`
	Owner    string  `bson:"owner" json:"owner"`
	MenuID   string  `bson:"menuId" json:"menuId"`
	Title    string  `bson:"title" json:"title"`
	Category string  `bson:"category" json:"category"`
	Price    float64 `bson:"price" json:"price"`
	Quantity int     `bson:"quantity" json:"quantity"`
}
