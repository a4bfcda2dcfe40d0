package store

import (
	"time"
)

// Product is an item available for sale. Prices are kept in cents.
type Product struct {
	ID          int64
	SKU         string
	Name        string
	Description string
	PriceCents  int64
	Inventory   int
	CreatedAt   time.Time
	Categories  []*Category
}

// Category groups products; a product may sit in several categories.
type Category struct {
	ID       int64
	Name     string
	Products []*Product
}

// Customer places orders.
type Customer struct {
	ID       int64
	Email    string
	FullName string
	Address  *string
	IsActive bool
	Orders   []Order
}

// Order is a purchase made by a customer.
type Order struct {
	ID         int64
	Customer   *Customer
	Status     OrderStatus
	TotalCents int64
	Items      []OrderItem
	OrderedAt  time.Time
}

// OrderItem is one product line of an order. UnitPrice snapshots the
// product price at purchase time.
type OrderItem struct {
	ID        int64
	Order     *Order
	Product   *Product
	Name      string
	Quantity  int
	UnitPrice int64
}

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
