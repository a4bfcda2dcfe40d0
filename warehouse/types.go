package warehouse

import (
	"time"
)

// Address is a physical shipping or billing address.
type Address struct {
	ID         uint
	Street     string
	City       string
	PostalCode string
	Country    string
}

// Customer is a warehouse account holder.
type Customer struct {
	ID        uint
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Addresses []Address
	Orders    []Order
	CreatedAt time.Time
}

// Product is a stocked item. Weight is in grams.
type Product struct {
	ID     uint
	SKU    string
	Name   string
	Stock  int
	Weight float64
	Bins   []*Bin
}

// Bin is a storage location; one product may be spread over several bins.
type Bin struct {
	ID       uint
	Code     string
	Products []*Product
}

// Order is a shipment request placed by a customer.
type Order struct {
	ID              uint
	OrderNumber     string
	Status          string
	Customer        Customer
	ShippingAddress *Address
	Items           []OrderItem
	ShippedAt       *time.Time
}

// OrderItem is a line of an order.
type OrderItem struct {
	ID       uint
	Order    *Order
	Product  *Product
	Quantity int
}
