// Package warehouse declares warehouse entities and their mappings. Table and
// column names are left to conventions.
package warehouse

import (
	"fluentmap/mapping"
	"fluentmap/scan"
)

func init() {
	scan.MustRegister(AddressMap{}, CustomerMap{}, ProductMap{}, &BinMap{}, OrderMap{}, OrderItemMap{})
}

type AddressMap struct{}

func (AddressMap) Define(m *mapping.ClassMap) {
	m.For(Address{})
	m.ID("ID").GeneratedBy(mapping.GeneratorSequence)
	m.Map("Street").NotNull()
	m.Map("City").NotNull()
	m.Map("PostalCode")
	m.Map("Country").Length(2)
}

type CustomerMap struct{}

func (CustomerMap) Define(m *mapping.ClassMap) {
	m.For(Customer{})
	m.ID("ID").GeneratedBy(mapping.GeneratorSequence)
	m.Map("FirstName")
	m.Map("LastName")
	m.Map("Email").Unique()
	m.Map("Phone")
	m.Map("CreatedAt")
	m.HasMany("Addresses").Cascade("all")
	m.HasMany("Orders").Inverse()
}

type ProductMap struct{}

func (ProductMap) Define(m *mapping.ClassMap) {
	m.For(Product{})
	m.ID("ID").GeneratedBy(mapping.GeneratorSequence)
	m.Map("SKU").NotNull().Unique()
	m.Map("Name")
	m.Map("Stock")
	m.Map("Weight")
	m.HasManyToMany("Bins")
}

type BinMap struct{}

func (*BinMap) Define(m *mapping.ClassMap) {
	m.For(Bin{})
	m.ID("ID").GeneratedBy(mapping.GeneratorSequence)
	m.Map("Code").NotNull()
	m.HasManyToMany("Products")
}

type OrderMap struct{}

func (OrderMap) Define(m *mapping.ClassMap) {
	m.For(Order{})
	m.ID("ID").GeneratedBy(mapping.GeneratorSequence)
	m.Map("OrderNumber").NotNull().Unique()
	m.Map("Status")
	m.Map("ShippedAt")
	m.References("Customer").NotNull()
	m.References("ShippingAddress")
	m.HasMany("Items").Cascade("all-delete-orphan")
}

type OrderItemMap struct{}

func (OrderItemMap) Define(m *mapping.ClassMap) {
	m.For(OrderItem{})
	m.ID("ID").GeneratedBy(mapping.GeneratorSequence)
	m.References("Order")
	m.References("Product")
	m.Map("Quantity")
}
