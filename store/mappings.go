package store

import (
	"fluentmap/mapping"
	"fluentmap/scan"
)

func init() {
	scan.MustRegister(ProductMap{}, CategoryMap{}, CustomerMap{}, OrderMap{}, OrderItemMap{})
}

type ProductMap struct{}

func (ProductMap) Define(m *mapping.ClassMap) {
	m.For(Product{}).Table("products")
	m.ID("ID").GeneratedBy(mapping.GeneratorIdentity)
	m.Map("SKU").Length(32).NotNull().Unique()
	m.Map("Name").Length(200).NotNull()
	m.Map("Description")
	m.Map("PriceCents").NotNull()
	m.Map("Inventory")
	m.Map("CreatedAt")
	m.HasManyToMany("Categories")
}

type CategoryMap struct{}

func (CategoryMap) Define(m *mapping.ClassMap) {
	m.For(Category{}).Table("categories")
	m.ID("ID").GeneratedBy(mapping.GeneratorIdentity)
	m.Map("Name").Length(100).NotNull().Unique()
	m.HasManyToMany("Products").Inverse()
}

type CustomerMap struct{}

func (CustomerMap) Define(m *mapping.ClassMap) {
	m.For(Customer{}).Table("customers")
	m.ID("ID").GeneratedBy(mapping.GeneratorIdentity)
	m.Map("Email").NotNull().Unique()
	m.Map("FullName")
	m.Map("Address")
	m.Map("IsActive")
	m.HasMany("Orders").KeyColumn("customer_id").Inverse()
}

// OrderMap owns its items; deleting an order deletes its lines.
type OrderMap struct{}

func (OrderMap) Define(m *mapping.ClassMap) {
	m.For(Order{}).Table("orders")
	m.ID("ID").GeneratedBy(mapping.GeneratorIdentity)
	m.References("Customer").Column("customer_id").NotNull()
	m.Map("Status").Length(16).NotNull()
	m.Map("TotalCents")
	m.Map("OrderedAt")
	m.HasMany("Items").KeyColumn("order_id").Cascade("all-delete-orphan")
}

type OrderItemMap struct{}

func (OrderItemMap) Define(m *mapping.ClassMap) {
	m.For(OrderItem{}).Table("order_items")
	m.ID("ID").GeneratedBy(mapping.GeneratorIdentity)
	m.References("Order").Column("order_id").NotNull()
	m.References("Product").Column("product_id")
	m.Map("Name")
	m.Map("Quantity").NotNull()
	m.Map("UnitPrice").NotNull()
}
