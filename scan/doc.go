// Package scan discovers mapping-definition types inside Go packages.
//
// Go cannot enumerate the types of a package at run time, so definitions
// are registered in a Catalog, usually from an init function next to the
// definitions:
//
//	func init() {
//		scan.MustRegister(OrderMap{}, OrderItemMap{})
//	}
//
// A Catalog is itself a model.Scanner: scanning a module returns the
// definitions registered for that package in registration order.
//
// SourceScanner additionally loads the package from source with
// golang.org/x/tools/go/packages, returns the definitions in declaration
// order and fails when a declared definition was never registered.
package scan
