// Package analyze loads Go packages from source and finds the mapping
// definitions they declare.
//
// It uses golang.org/x/tools/go/packages with go/types to inspect every
// exported named type of a package. A type is a definition when the method
// set of its pointer has a Define method taking *mapping.ClassMap and
// returning nothing.
//
// Key types:
//   - TypeID: package import path + type name
//   - Definition: a definition type and where it is declared
package analyze
