// Package fluent provides the mappings container: a chained builder that
// collects mapping sources and applies them later, in one step, to a
// persistence configuration.
//
// Registration is cheap and never scans anything:
//
//	c := fluent.New().
//		AddFromModuleOf(store.Order{}).
//		Add(fluent.TypeOf[warehouse.OrderMap]()).
//		ExportTo("mappings.yaml")
//
//	c.Conventions().Add(conventions.SnakeCaseTables())
//
//	if err := c.Apply(persistence.NewConfiguration()); err != nil {
//		return err
//	}
//
// Apply ingests every registered module, then every registered type, then
// writes the exports, then configures the target. The first failure aborts
// the remaining steps. A container is applied at most once.
//
// Registration errors do not break the chain: the first one is kept, exposed
// by Err and returned by Apply before any work is done.
package fluent
