// Package diagnostic collects structured errors, warnings and notes produced
// while a persistence model is built.
//
// Key capabilities:
//   - Dangling association warnings (target entity never mapped)
//   - Duplicate entity and table errors
//   - Ambiguous many-to-many pairing reports with the chosen candidate
//   - Log-friendly attributes for each entry
package diagnostic
