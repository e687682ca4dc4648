// Package resource implements the generic active-record engine: resource
// type metadata, instances backed by persisted/mutated property overlays,
// CRUD dispatch against a REST transport, JSON hydration, and lazy,
// memoized relationship resolution.
//
// Concrete resource definitions (Product, Theme, Asset, ...) are pure
// configuration built on top of this package; see pkg/shopify.
package resource
