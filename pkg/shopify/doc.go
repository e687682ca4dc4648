// Package shopify declares the concrete admin API resource types: path and
// naming metadata plus relationship tables. These definitions are pure
// configuration over the resource engine; all behavior lives in
// pkg/resource.
//
// Every type is registered into the default resource registry at init.
package shopify
