package shopify

import (
	"github.com/shopmodel/shopmodel/pkg/resource"
)

var (
	// Order is a completed checkout. The customer object comes embedded in
	// order responses; transactions are a filtered list call.
	Order = &resource.Type{
		PathSegment: "orders",
		Singular:    "order",
		Plural:      "orders",
	}

	// Transaction is a payment event belonging to an order.
	Transaction = &resource.Type{
		PathSegment: "transactions",
		Singular:    "transaction",
		Plural:      "transactions",
	}

	// Customer is a shop customer.
	Customer = &resource.Type{
		PathSegment: "customers",
		Singular:    "customer",
		Plural:      "customers",
	}
)

func init() {
	Order.Relationships = map[string]resource.Relationship{
		"customer": {Kind: resource.IncludesOne, Target: Customer},
		"transactions": {
			Kind:   resource.HasMany,
			Target: Transaction,
			Params: func(o *resource.Instance) resource.Params {
				return resource.Params{"order_id": o.ID()}
			},
		},
	}
	Customer.Relationships = map[string]resource.Relationship{
		"orders": {
			Kind:   resource.HasMany,
			Target: Order,
			Params: func(c *resource.Instance) resource.Params {
				return resource.Params{"customer_id": c.ID()}
			},
		},
		"last_order": {
			Kind:    resource.IncludesOne,
			Target:  Order,
			LinkKey: "last_order_id",
		},
	}

	for _, t := range []*resource.Type{Order, Transaction, Customer} {
		resource.Register(t)
	}
}
