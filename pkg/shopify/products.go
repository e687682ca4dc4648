package shopify

import (
	"github.com/shopmodel/shopmodel/pkg/resource"
)

var (
	// Product is a sellable item. Variants and images ride along embedded
	// in product responses; metafields are a separate filtered list call.
	Product = &resource.Type{
		PathSegment: "products",
		Singular:    "product",
		Plural:      "products",
	}

	// Variant is one purchasable option of a product.
	Variant = &resource.Type{
		PathSegment: "variants",
		Singular:    "variant",
		Plural:      "variants",
	}

	// Image is a product image.
	Image = &resource.Type{
		PathSegment: "images",
		Singular:    "image",
		Plural:      "images",
	}

	// Metafield is a namespaced key/value attached to another resource.
	Metafield = &resource.Type{
		PathSegment: "metafields",
		Singular:    "metafield",
		Plural:      "metafields",
	}

	// CustomCollection is a manually curated product grouping.
	CustomCollection = &resource.Type{
		PathSegment: "custom_collections",
		Singular:    "custom_collection",
		Plural:      "custom_collections",
	}

	// Collect links a product into a custom collection.
	Collect = &resource.Type{
		PathSegment: "collects",
		Singular:    "collect",
		Plural:      "collects",
	}
)

func init() {
	Product.Relationships = map[string]resource.Relationship{
		"variants": {Kind: resource.IncludesMany, Target: Variant},
		"images":   {Kind: resource.IncludesMany, Target: Image},
		"metafields": {
			Kind:   resource.HasMany,
			Target: Metafield,
			Params: ownedBy("product"),
		},
	}
	Variant.Relationships = map[string]resource.Relationship{
		"product": {Kind: resource.IncludesOne, Target: Product},
	}
	Collect.Relationships = map[string]resource.Relationship{
		"product":           {Kind: resource.IncludesOne, Target: Product},
		"custom_collection": {Kind: resource.IncludesOne, Target: CustomCollection},
	}
	CustomCollection.Relationships = map[string]resource.Relationship{
		"collects": {
			Kind:   resource.HasMany,
			Target: Collect,
			Params: func(c *resource.Instance) resource.Params {
				return resource.Params{"collection_id": c.ID()}
			},
		},
	}

	for _, t := range []*resource.Type{Product, Variant, Image, Metafield, CustomCollection, Collect} {
		resource.Register(t)
	}
}

// ownedBy builds a metafield-style owner filter from the owning instance.
func ownedBy(ownerKind string) resource.ParamsFunc {
	return func(owner *resource.Instance) resource.Params {
		return resource.Params{
			"metafield[owner_resource]": ownerKind,
			"metafield[owner_id]":       owner.ID(),
		}
	}
}
