package shopify

import (
	"github.com/shopmodel/shopmodel/pkg/resource"
)

var (
	// Shop is the shop itself; a singleton resource.
	Shop = &resource.Type{
		PathSegment: "shop",
		Singular:    "shop",
		Plural:      "shops",
	}

	// Theme is a storefront theme.
	Theme = &resource.Type{
		PathSegment: "themes",
		Singular:    "theme",
		Plural:      "themes",
	}

	// Asset is a single theme file. Assets have no numeric id; the "key"
	// field identifies them within a theme.
	Asset = &resource.Type{
		PathSegment: "assets",
		Singular:    "asset",
		Plural:      "assets",
		PrimaryKey:  "key",
	}

	// Webhook is a registered event subscription.
	Webhook = &resource.Type{
		PathSegment: "webhooks",
		Singular:    "webhook",
		Plural:      "webhooks",
	}
)

func init() {
	// Asset.theme lists themes and keeps the first element; the admin API
	// exposes no single-theme lookup usable here, so this mirrors the
	// remote convention rather than Find.
	Asset.Relationships = map[string]resource.Relationship{
		"theme": {Kind: resource.HasOne, Target: Theme},
	}

	for _, t := range []*resource.Type{Shop, Theme, Asset, Webhook} {
		resource.Register(t)
	}
}
