package resource_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopmodel/shopmodel/pkg/resource"
	"github.com/shopmodel/shopmodel/pkg/resource/resourcetest"
)

// testTypes builds a small product/variant pair for runtime tests.
func testTypes() (product, variant *resource.Type) {
	variant = &resource.Type{
		PathSegment: "variants",
		Singular:    "variant",
		Plural:      "variants",
	}
	product = &resource.Type{
		PathSegment: "products",
		Singular:    "product",
		Plural:      "products",
	}
	return product, variant
}

func newRuntime(stub *resourcetest.StubCaller) *resource.Runtime {
	return resource.NewRuntime(resource.FixedCaller(stub))
}

// --- RT-001: path construction ---
func TestBuildPath(t *testing.T) {
	cases := []struct {
		through, segment, id string
		want                 string
	}{
		{"", "products", "", "admin/products.json"},
		{"", "products", "123", "admin/products/123.json"},
		{"products/1234", "variants", "", "admin/products/1234/variants.json"},
		{"products/1234", "variants", "9", "admin/products/1234/variants/9.json"},
	}
	for _, c := range cases {
		got := resource.BuildPathForTest(c.through, c.segment, c.id)
		if got != c.want {
			t.Errorf("buildPath(%q, %q, %q) = %q, want %q", c.through, c.segment, c.id, got, c.want)
		}
	}
}

// --- RT-002: id formatting ---
func TestFormatID(t *testing.T) {
	cases := []struct {
		id   any
		want string
	}{
		{"abc", "abc"},
		{float64(1234), "1234"},
		{1234, "1234"},
		{int64(1234), "1234"},
	}
	for _, c := range cases {
		if got := resource.FormatIDForTest(c.id); got != c.want {
			t.Errorf("formatID(%v) = %q, want %q", c.id, got, c.want)
		}
	}
}

// --- RT-003: Find issues GET and hydrates the singular envelope ---
func TestFind(t *testing.T) {
	product, _ := testTypes()
	stub := (&resourcetest.StubCaller{}).Respond(http.MethodGet, "admin/products/123.json", resource.Payload{
		"product": map[string]any{"id": float64(123), "title": "Widget"},
	})
	rt := newRuntime(stub)

	inst, err := rt.Find(context.Background(), product, 123, nil)
	if err != nil {
		t.Fatal(err)
	}
	if inst.IsNew() {
		t.Fatal("found instance must not be new")
	}
	if v, _ := inst.Lookup("title"); v != "Widget" {
		t.Fatalf("title = %v, want Widget", v)
	}
	if got := stub.LastCall().Method; got != http.MethodGet {
		t.Fatalf("method = %s, want GET", got)
	}
}

// --- RT-004: All preserves server order ---
func TestAllPreservesOrder(t *testing.T) {
	product, _ := testTypes()
	stub := (&resourcetest.StubCaller{}).Respond(http.MethodGet, "admin/products.json", resource.Payload{
		"products": []any{
			map[string]any{"id": float64(3)},
			map[string]any{"id": float64(1)},
			map[string]any{"id": float64(2)},
		},
	})
	rt := newRuntime(stub)

	col, err := rt.All(context.Background(), product, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(col) != 3 {
		t.Fatalf("expected 3 instances, got %d", len(col))
	}
	want := []float64{3, 1, 2}
	for n, inst := range col {
		if inst.ID() != want[n] {
			t.Fatalf("element %d id = %v, want %v", n, inst.ID(), want[n])
		}
	}
}

// --- RT-005: AllThrough with a live parent instance ---
func TestAllThroughParentInstance(t *testing.T) {
	product, variant := testTypes()
	stub := (&resourcetest.StubCaller{}).
		Respond(http.MethodGet, "admin/products/1234.json", resource.Payload{
			"product": map[string]any{"id": float64(1234)},
		}).
		Respond(http.MethodGet, "admin/products/1234/variants.json", resource.Payload{
			"variants": []any{map[string]any{"id": float64(9)}},
		})
	rt := newRuntime(stub)

	parent, err := rt.Find(context.Background(), product, 1234, nil)
	if err != nil {
		t.Fatal(err)
	}
	col, err := rt.AllThrough(context.Background(), variant, parent, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(col) != 1 || col[0].ID() != float64(9) {
		t.Fatalf("unexpected collection: %+v", col)
	}
}

// --- RT-006: AllThrough with a literal path fragment ---
func TestAllThroughLiteralPath(t *testing.T) {
	_, variant := testTypes()
	stub := (&resourcetest.StubCaller{}).Respond(http.MethodGet, "admin/products/1234/variants.json", resource.Payload{
		"variants": []any{},
	})
	rt := newRuntime(stub)

	if _, err := rt.AllThrough(context.Background(), variant, resource.Path("products/1234"), nil); err != nil {
		t.Fatal(err)
	}
	if got := stub.LastCall().Path; got != "admin/products/1234/variants.json" {
		t.Fatalf("path = %q", got)
	}
}

// --- RT-007: nesting under an unsaved parent fails ---
func TestAllThroughUnsavedParent(t *testing.T) {
	product, variant := testTypes()
	rt := newRuntime(&resourcetest.StubCaller{})

	parent := product.New(rt)
	if _, err := rt.AllThrough(context.Background(), variant, parent, nil); err == nil {
		t.Fatal("expected error for unsaved parent")
	}
}

// --- RT-008: save on a new instance uses POST with no id ---
func TestSaveNewUsesPost(t *testing.T) {
	product, _ := testTypes()
	stub := (&resourcetest.StubCaller{}).Respond(http.MethodPost, "admin/products.json", resource.Payload{
		"product": map[string]any{"id": float64(7), "title": "Widget"},
	})
	rt := newRuntime(stub)

	inst := product.New(rt)
	inst.Set("title", "Widget")
	if err := inst.Save(context.Background()); err != nil {
		t.Fatal(err)
	}

	call := stub.LastCall()
	if call.Method != http.MethodPost {
		t.Fatalf("method = %s, want POST", call.Method)
	}
	body, ok := call.Params["product"].(map[string]resource.Value)
	if !ok {
		t.Fatalf("body envelope missing: %+v", call.Params)
	}
	if body["title"] != "Widget" {
		t.Fatalf("body title = %v", body["title"])
	}
	if inst.IsNew() {
		t.Fatal("instance must not be new after save")
	}
}

// --- RT-009: save on an existing instance uses PUT with the id ---
func TestSaveExistingUsesPut(t *testing.T) {
	product, _ := testTypes()
	stub := (&resourcetest.StubCaller{}).
		Respond(http.MethodGet, "admin/products/7.json", resource.Payload{
			"product": map[string]any{"id": float64(7), "title": "Widget"},
		}).
		Respond(http.MethodPut, "admin/products/7.json", resource.Payload{
			"product": map[string]any{"id": float64(7), "title": "Gadget"},
		})
	rt := newRuntime(stub)

	inst, err := rt.Find(context.Background(), product, 7, nil)
	if err != nil {
		t.Fatal(err)
	}
	inst.Set("title", "Gadget")
	if err := inst.Save(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := stub.LastCall().Method; got != http.MethodPut {
		t.Fatalf("method = %s, want PUT", got)
	}
}

// --- RT-010: save replaces properties wholesale and clears mutations ---
func TestSaveRoundTrip(t *testing.T) {
	product, _ := testTypes()
	stub := (&resourcetest.StubCaller{}).Respond(http.MethodPost, "admin/products.json", resource.Payload{
		"product": map[string]any{"id": float64(7), "title": "Widget (normalized)"},
	})
	rt := newRuntime(stub)

	inst := product.New(rt)
	inst.Set("title", "widget")
	if err := inst.Save(context.Background()); err != nil {
		t.Fatal(err)
	}

	// The server-echoed value wins over the pre-save mutation.
	if v, _ := inst.Lookup("title"); v != "Widget (normalized)" {
		t.Fatalf("title = %v, want server echo", v)
	}
	if n := resource.MutationCountForTest(inst); n != 0 {
		t.Fatalf("expected no pending mutations after save, got %d", n)
	}
}

// --- RT-011: destroy issues DELETE with the id ---
func TestDestroy(t *testing.T) {
	product, _ := testTypes()
	stub := (&resourcetest.StubCaller{}).
		Respond(http.MethodGet, "admin/products/7.json", resource.Payload{
			"product": map[string]any{"id": float64(7)},
		}).
		Respond(http.MethodDelete, "admin/products/7.json", resource.Payload{})
	rt := newRuntime(stub)

	inst, err := rt.Find(context.Background(), product, 7, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := inst.Destroy(context.Background()); err != nil {
		t.Fatal(err)
	}

	call := stub.LastCall()
	if call.Method != http.MethodDelete || call.Path != "admin/products/7.json" {
		t.Fatalf("unexpected call: %+v", call)
	}
	// Not locally marked deleted.
	if inst.IsNew() {
		t.Fatal("destroy must not reset the instance")
	}
}

// --- RT-012: destroying an unsaved instance fails ---
func TestDestroyUnsaved(t *testing.T) {
	product, _ := testTypes()
	rt := newRuntime(&resourcetest.StubCaller{})
	if err := product.New(rt).Destroy(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

// --- RT-013: envelope violations surface as errors ---
func TestEnvelopeViolation(t *testing.T) {
	product, _ := testTypes()
	stub := (&resourcetest.StubCaller{}).Respond(http.MethodGet, "admin/products.json", resource.Payload{
		"unexpected": []any{},
	})
	rt := newRuntime(stub)
	if _, err := rt.All(context.Background(), product, nil); err == nil {
		t.Fatal("expected envelope error")
	}
}

// --- RT-014: transport errors propagate unchanged ---
func TestTransportErrorPropagates(t *testing.T) {
	product, _ := testTypes()
	boom := errors.New("boom")
	stub := &resourcetest.StubCaller{
		RestCallFunc: func(ctx context.Context, method, path string, params resource.Params) (resource.Payload, error) {
			return nil, boom
		},
	}
	rt := newRuntime(stub)
	if _, err := rt.Find(context.Background(), product, 1, nil); !errors.Is(err, boom) {
		t.Fatalf("expected the transport error unchanged, got %v", err)
	}
}

// --- RT-015: no connection fails with a ConfigurationError ---
func TestNoConnection(t *testing.T) {
	product, _ := testTypes()
	rt := resource.NewRuntime(resource.FixedCaller(nil))
	_, err := rt.All(context.Background(), product, nil)
	var cfgErr *resource.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
}
