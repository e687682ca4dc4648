package resource

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// apiRoot is the fixed leading path segment for every admin API call.
const apiRoot = "admin"

// Caller is the transport contract the core consumes. Implementations
// translate the call into an authenticated HTTP request and return the
// decoded JSON body. Transport failures come back opaque; the core
// propagates them unchanged with no retry or recovery.
type Caller interface {
	RestCall(ctx context.Context, method, path string, params Params) (Payload, error)
}

// CallerSource supplies the active Caller for each operation. A source
// that has no connection established returns a ConfigurationError.
type CallerSource interface {
	Caller() (Caller, error)
}

// fixedCaller adapts a bare Caller into a CallerSource.
type fixedCaller struct{ c Caller }

func (f fixedCaller) Caller() (Caller, error) {
	if f.c == nil {
		return nil, ErrNoConnection()
	}
	return f.c, nil
}

// FixedCaller wraps a Caller into a CallerSource that always returns it.
// Useful for tests and single-connection programs.
func FixedCaller(c Caller) CallerSource {
	return fixedCaller{c: c}
}

// Through identifies a parent scope for a nested request path. A live
// *Instance or a literal Path fragment both qualify.
type Through interface {
	throughSegment() (string, error)
}

// Path is a literal through-path fragment, e.g. Path("products/1234").
type Path string

func (p Path) throughSegment() (string, error) {
	return string(p), nil
}

// Runtime performs request dispatch, path construction, and hydration for
// every resource type. It holds no per-resource state; one runtime serves
// all types over a single connection.
type Runtime struct {
	source CallerSource
	logger *zap.Logger
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithLogger sets the runtime's structured logger.
func WithLogger(l *zap.Logger) RuntimeOption {
	return func(rt *Runtime) {
		rt.logger = l
	}
}

// NewRuntime creates a runtime over a caller source.
func NewRuntime(source CallerSource, opts ...RuntimeOption) *Runtime {
	rt := &Runtime{
		source: source,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// All issues a list call for a type and hydrates the plural envelope into
// an ordered collection.
func (rt *Runtime) All(ctx context.Context, t *Type, params Params) (Collection, error) {
	return rt.list(ctx, t, "", params)
}

// AllThrough is All with the path nested under a parent scope.
func (rt *Runtime) AllThrough(ctx context.Context, t *Type, through Through, params Params) (Collection, error) {
	prefix, err := through.throughSegment()
	if err != nil {
		return nil, err
	}
	return rt.list(ctx, t, prefix, params)
}

// Find issues a single-object call and hydrates the singular envelope.
func (rt *Runtime) Find(ctx context.Context, t *Type, id any, params Params) (*Instance, error) {
	return rt.fetch(ctx, t, id, "", params)
}

// FindThrough is Find with the path nested under a parent scope.
func (rt *Runtime) FindThrough(ctx context.Context, t *Type, id any, through Through, params Params) (*Instance, error) {
	prefix, err := through.throughSegment()
	if err != nil {
		return nil, err
	}
	return rt.fetch(ctx, t, id, prefix, params)
}

func (rt *Runtime) list(ctx context.Context, t *Type, prefix string, params Params) (Collection, error) {
	path := buildPath(prefix, t.PathSegment, "")
	body, err := rt.call(ctx, http.MethodGet, path, params)
	if err != nil {
		return nil, err
	}
	arr, err := unwrapMany(body, t.Plural)
	if err != nil {
		return nil, err
	}
	return rt.buildCollection(t, arr)
}

func (rt *Runtime) fetch(ctx context.Context, t *Type, id any, prefix string, params Params) (*Instance, error) {
	path := buildPath(prefix, t.PathSegment, formatID(id))
	body, err := rt.call(ctx, http.MethodGet, path, params)
	if err != nil {
		return nil, err
	}
	obj, err := unwrapOne(body, t.Singular)
	if err != nil {
		return nil, err
	}
	return rt.buildResource(t, obj), nil
}

// save persists an instance: POST when new, PUT with the primary-key value
// in the path otherwise. The request body is the singular envelope around
// the local mutations. On success the instance's persisted properties are
// replaced wholesale with the server's response and mutations are cleared.
func (rt *Runtime) save(ctx context.Context, i *Instance) error {
	t := i.typ
	method := http.MethodPost
	id := ""
	if !i.IsNew() {
		method = http.MethodPut
		id = formatID(i.primaryKeyValue())
	}
	path := buildPath("", t.PathSegment, id)

	body, err := rt.call(ctx, method, path, Params{t.Singular: i.props.mutations()})
	if err != nil {
		return err
	}
	obj, err := unwrapOne(body, t.Singular)
	if err != nil {
		return err
	}
	i.props.replace(obj)
	return nil
}

// destroy deletes an instance remotely. The response is discarded and the
// instance is not locally marked; that is the caller's responsibility.
func (rt *Runtime) destroy(ctx context.Context, i *Instance) error {
	t := i.typ
	if i.IsNew() {
		return fmt.Errorf("cannot destroy unsaved %s", t.Singular)
	}
	path := buildPath("", t.PathSegment, formatID(i.primaryKeyValue()))
	_, err := rt.call(ctx, http.MethodDelete, path, nil)
	return err
}

// call resolves the active caller and dispatches one transport call.
func (rt *Runtime) call(ctx context.Context, method, path string, params Params) (Payload, error) {
	caller, err := rt.source.Caller()
	if err != nil {
		return nil, err
	}
	rt.logger.Debug("rest call",
		zap.String("method", method),
		zap.String("path", path),
	)
	body, err := caller.RestCall(ctx, method, path, params)
	if err != nil {
		rt.logger.Debug("rest call failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}
	return body, nil
}

// buildResource hydrates one JSON object into an instance. Every field is
// copied verbatim into persisted properties; unknown fields pass through.
func (rt *Runtime) buildResource(t *Type, obj map[string]any) *Instance {
	i := newInstance(t, rt)
	i.props.replace(obj)
	return i
}

// buildCollection maps buildResource over a JSON array, preserving order.
func (rt *Runtime) buildCollection(t *Type, arr []any) (Collection, error) {
	out := make(Collection, 0, len(arr))
	for n, el := range arr {
		obj, ok := el.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("element %d of %s response is not an object", n, t.Plural)
		}
		out = append(out, rt.buildResource(t, obj))
	}
	return out, nil
}

// buildPath assembles "{apiRoot}[/{through}]/{segment}[/{id}].json".
func buildPath(through, segment, id string) string {
	parts := make([]string, 0, 4)
	parts = append(parts, apiRoot)
	if through != "" {
		parts = append(parts, through)
	}
	parts = append(parts, segment)
	if id != "" {
		parts = append(parts, id)
	}
	return strings.Join(parts, "/") + ".json"
}

// formatID renders a primary-key value as a path segment. JSON-decoded
// numbers arrive as float64 and render without a fractional part.
func formatID(id any) string {
	switch v := id.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return fmt.Sprint(v)
	}
}

// unwrapOne extracts the singular envelope from a response body.
func unwrapOne(body Payload, key string) (map[string]any, error) {
	obj, ok := body[key].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response body missing %q object", key)
	}
	return obj, nil
}

// unwrapMany extracts the plural envelope from a response body.
func unwrapMany(body Payload, key string) ([]any, error) {
	raw, ok := body[key]
	if !ok {
		return nil, fmt.Errorf("response body missing %q array", key)
	}
	arr, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("response body %q is not an array", key)
	}
	return arr, nil
}
