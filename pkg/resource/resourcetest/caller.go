// Package resourcetest provides test doubles for the resource engine.
package resourcetest

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/shopmodel/shopmodel/pkg/resource"
)

// Call records one transport invocation.
type Call struct {
	Method string
	Path   string
	Params resource.Params
}

// StubCaller is a configurable test double for resource.Caller. When
// RestCallFunc is nil it serves canned responses keyed by "METHOD path",
// failing on anything unrouted. Every invocation is recorded.
type StubCaller struct {
	RestCallFunc func(ctx context.Context, method, path string, params resource.Params) (resource.Payload, error)

	// Calls counts invocations (atomic for concurrent safety).
	Calls atomic.Int32

	mu        sync.Mutex
	recorded  []Call
	responses map[string]resource.Payload
}

// Respond registers a canned payload for "METHOD path".
func (s *StubCaller) Respond(method, path string, body resource.Payload) *StubCaller {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.responses == nil {
		s.responses = make(map[string]resource.Payload)
	}
	s.responses[method+" "+path] = body
	return s
}

// RestCall implements resource.Caller.
func (s *StubCaller) RestCall(ctx context.Context, method, path string, params resource.Params) (resource.Payload, error) {
	s.Calls.Add(1)
	s.mu.Lock()
	s.recorded = append(s.recorded, Call{Method: method, Path: path, Params: params})
	s.mu.Unlock()

	if s.RestCallFunc != nil {
		return s.RestCallFunc(ctx, method, path, params)
	}

	s.mu.Lock()
	body, ok := s.responses[method+" "+path]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("resourcetest: no canned response for %s %s", method, path)
	}
	return body, nil
}

// Recorded returns a copy of all recorded calls in order.
func (s *StubCaller) Recorded() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.recorded))
	copy(out, s.recorded)
	return out
}

// LastCall returns the most recent call, or a zero Call if none happened.
func (s *StubCaller) LastCall() Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.recorded) == 0 {
		return Call{}
	}
	return s.recorded[len(s.recorded)-1]
}
