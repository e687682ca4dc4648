package rest

import (
	"sync"

	"github.com/shopmodel/shopmodel/pkg/resource"
	"github.com/shopmodel/shopmodel/pkg/types"
)

// ConnectionHandle owns at most one active transport client. Set validates
// the connection's credentials before anything is stored, so a failed Set
// leaves the handle unset. Establishing a new connection silently replaces
// the previous one; there is no concurrent multi-shop support here.
//
// The handle is safe for concurrent reads, but callers are expected to
// follow a single-owner discipline for Set/Clear.
type ConnectionHandle struct {
	mu     sync.RWMutex
	conn   types.Connection
	caller resource.Caller
}

// NewConnectionHandle creates an unset handle.
func NewConnectionHandle() *ConnectionHandle {
	return &ConnectionHandle{}
}

// Set validates the connection, builds a transport client, and stores it.
// An override caller (test double, pre-built client) skips construction
// but not validation. On any error the handle keeps its previous state.
func (h *ConnectionHandle) Set(conn types.Connection, override resource.Caller, opts ...ClientOption) error {
	if err := conn.Validate(); err != nil {
		return err
	}

	caller := override
	if caller == nil {
		client, err := NewClient(conn, opts...)
		if err != nil {
			return err
		}
		caller = client
	}

	h.mu.Lock()
	h.conn = conn
	h.caller = caller
	h.mu.Unlock()
	return nil
}

// Caller implements resource.CallerSource. It fails with a
// ConfigurationError until a connection has been set.
func (h *ConnectionHandle) Caller() (resource.Caller, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.caller == nil {
		return nil, resource.ErrNoConnection()
	}
	return h.caller, nil
}

// Connection returns the stored connection metadata.
func (h *ConnectionHandle) Connection() (types.Connection, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.caller == nil {
		return types.Connection{}, resource.ErrNoConnection()
	}
	return h.conn, nil
}

// Clear resets the handle to unset.
func (h *ConnectionHandle) Clear() {
	h.mu.Lock()
	h.conn = types.Connection{}
	h.caller = nil
	h.mu.Unlock()
}

// defaultHandle is the process-wide connection, for programs that talk to
// exactly one shop.
var defaultHandle = NewConnectionHandle()

// Default returns the process-wide connection handle.
func Default() *ConnectionHandle {
	return defaultHandle
}

// Connect sets the process-wide connection.
func Connect(conn types.Connection, opts ...ClientOption) error {
	return defaultHandle.Set(conn, nil, opts...)
}

// Disconnect clears the process-wide connection.
func Disconnect() {
	defaultHandle.Clear()
}

// Compile-time check.
var _ resource.CallerSource = (*ConnectionHandle)(nil)
