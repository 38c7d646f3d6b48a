// Package registry implements the in-memory agility capability registry.
//
// Type descriptors are immutable once defined. The registry lock guards only
// the name index; queries through a Handle read the descriptor directly.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/mesh-intelligence/agility/internal/logging"
	"github.com/mesh-intelligence/agility/pkg/types"
)

// Registry implements types.Registry using in-memory storage.
type Registry struct {
	mu         sync.RWMutex
	defs       map[string]*types.TypeDescriptor
	logger     logging.Logger
	registerer prometheus.Registerer
	metrics    *metrics
	now        func() time.Time
}

var _ types.Registry = (*Registry)(nil)

// Option configures the Registry.
type Option func(*Registry)

// WithLogger sets the logger. The default discards all output.
func WithLogger(l logging.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithClock overrides the time source used for definition timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		defs:   make(map[string]*types.TypeDescriptor),
		logger: logging.NoOpLogger{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.registerer != nil {
		r.metrics = newMetrics(r.registerer, r.logger)
	}
	return r
}

// Define registers a type. The trait defaults to types.TraitAgile.
func (r *Registry) Define(name string, opts ...types.DefineOption) (*types.TypeDescriptor, error) {
	if trimmed := strings.TrimSpace(name); trimmed == "" || trimmed != name {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidName, name)
	}
	o := types.ApplyDefineOptions(opts...)
	if !o.Trait.Valid() {
		return nil, fmt.Errorf("%w: %d", types.ErrInvalidTrait, int(o.Trait))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.defs[name]; ok {
		r.logger.Warn("type already defined", "type", name, "trait", existing.Trait().String())
		return nil, fmt.Errorf("%w: %s", types.ErrDuplicateType, name)
	}

	desc := types.NewTypeDescriptor(name, o.Trait, r.now())
	r.defs[name] = desc
	r.metrics.defined(o.Trait)
	r.logger.Info("type defined", "type", name, "trait", o.Trait.String())
	return desc, nil
}

// Lookup returns the descriptor for name and whether it exists.
func (r *Registry) Lookup(name string) (*types.TypeDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.defs[name]
	return d, ok
}

// Types returns every defined type sorted by name.
func (r *Registry) Types() []*types.TypeDescriptor {
	r.mu.RLock()
	out := make([]*types.TypeDescriptor, 0, len(r.defs))
	for _, d := range r.defs {
		out = append(out, d)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// NewHandle returns a handle to a new instance of the named type.
func (r *Registry) NewHandle(name string) (types.Handle, error) {
	d, ok := r.Lookup(name)
	if !ok {
		return types.Handle{}, fmt.Errorf("%w: %s", types.ErrTypeNotFound, name)
	}
	return types.NewHandle(generateUUID(), d), nil
}

// QueryCapability returns an AgileRef when h's type is agile. Confined types,
// unknown capabilities and the zero Handle yield ErrUnsupportedCapability.
func (r *Registry) QueryCapability(h types.Handle, c types.Capability) (types.AgileRef, error) {
	ok := supports(h, c)
	r.observeQuery(modeStrict, h, c, ok)
	if !ok {
		return types.AgileRef{}, fmt.Errorf("%w: %s on type %q", types.ErrUnsupportedCapability, c, h.TypeName())
	}
	return types.NewAgileRef(h), nil
}

// TryQueryCapability returns Present when QueryCapability would succeed and
// Absent otherwise. It never fails.
func (r *Registry) TryQueryCapability(h types.Handle, c types.Capability) types.QueryResult {
	ok := supports(h, c)
	r.observeQuery(modeLenient, h, c, ok)
	if !ok {
		return types.Absent()
	}
	return types.Present(types.NewAgileRef(h))
}

// IsAgile reports whether h's type is agile.
func (r *Registry) IsAgile(h types.Handle) bool {
	ok := supports(h, types.MarkerAgile)
	r.observeQuery(modeCheck, h, types.MarkerAgile, ok)
	return ok
}

// IsAgileType reports whether the named type is agile.
func (r *Registry) IsAgileType(name string) (bool, error) {
	d, ok := r.Lookup(name)
	if !ok {
		return false, fmt.Errorf("%w: %s", types.ErrTypeNotFound, name)
	}
	r.metrics.queried(modeCheck, d.IsAgile())
	return d.IsAgile(), nil
}

// supports is the single place the marker answer is decided.
func supports(h types.Handle, c types.Capability) bool {
	if c != types.MarkerAgile || h.IsZero() {
		return false
	}
	return h.Type().IsAgile()
}

func (r *Registry) observeQuery(mode string, h types.Handle, c types.Capability, ok bool) {
	r.metrics.queried(mode, ok)
	r.logger.Debug("capability queried",
		"mode", mode,
		"type", h.TypeName(),
		"instance", h.ID(),
		"capability", string(c),
		"present", ok,
	)
}

// generateUUID generates a UUID v7 for instance IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
