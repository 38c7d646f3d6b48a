package types

// DefineOption configures a type definition.
type DefineOption func(*DefineOptions)

// DefineOptions holds the settings applied by DefineOption values.
type DefineOptions struct {
	Trait TypeTrait
}

// WithTrait sets the trait of the type being defined. Types defined without
// it are agile.
func WithTrait(t TypeTrait) DefineOption {
	return func(o *DefineOptions) {
		o.Trait = t
	}
}

// ApplyDefineOptions folds opts over the defaults.
func ApplyDefineOptions(opts ...DefineOption) DefineOptions {
	o := DefineOptions{Trait: TraitAgile}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Registry associates object types with their agility trait and answers
// marker-capability queries on handles.
type Registry interface {
	// Define registers a type. The trait defaults to TraitAgile.
	// Returns ErrDuplicateType if the name is already defined,
	// ErrInvalidName for an empty name or one with surrounding
	// whitespace, and ErrInvalidTrait for an
	// out-of-range trait.
	Define(name string, opts ...DefineOption) (*TypeDescriptor, error)

	// Lookup returns the descriptor for name and whether it exists.
	Lookup(name string) (*TypeDescriptor, bool)

	// Types returns every defined type sorted by name.
	Types() []*TypeDescriptor

	// NewHandle returns a handle to a new instance of the named type.
	// Returns ErrTypeNotFound if the type is not defined.
	NewHandle(name string) (Handle, error)

	// QueryCapability returns an AgileRef when h's type is agile.
	// Returns ErrUnsupportedCapability otherwise.
	QueryCapability(h Handle, c Capability) (AgileRef, error)

	// TryQueryCapability is QueryCapability without an error: the result
	// is Absent whenever QueryCapability would fail.
	TryQueryCapability(h Handle, c Capability) QueryResult

	// IsAgile reports whether QueryCapability(h, MarkerAgile) would succeed.
	IsAgile(h Handle) bool

	// IsAgileType reports whether the named type is agile.
	// Returns ErrTypeNotFound if the type is not defined.
	IsAgileType(name string) (bool, error)
}
