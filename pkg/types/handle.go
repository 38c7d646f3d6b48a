package types

// Handle references one instance of a defined type. The trait is read from
// the type's descriptor; a handle has no trait of its own.
type Handle struct {
	id   string
	desc *TypeDescriptor
}

// NewHandle binds an instance ID to a type descriptor.
func NewHandle(id string, desc *TypeDescriptor) Handle {
	return Handle{id: id, desc: desc}
}

// ID returns the instance ID.
func (h Handle) ID() string { return h.id }

// Type returns the descriptor of the instance's type, or nil for the zero Handle.
func (h Handle) Type() *TypeDescriptor { return h.desc }

// IsZero reports whether the handle references no instance.
func (h Handle) IsZero() bool { return h.desc == nil }

// TypeName returns the name of the instance's type, or "" for the zero Handle.
func (h Handle) TypeName() string {
	if h.desc == nil {
		return ""
	}
	return h.desc.name
}
