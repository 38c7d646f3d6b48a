package types

import "time"

// TypeDescriptor describes a defined object type. Descriptors are created by
// a Registry and never modified afterwards; the fields are unexported so a
// trait cannot be changed once the type exists.
type TypeDescriptor struct {
	name      string
	trait     TypeTrait
	definedAt time.Time
}

// NewTypeDescriptor builds a descriptor. Registry implementations call this
// after validating name and trait.
func NewTypeDescriptor(name string, trait TypeTrait, definedAt time.Time) *TypeDescriptor {
	return &TypeDescriptor{name: name, trait: trait, definedAt: definedAt}
}

// Name returns the type name.
func (d *TypeDescriptor) Name() string { return d.name }

// Trait returns the trait bound at definition.
func (d *TypeDescriptor) Trait() TypeTrait { return d.trait }

// DefinedAt returns when the type was defined.
func (d *TypeDescriptor) DefinedAt() time.Time { return d.definedAt }

// IsAgile reports whether instances of the type may cross execution contexts.
func (d *TypeDescriptor) IsAgile() bool { return d.trait == TraitAgile }
