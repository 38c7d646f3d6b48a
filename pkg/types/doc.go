// Package types defines the Registry interface, the type-agility data model
// (TypeTrait, TypeDescriptor, Handle, Capability, QueryResult), configuration,
// and the standard error values for the agility capability registry.
//
// A type's trait is bound when the type is defined and read through the
// type's descriptor, so every instance of a type reports the same agility.
package types
