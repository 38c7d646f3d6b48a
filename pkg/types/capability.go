package types

// Capability names a capability that can be queried on a handle.
type Capability string

// MarkerAgile is the marker capability held by handles whose type is agile.
// It carries no operations; whether the query succeeds is the whole answer.
const MarkerAgile Capability = "agile"

// AgileRef is the reference returned by a successful MarkerAgile query.
// It only gives back the handle it was derived from.
type AgileRef struct {
	handle Handle
}

// NewAgileRef wraps a handle whose type is known to be agile.
func NewAgileRef(h Handle) AgileRef {
	return AgileRef{handle: h}
}

// Handle returns the handle the reference was derived from.
func (r AgileRef) Handle() Handle { return r.handle }

// QueryResult is the outcome of a non-strict capability query: Present with
// an AgileRef, or Absent with nothing.
type QueryResult struct {
	ref     AgileRef
	present bool
}

// Present returns a QueryResult carrying ref.
func Present(ref AgileRef) QueryResult {
	return QueryResult{ref: ref, present: true}
}

// Absent returns the empty QueryResult.
func Absent() QueryResult {
	return QueryResult{}
}

// Present reports whether the capability was found.
func (q QueryResult) Present() bool { return q.present }

// Ref returns the capability reference and true when present.
func (q QueryResult) Ref() (AgileRef, bool) {
	return q.ref, q.present
}

// String returns "present" or "absent".
func (q QueryResult) String() string {
	if q.present {
		return "present"
	}
	return "absent"
}
