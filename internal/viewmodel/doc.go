// Package viewmodel binds the gateway to displayable list state.
//
// Each view owns its copy of the data exclusively; completions of
// in-flight requests are the only writers. A fetch is tagged with a request
// token when issued and commits only if its token is still the view's
// latest, so out-of-order completions and completions after Close are
// discarded instead of clobbering newer state. Mutations are not coalesced:
// each one triggers its own full refetch on success and leaves prior state
// untouched on failure.
package viewmodel
