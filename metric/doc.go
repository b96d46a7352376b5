// Package metric manages Prometheus metric registration for linestream
// readers and hosts the HTTP exposition endpoint.
//
// Components register their metrics through a Registry, which tracks
// ownership by component name and rejects duplicate registrations with a
// clear error instead of a Prometheus panic. Passing a nil *Registry to a
// component disables its metrics entirely (nil input = nil feature).
package metric
