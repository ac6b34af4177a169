// Package employee models the people tracked by the resource manager: their
// names, birth and joining instants, and the role they hold. Records are
// immutable once constructed; derived values such as the full name and age are
// computed on every call.
package employee
