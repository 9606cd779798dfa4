// Package machine binds an origin to a structure template and exposes
// the append-style mutation operations for the two machine kinds.
//
// Positions are absolute world coordinates at the package boundary and
// relativized against the machine's origin before storage. The origin is
// a value: once a machine is constructed it cannot be changed, and no
// caller-held coordinate can alias into it.
//
// Entries are append-only. There is no update or delete operation;
// insertion order is preserved and, for interaction points, significant.
package machine
