// Package veneer composes independent decorator types around a payload
// value so that every decorator's capability stays reachable no matter
// where in the stack it sits.
//
// Transparent access
//
// Every decorator implements Wrapper, the single-level unwrap protocol.
// Find chains Unwrap calls to resolve a capability contract anywhere in
// a stack, so a label defined three layers down is as accessible as one
// defined on the outermost type.  The nesting order is part of a stack's
// type but invisible to capability access.
//
// Depth-indexed operations
//
// Zero and Succ form a closed family of depth indexes.  Construct uses
// an index to build a full stack around a payload, and WithAt uses one
// to apply a capability setting at an exact layer.  With resolves the
// depth itself and rejects stacks where the target capability is
// missing or appears more than once.
package veneer
