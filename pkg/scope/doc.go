// Package scope implements a scope-tiered configuration validator.
//
// A declarative [Definition] assigns every configuration key to exactly one
// visibility tier (server-only, client-exposed, or shared) and a value kind
// (string, number, boolean, URL, enum, duration). [Define] compiles the
// definition into an immutable [Schema], rejecting structural faults such as
// duplicate keys or a client-exposed key without the PUBLIC_ prefix.
// [Validate] then checks an untyped raw source map against the schema and
// produces an immutable [Config], partitioned into read-only views:
//
//   - [Config.ForServer]: server-only and shared keys
//   - [Config.ForClient]: client-exposed and shared keys
//   - [Config.Full]: every key, for trusted server contexts only
//
// The client view is assembled only from client-exposed and shared entries,
// never filtered down from the full set, so a newly added server-only key can
// never leak into it.
//
// Validation never short-circuits: every missing or invalid value across the
// whole schema is collected into a single [ValidationError] so one run yields
// a complete diagnostic list. Either a fully valid [Config] is produced, or
// none is.
package scope
