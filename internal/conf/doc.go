// Package conf holds model and command configuration: immutable records
// with deterministic field order, dotted-key expansion, and the on-disk
// workspace configuration document.
package conf
