// Package model defines the model kind abstraction: how kinds declare
// their arguments, how declarations compose under namespaces, and how
// instances are built from keyword values or parsed from command line
// arguments. A Registry resolves kind names for the CLI.
package model
