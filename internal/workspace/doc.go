// Package workspace manages an experiment directory: the persisted model
// configuration, the standard log, snapshot and result subdirectories,
// and per-command file loggers.
package workspace
