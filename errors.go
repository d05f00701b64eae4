package main

import "errors"

var (
	ErrRootNotFound     = errors.New("could not find repository root (no core/langs directory found)")
	ErrReferenceMissing = errors.New("reference language file cannot be loaded")
	ErrUnparsable       = errors.New("language file cannot be parsed")
	ErrNoKeys           = errors.New("no translation keys registered")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrUnknownFormat    = errors.New("unknown output format")
)
