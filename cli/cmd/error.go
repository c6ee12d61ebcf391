package cmd

import "github.com/ardnew/evdef/def"

// Error is a command error carrying structured attributes for logging.
type Error = def.Error

var (
	ErrOpenSource   = def.NewError("open source")
	ErrInvalidQuery = def.NewError("invalid --where expression")
	ErrCheckFailed  = def.NewError("check failed")
	ErrYAMLMarshal  = def.NewError("marshal YAML")
	ErrWriteConfig  = def.NewError("write configuration file")
	ErrFileExists   = def.NewError("file exists (use --force to overwrite)")
)
