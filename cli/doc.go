// Package cli contains the command line interface for evdef.
//
// # Usage
//
//	evdef [flags] [parse] [file ...]      print definitions (default)
//	evdef [flags] get <name> [file ...]  print one definition
//	evdef [flags] check [file ...]       validate against the strict grammar
//	evdef [flags] init [--force]         write the configuration file
//
// Inputs come from positional files, the global --source flag, or stdin.
// Both accept '-' for stdin, which is always read last.
//
// # Configuration
//
// Flag defaults may be set in config.yaml or config.json under the user
// configuration directory. "evdef init" writes the current values of the
// global flags to config.yaml. See [resolve] for the accepted YAML keys.
//
// # Logging Options
//
//   - --log-level: minimum level (trace, debug, info, warn, error)
//   - --log-format: record encoding (json, text)
//   - --log-time-layout: timestamp layout name, Go layout, or "none"
//   - --log-caller: include source locations
//   - --log-pretty: colorize records
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o evdef .
//
//   - --pprof-mode: profile kind (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: output directory (default: <user cache dir>/evdef/pprof)
package cli
