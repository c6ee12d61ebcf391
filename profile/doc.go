// Package profile provides optional runtime profiling for evdef.
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag every [Config] starts a no-op profiler and [Modes] is
// empty, so callers never need to check how the binary was built.
//
// Profiles are written by [github.com/pkg/profile] into [Config.Dir], one
// file per mode (cpu.pprof, mem.pprof, ...). Analyze them with
//
//	go tool pprof -http=: evdef cpu.pprof
//
// Tagged builds also register the [net/http/pprof] handlers on the default
// mux; they are served only if the program starts an HTTP server.
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
