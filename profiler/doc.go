// Package profiler adds runtime profiling to CLI applications.
//
// It supports CPU, heap, allocs, goroutine, threadcreate, block, and mutex
// profiles through command-line flags, bound to [runtime/pprof] and the
// runtime's rate knobs ([runtime.MemProfileRate],
// [runtime.SetBlockProfileRate], [runtime.SetMutexProfileFraction]).
//
// cmd/lucidgen registers one per process and starts it from the root
// command's PersistentPreRunE, stopping (and writing any enabled snapshot
// profiles) from PersistentPostRunE:
//
//	p := profiler.New()
//	p.RegisterFlags(rootCmd.PersistentFlags())
//
//	rootCmd.PersistentPreRunE = func(*cobra.Command, []string) error { return p.Start() }
//	rootCmd.PersistentPostRunE = func(*cobra.Command, []string) error { return p.Stop() }
//
// Users enable profiling via flags like --cpu-profile=cpu.prof.
package profiler
