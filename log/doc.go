// Package log provides structured logging handler construction for use with
// [log/slog].
//
// It supports multiple output formats ([FormatJSON], [FormatLogfmt], and
// [FormatText]) and severity levels ([LevelError], [LevelWarn], [LevelInfo],
// and [LevelDebug]). Use [NewHandler] to create a handler directly, or use
// [Config] with CLI flag integration via [github.com/spf13/pflag] and shell
// completion support via [github.com/spf13/cobra].
//
// cmd/lucidgen installs a handler as the process-wide [slog] default during
// its [github.com/spf13/cobra] PersistentPreRunE, so any package that calls
// slog.Warn or slog.Error -- descriptions/serde on a legacy-alias document,
// extension on a scratch-directory cleanup failure -- writes through the
// configured format and level without importing this package directly:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	handler, err := cfg.NewHandler(os.Stderr)
//	slog.SetDefault(slog.New(handler))
package log
