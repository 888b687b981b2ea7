package log

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds the CLI flag names lucidgen binds log configuration to. The
// defaults match what cmd/lucidgen registers; tests and alternate front
// ends can override either name before calling [Flags.NewConfig].
type Flags struct {
	Level  string
	Format string
}

// NewConfig builds a [Config] that registers flags under these names.
func (f Flags) NewConfig() *Config {
	return &Config{Flags: f}
}

// Config holds the log level and format lucidgen's CLI was invoked with.
//
// Build one with [NewConfig], wire it into a command with
// [Config.RegisterFlags] and [Config.RegisterCompletions], then turn it
// into a [Handler] with [Config.NewHandler] once flags have been parsed.
type Config struct {
	Level  string
	Format string
	Flags  Flags
}

// NewConfig returns a [Config] using lucidgen's default flag names
// ("log-level", "log-format"). Call [Config.RegisterFlags] to bind them to
// a [*pflag.FlagSet], or set Level/Format directly for non-CLI callers.
func NewConfig() *Config {
	return Flags{Level: "log-level", Format: "log-format"}.NewConfig()
}

// RegisterFlags binds c.Level and c.Format to flags, defaulting to "info"
// and "text" -- lucidgen's validate/print/extend commands all inherit these
// as persistent flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, "info",
		fmt.Sprintf("log level, one of: %s", GetAllLevelStrings()))
	flags.StringVar(&c.Format, c.Flags.Format, "text",
		fmt.Sprintf("log format, one of: %s", GetAllFormatStrings()))
}

// RegisterCompletions registers shell completions for the level and format
// flags on cmd, so `lucidgen --log-level <TAB>` lists [AllLevels].
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	completeLevels := cobra.FixedCompletions(GetAllLevelStrings(), cobra.ShellCompDirectiveNoFileComp)
	if err := cmd.RegisterFlagCompletionFunc(c.Flags.Level, completeLevels); err != nil {
		return fmt.Errorf("registering log-level completion: %w", err)
	}

	completeFormats := cobra.FixedCompletions(GetAllFormatStrings(), cobra.ShellCompDirectiveNoFileComp)
	if err := cmd.RegisterFlagCompletionFunc(c.Flags.Format, completeFormats); err != nil {
		return fmt.Errorf("registering log-format completion: %w", err)
	}

	return nil
}

// NewHandler builds a [Handler] writing to w with the level and format
// parsed flags left in c, e.g. for installation via slog.SetDefault in
// cmd/lucidgen's PersistentPreRunE.
func (c *Config) NewHandler(w io.Writer) (Handler, error) {
	return NewHandlerFromStrings(w, c.Level, c.Format)
}
