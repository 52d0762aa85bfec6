// Command htmltrunc cuts an HTML fragment down to a visible-character budget.
//
//	htmltrunc -n 140 --suffix … article.html
//	curl -s https://example.com/post | htmltrunc -n 80 --break-words=false
//
// Settings can come from a YAML, TOML or JSON file given with --config;
// flags override values from the file.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/htmlkit/config"
	"github.com/randalmurphal/htmlkit/visible"
)

type options struct {
	length     int
	breakWords bool
	suffix     string
	configPath string
	fallback   bool
	stats      bool
	watch      bool
	verbose    bool
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "htmltrunc [file]",
		Short:         "htmltrunc - truncate HTML without breaking markup",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), opts.verbose)

			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}

			source, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			if err := render(cmd, opts, cfg, source); err != nil {
				return err
			}
			if !opts.watch {
				return nil
			}
			if opts.configPath == "" {
				return fmt.Errorf("--watch requires --config")
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return watch(ctx, cmd, opts, source)
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.length, "length", "n", config.DefaultLength, "visible characters to keep")
	flags.BoolVar(&opts.breakWords, "break-words", true, "allow cutting inside a word")
	flags.StringVar(&opts.suffix, "suffix", "", "text appended when content was cut")
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (.yaml, .toml or .json)")
	flags.BoolVar(&opts.fallback, "fallback", false, "on malformed markup print the escaped tag-stripped text cut by character")
	flags.BoolVar(&opts.stats, "stats", false, "report visible character counts on stderr")
	flags.BoolVar(&opts.watch, "watch", false, "re-render whenever the config file changes")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newSchemaCmd())
	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for config files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Schema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// resolveConfig loads the config file, if any, then applies explicitly set flags.
func resolveConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}
	return overrideConfig(cmd, opts, cfg)
}

func overrideConfig(cmd *cobra.Command, opts *options, cfg config.Config) (config.Config, error) {
	flags := cmd.Flags()
	if flags.Changed("length") || opts.configPath == "" {
		cfg.Length = opts.length
	}
	if flags.Changed("break-words") {
		breakWords := opts.breakWords
		cfg.BreakWords = &breakWords
	}
	if flags.Changed("suffix") {
		cfg.Suffix = opts.suffix
	}
	if flags.Changed("fallback") {
		cfg.Fallback = opts.fallback
	}
	return cfg, cfg.Validate()
}

func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func render(cmd *cobra.Command, opts *options, cfg config.Config, source string) error {
	res, err := cfg.Apply(source)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), res.HTML); err != nil {
		return err
	}
	if opts.stats {
		fmt.Fprintf(cmd.ErrOrStderr(), "visible: %d of %d, limit %d, truncated: %t\n",
			res.Visible, visible.Count(source), cfg.Length, res.Truncated)
	}
	return nil
}

func watch(ctx context.Context, cmd *cobra.Command, opts *options, source string) error {
	slog.Debug("watching config", slog.String("path", opts.configPath))

	err := config.Watch(ctx, opts.configPath, func(cfg config.Config, err error) {
		if err != nil {
			slog.Warn("config reload failed", slog.Any("error", err))
			return
		}
		cfg, err = overrideConfig(cmd, opts, cfg)
		if err != nil {
			slog.Warn("config reload failed", slog.Any("error", err))
			return
		}
		if err := render(cmd, opts, cfg, source); err != nil {
			slog.Warn("render failed", slog.Any("error", err))
		}
	})
	if ctx.Err() != nil {
		return nil
	}
	return err
}
