package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/born-ml/mdspan/view"
)

var (
	configPath string
	verbose    bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "mdspan",
		Short:        "Multidimensional views over flat buffers",
		Version:      version,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newVersionCmd(), newPrintCmd())
	return rootCmd
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mdspan %s\n", version)
		},
	}
}

func newPrintCmd() *cobra.Command {
	var (
		size      int
		shapeFlag string
		separator string
		workers   int
	)

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Fill a buffer with 0..size-1 and print it through a view",
		Long: `Fills a buffer of --size elements with sequential values, binds a span of
--shape over its start and prints every innermost row on its own line.

Examples:
  mdspan print                       # 3x3 over 1000 values
  mdspan print --shape 2,3,4 --size 24
  mdspan print -c demo.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := newLogger(cmd.ErrOrStderr())

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("size") {
				cfg.BufferSize = size
			}
			if flags.Changed("shape") {
				if cfg.Shape, err = parseShape(shapeFlag); err != nil {
					return err
				}
			}
			if flags.Changed("separator") {
				cfg.Separator = separator
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			log.Debug("print", "buffer_size", cfg.BufferSize, "shape", view.Shape(cfg.Shape), "workers", cfg.Workers)

			return runPrint(cmd.OutOrStdout(), cfg, log)
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 1000, "buffer size in elements")
	cmd.Flags().StringVarP(&shapeFlag, "shape", "s", "3,3", "view shape, e.g. 2,3,4")
	cmd.Flags().StringVar(&separator, "separator", ", ", "separator between elements")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "fill workers (0 = one per CPU)")
	return cmd
}

func runPrint(w io.Writer, cfg Config, log *slog.Logger) error {
	if cfg.BufferSize <= 0 {
		return fmt.Errorf("buffer size must be > 0, got %d", cfg.BufferSize)
	}
	buf := make([]int, cfg.BufferSize)

	flat, err := view.NewDynSpan(buf)
	if err != nil {
		return err
	}
	par := view.DefaultParallelConfig()
	if cfg.Workers > 0 {
		par.NumWorkers = cfg.Workers
		par.Enabled = cfg.Workers > 1
	}
	if err := view.Fill(flat, func(idx []int) int { return idx[0] }, par); err != nil {
		return err
	}

	span, err := view.NewSpan(buf, cfg.Shape...)
	if err != nil {
		return err
	}
	// A fixed span never checks its buffer, so do it here rather than panic
	// halfway through the output.
	if err := span.Shape().Fits(len(buf)); err != nil {
		return fmt.Errorf("shape does not fit buffer: %w", err)
	}
	log.Info("printing view", "span", span.String(), "buffer", len(buf))

	return printRows(w, span, cfg.Separator)
}

func printRows(w io.Writer, s view.Span[int], sep string) error {
	if s.Dims() > 1 {
		for _, sub := range s.All() {
			if err := printRows(w, sub, sep); err != nil {
				return err
			}
		}
		return nil
	}

	var sb strings.Builder
	for i, p := range s.Elems() {
		if i > 0 {
			sb.WriteString(sep)
		}
		fmt.Fprint(&sb, *p)
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}
