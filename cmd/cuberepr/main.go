// Command cuberepr renders cube descriptions as HTML tables and other
// formats.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bjaus/cuberepr"
	"github.com/bjaus/cuberepr/cube"
	"github.com/bjaus/cuberepr/cube/stock"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	format  string
	output  string
	stock   string
	verbose bool
}

type app struct {
	opts   options
	logger *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	opts := &a.opts

	cmd := &cobra.Command{
		Use:   "cuberepr [file...]",
		Short: "Render cube summaries as HTML tables",
		Long: `cuberepr reads YAML cube descriptions and renders each cube's summary
as an HTML table, Markdown table, JSON or YAML document, or plain text.

With no files (or "-") the description is read from standard input.
Use --stock to render one of the built-in cubes instead.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.InOrStdin(), cmd.OutOrStdout(), opts, args, a.logger)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.Flags().StringVarP(&opts.format, "format", "f", cuberepr.HTML.String(),
		fmt.Sprintf("output format (%s)", joinFormats()))
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to file instead of stdout")
	cmd.Flags().StringVar(&opts.stock, "stock", "",
		fmt.Sprintf("render a stock cube (%s)", strings.Join(stock.Names(), ", ")))

	cmd.AddCommand(newDescribeCmd(a))
	return cmd
}

// newDescribeCmd prints the YAML description of a stock cube, a starting
// point for writing descriptions by hand.
func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "describe <stock-name>",
		Short:     "Print the YAML description of a stock cube",
		Args:      cobra.ExactArgs(1),
		ValidArgs: stock.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := stock.ByName(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("describing stock cube", zap.String("name", args[0]))
			return cube.Encode(cmd.OutOrStdout(), c)
		},
	}
}

func run(stdin io.Reader, stdout io.Writer, opts *options, args []string, logger *zap.Logger) (err error) {
	f, err := cuberepr.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	cubes, err := loadCubes(stdin, opts.stock, args, logger)
	if err != nil {
		return err
	}

	w := stdout
	if opts.output != "" {
		file, cerr := os.Create(opts.output)
		if cerr != nil {
			return fmt.Errorf("create output: %w", cerr)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		w = file
	}

	for _, c := range cubes {
		logger.Debug("rendering cube",
			zap.String("name", c.Name()),
			zap.Ints("shape", c.Shape()),
			zap.Stringer("format", f),
		)
		if err := cuberepr.Write(w, f, c); err != nil {
			return fmt.Errorf("render %s: %w", c.Name(), err)
		}
	}
	logger.Info("rendered cubes", zap.Int("count", len(cubes)), zap.Stringer("format", f))
	return nil
}

func loadCubes(stdin io.Reader, stockName string, paths []string, logger *zap.Logger) ([]*cube.Cube, error) {
	if stockName != "" {
		if len(paths) > 0 {
			return nil, errors.New("--stock cannot be combined with files")
		}
		c, err := stock.ByName(stockName)
		if err != nil {
			return nil, err
		}
		return []*cube.Cube{c}, nil
	}

	if len(paths) == 0 {
		paths = []string{"-"}
	}
	cubes := make([]*cube.Cube, 0, len(paths))
	for _, path := range paths {
		logger.Debug("loading cube description", zap.String("path", path))
		c, err := loadCube(stdin, path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		cubes = append(cubes, c)
	}
	return cubes, nil
}

func loadCube(stdin io.Reader, path string) (*cube.Cube, error) {
	if path == "-" {
		return cube.Decode(stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return cube.Decode(file)
}

func joinFormats() string {
	names := make([]string, 0, len(cuberepr.Formats()))
	for _, f := range cuberepr.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
