// intcode - runs IntCode programs and solves the IntCode puzzles
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"intcode"
	"intcode/config"
	log "intcode/log"
	"intcode/solver"
)

var (
	configPath   string
	logLevel     string
	debugModules string
	cfg          config.Config
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var rootCmd = &cobra.Command{
		Use:           "intcode",
		Short:         "IntCode virtual machine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if cmd.Flags().Changed("debug-modules") {
				cfg.Log.Modules = debugModules
			}
			if err := log.InitLogger(cfg.Log.Level); err != nil {
				return err
			}
			log.EnableModules(cfg.Log.Modules)
			return nil
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to intcode.toml")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&debugModules, "debug-modules", "", "Comma separated modules to debug log (vm_mod, search_mod, solver_mod)")

	rootCmd.AddCommand(newSolveCmd(), newRunCmd(), newSearchCmd(), newDisasmCmd())
	return rootCmd
}

func newSolveCmd() *cobra.Command {
	var (
		day   int
		input string
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print both answers of a puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(input)
			if err != nil {
				return err
			}
			defer f.Close()
			lines, err := solver.ReadLines(f)
			if err != nil {
				return fmt.Errorf("read %s: %w", input, err)
			}
			s, err := solver.New(day, lines, cfg)
			if err != nil {
				return err
			}
			first, err := s.FirstResult()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), first)
			second, err := s.SecondResult()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), second)
			return nil
		},
	}
	cmd.Flags().IntVarP(&day, "day", "d", 0, "Puzzle day")
	cmd.Flags().StringVarP(&input, "input", "i", "", "Puzzle input file")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func newRunCmd() *cobra.Command {
	var (
		edits []string
		trace bool
	)
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Run a program to completion and print address 0",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, err := loadProgram(args[0])
			if err != nil {
				return err
			}
			patch, err := intcode.ParsePatch(edits)
			if err != nil {
				return err
			}
			if err := mem.Patch(patch); err != nil {
				return err
			}
			vm := intcode.New(mem)
			if trace {
				lvl, _ := log.ParseLevel(cfg.Log.Level)
				log.SetDefault(slog.New(log.NewTerminalHandler(cmd.ErrOrStderr(), min(lvl, log.LevelDebug))))
				log.EnableModule(log.VMModule)
				vm.WithTrace(func(pc int, op intcode.Operation) {
					log.Debug(log.VMModule, "step", "pc", pc, "op", op.String())
				})
			}
			if err := vm.Run(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), vm.Result())
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&edits, "patch", "p", nil, "Patch addr=value before running (repeatable)")
	cmd.Flags().BoolVar(&trace, "trace", false, "Log every executed operation (raises the log level to debug)")
	return cmd
}

func newSearchCmd() *cobra.Command {
	var (
		target  int32
		workers int
		limit   int32
	)
	cmd := &cobra.Command{
		Use:   "search FILE",
		Short: "Find the noun and verb producing target and print 100*noun+verb",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, err := loadProgram(args[0])
			if err != nil {
				return err
			}
			s := &intcode.Searcher{
				Base:    mem,
				Target:  cfg.Gravity.Target,
				Limit:   cfg.Search.Limit,
				Workers: cfg.Search.Workers,
			}
			if cmd.Flags().Changed("target") {
				s.Target = target
			}
			if cmd.Flags().Changed("workers") {
				s.Workers = workers
			}
			if cmd.Flags().Changed("limit") {
				s.Limit = limit
			}
			m, err := s.Search(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m.Answer())
			return nil
		},
	}
	cmd.Flags().Int32Var(&target, "target", 0, "Value wanted at address 0 (default from config)")
	cmd.Flags().IntVar(&workers, "workers", 1, "Parallel search workers")
	cmd.Flags().Int32Var(&limit, "limit", intcode.DefaultLimit, "Exclusive upper bound for noun and verb")
	return cmd
}

func newDisasmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disasm FILE",
		Short: "Print a listing of a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mem, err := loadProgram(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), intcode.Disassemble(mem))
			return nil
		},
	}
}

func loadProgram(path string) (intcode.Memory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	line, _, _ := strings.Cut(string(data), "\n")
	mem, err := intcode.Parse(strings.TrimSpace(line))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mem, nil
}
