// Command fnkit runs every collection operation and function combinator on
// fixed inputs and logs what they return.
//
// Usage:
//
//	fnkit [--config fnkit.yaml] [--log-level debug|info|warn|error]
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/on-the-ground/fnkit/collection"
	"github.com/on-the-ground/fnkit/config"
	"github.com/on-the-ground/fnkit/purefn"
	"github.com/on-the-ground/fnkit/shared/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "fnkit:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the fnkit command. Errors are returned to the caller
// rather than printed by cobra.
func newRootCmd() *cobra.Command {
	var configPath, logLevel string
	rootCmd := &cobra.Command{
		Use:           "fnkit",
		Short:         "Run every collection operation and combinator on fixed inputs",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			return run(configPath, log.LogLevel(logLevel))
		},
	}
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "overrides "+config.ConfigLogLevel)
	return rootCmd
}

func run(configPath string, logLevel log.LogLevel) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}

	logger, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer func() {
		// stdout can't be synced on some platforms; nothing to report then.
		_ = logger.Sync()
	}()

	runCollections(logger)
	runCombinators(cfg, logger)
	return nil
}

func runCollections(logger *zap.Logger) {
	ints := []int{1, 2, 3, 4, 5}
	isEven := func(i int) bool { return i%2 == 0 }
	sum := func(acc, i int) int { return acc + i }

	logger.Info("map", zap.Ints("in", ints), zap.Ints("out", collection.Map(ints, func(i int) int { return i * 2 })))
	logger.Info("filter", zap.Ints("in", ints), zap.Ints("out", collection.Filter(ints, isEven)))
	logger.Info("fold", zap.Ints("in", ints), zap.Int("out", collection.Fold(ints, 0, sum)))

	even, odd := collection.Partition(ints, isEven)
	logger.Info("partition", zap.Ints("matching", even), zap.Ints("nonMatching", odd))

	logger.Info("all", zap.Bool("positive", collection.All(ints, func(i int) bool { return i > 0 })))
	logger.Info("any", zap.Bool("even", collection.Any(ints, isEven)))

	product, err := collection.Reduce([]int{2, 3, 4}, func(acc, i int) int { return acc * i })
	logger.Info("reduce", zap.Int("out", product), zap.Error(err))

	if _, err := collection.Reduce([]int{}, sum); errors.Is(err, collection.ErrEmptyCollection) {
		logger.Warn("reduce on empty input", zap.Error(err))
	}
}

func runCombinators(cfg config.Config, logger *zap.Logger) {
	greetOnce := purefn.Once(func(name string) string { return "Hola, " + name + "!" })
	first, ok := greetOnce("Ana")
	logger.Info("once", zap.String("out", first), zap.Bool("fired", ok))
	_, ok = greetOnce("Luis")
	logger.Info("once", zap.Bool("fired", ok))

	computations := 0
	square := purefn.MemoizeWith(func(x int) int {
		computations++
		return x * x
	}, cfg.PureTableConfig("square", logger))
	for _, x := range []int{4, 4, 5, 4} {
		logger.Info("memoize", zap.Int("in", x), zap.Int("out", square(x)))
	}
	logger.Info("memoize", zap.Int("computations", computations))

	multiplyByTwo := purefn.Curry(func(x, y int) int { return x * y })(2)
	logger.Info("curry", zap.Int("out", multiplyByTwo(5)))

	double := func(x int) int { return x * 2 }
	doubleThenSquare := purefn.AndThen(double, func(x int) int { return x * x })
	logger.Info("andThen", zap.Int("out", doubleThenSquare(3)))
}
