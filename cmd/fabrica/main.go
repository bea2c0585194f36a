// Fabrica — инструмент командной строки для сборки наборов
// взаимозависимых спеков в порядке зависимостей.
//
// Использование:
//
//	fabrica [--cache-dir DIR] [--json] <command> [flags]
//
// Команды:
//
//	build   Сборка спеков в порядке зависимостей
//	graph   Порядок разрешения без сборки
//	cache   Просмотр кэша артефактов
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shaiso/Fabrica/internal/cache"
	"github.com/shaiso/Fabrica/internal/cli"
	"github.com/shaiso/Fabrica/internal/telemetry"
)

// version задаётся через ldflags при сборке.
var version = "dev"

func main() {
	telemetry.SetupLogger()

	var cacheDir string
	var jsonOutput bool

	rootCmd := &cobra.Command{
		Use:           "fabrica",
		Short:         "Fabrica — dependency-ordered build tool",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", ".fabrica/cache", "Artifact cache directory")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	cacheFn := func() (*cache.Cache, error) { return cache.New(cacheDir) }
	outputFn := func() *cli.Output { return cli.NewOutput(jsonOutput) }

	rootCmd.AddCommand(
		cli.NewBuildCmd(cacheFn, outputFn),
		cli.NewGraphCmd(outputFn),
		cli.NewCacheCmd(cacheFn, outputFn),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
