package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/shaiso/Fabrica/internal/cache"
)

// NewCacheCmd создаёт группу команд для просмотра кэша артефактов.
func NewCacheCmd(cacheFn func() (*cache.Cache, error), outputFn func() *Output) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect the artifact cache",
	}

	cmd.AddCommand(
		newCacheListCmd(cacheFn, outputFn),
		newCacheVersionsCmd(cacheFn, outputFn),
	)

	return cmd
}

func newCacheListCmd(cacheFn func() (*cache.Cache, error), outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all cached packages",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cacheFn()
			if err != nil {
				return err
			}
			out := outputFn()

			entries, err := c.List()
			if err != nil {
				return err
			}

			headers := []string{"NAME", "VERSION", "ARTIFACTS"}
			rows := make([][]string, len(entries))
			for i, e := range entries {
				rows[i] = []string{e.Name, e.Version.String(), strings.Join(e.Artifacts, ",")}
			}

			out.Print(headers, rows, entries)
			return nil
		},
	}
}

func newCacheVersionsCmd(cacheFn func() (*cache.Cache, error), outputFn func() *Output) *cobra.Command {
	return &cobra.Command{
		Use:   "versions NAME",
		Short: "List cached versions of a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := cacheFn()
			if err != nil {
				return err
			}
			out := outputFn()

			versions, err := c.Versions(args[0])
			if err != nil {
				return err
			}

			headers := []string{"VERSION"}
			rows := make([][]string, len(versions))
			for i, v := range versions {
				rows[i] = []string{v.String()}
			}

			out.Print(headers, rows, versions)
			return nil
		},
	}
}
