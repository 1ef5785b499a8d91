package main

import (
	"fmt"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/alenalex/mcutil/internal/enum"
)

func newEnumCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enum",
		Short: "Validate material and sound names",
	}
	cmd.AddCommand(newEnumLookupCmd("material", enum.Materials))
	cmd.AddCommand(newEnumLookupCmd("sound", enum.Sounds))
	return cmd
}

func newEnumLookupCmd[T ~string](kind string, catalog *enum.Catalog[T]) *cobra.Command {
	var (
		list  bool
		match string
	)
	cmd := &cobra.Command{
		Use:   kind + " [name]",
		Short: fmt.Sprintf("Check a %s name, or list every %s", kind, kind),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if match != "" {
				names, err := catalog.Match(match)
				if err != nil {
					return oops.Code("INVALID_ARGUMENT").With("pattern", match).Wrap(err)
				}
				for _, name := range names {
					fmt.Fprintln(out, name)
				}
				return nil
			}
			if list || len(args) == 0 {
				for _, name := range catalog.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}
			v, ok := enum.Lookup(args[0], catalog)
			if !ok {
				return oops.Code("ENUM_UNKNOWN").With("kind", kind).Errorf("unknown %s %q", kind, args[0])
			}
			fmt.Fprintln(out, v)
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list every known name")
	cmd.Flags().StringVar(&match, "match", "", "list names matching a glob pattern, e.g. '*_ORE'")
	return cmd
}
