package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/alenalex/mcutil/internal/location"
	"github.com/alenalex/mcutil/internal/scripting"
)

func newLocationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "location",
		Short: "Encode, decode and scan location strings",
	}
	cmd.AddCommand(newLocationEncodeCmd())
	cmd.AddCommand(newLocationDecodeCmd())
	cmd.AddCommand(newLocationScanCmd())
	return cmd
}

func newLocationEncodeCmd() *cobra.Command {
	var block bool
	cmd := &cobra.Command{
		Use:   "encode <world> <x> <y> <z> [yaw pitch]",
		Short: "Encode a position as world/x/y/z/yaw/pitch",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 4 && len(args) != 6 {
				return fmt.Errorf("accepts 4 or 6 args, received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parsePosition(args)
			if err != nil {
				return err
			}
			if block {
				fmt.Fprintln(cmd.OutOrStdout(), location.EncodeBlock(p))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), location.Encode(p))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&block, "block", false, "omit yaw and pitch")
	return cmd
}

func newLocationDecodeCmd() *cobra.Command {
	var exact bool
	cmd := &cobra.Command{
		Use:   "decode <location>",
		Short: "Decode a location string against the world registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp()
			if err != nil {
				return err
			}
			defer a.close()

			p, err := a.utils.Locations().Decode(args[0], exact)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), describePosition(p))
			return nil
		},
	}
	cmd.Flags().BoolVar(&exact, "exact", false, "also decode yaw and pitch")
	return cmd
}

// filtersFolder holds named filter scripts inside the plugin data directory.
const filtersFolder = "filters"

type scanOptions struct {
	radius      int
	shape       string
	filter      string
	buildHeight bool
}

func newLocationScanCmd() *cobra.Command {
	opts := &scanOptions{}
	cmd := &cobra.Command{
		Use:   "scan <location>",
		Short: "List the blocks around a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args[0], opts)
		},
	}
	cmd.Flags().IntVar(&opts.radius, "radius", 1, "scan radius in blocks")
	cmd.Flags().StringVar(&opts.shape, "shape", "square", "region shape: square or circle")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "Lua expression over world, x, y, z, or @name for filters/<name>.lua")
	cmd.Flags().BoolVar(&opts.buildHeight, "build-height", false, "drop blocks outside the world's build height")
	return cmd
}

func runScan(cmd *cobra.Command, raw string, opts *scanOptions) error {
	a, err := loadApp()
	if err != nil {
		return err
	}
	defer a.close()

	center, err := a.utils.Locations().Decode(raw, false)
	if err != nil {
		return err
	}

	var filters []location.Predicate
	if opts.buildHeight {
		filters = append(filters, a.utils.Locations().InsideBuildHeight())
	}
	if opts.filter != "" {
		f, release, err := resolveFilter(a, opts.filter)
		if err != nil {
			return err
		}
		defer release()
		filters = append(filters, f.Predicate())
	}

	var blocks []location.Position
	switch opts.shape {
	case "square":
		blocks = location.BlocksInSquare(center, opts.radius, filters...)
	case "circle":
		blocks = location.BlocksInCircle(center, opts.radius, filters...)
	default:
		return oops.Code("INVALID_ARGUMENT").Errorf("unknown shape %q, want square or circle", opts.shape)
	}

	for _, b := range blocks {
		fmt.Fprintln(cmd.OutOrStdout(), location.EncodeBlock(b))
	}
	return nil
}

// resolveFilter compiles filter, or loads it from the data directory's filters
// folder when it has the form @name.
func resolveFilter(a *app, filter string) (*scripting.Filter, func(), error) {
	limit := a.cfg.Scripting.InstructionLimit
	name, named := strings.CutPrefix(filter, "@")
	if !named {
		f, err := scripting.CompileFilter(filter, limit, a.logger)
		if err != nil {
			return nil, nil, oops.Code("FILTER_INVALID").With("filter", filter).Wrap(err)
		}
		return f, f.Close, nil
	}

	dir, err := a.utils.Files().EnsureFolder(filtersFolder)
	if err != nil {
		return nil, nil, oops.Code("PROVISION_FAILED").Wrap(err)
	}
	lib := scripting.NewLibrary(limit, a.logger)
	if _, err := lib.LoadDir(dir); err != nil {
		lib.Close()
		return nil, nil, oops.Code("FILTER_INVALID").With("dir", dir).Wrap(err)
	}
	f, ok := lib.Filter(name)
	if !ok {
		lib.Close()
		return nil, nil, oops.Code("FILTER_UNKNOWN").With("dir", dir).Errorf("no filter named %q", name)
	}
	return f, lib.Close, nil
}

func parsePosition(args []string) (location.Position, error) {
	p := location.Position{World: args[0]}
	coords := []*float64{&p.X, &p.Y, &p.Z}
	for i, dst := range coords {
		v, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return location.Position{}, oops.Code("INVALID_ARGUMENT").With("arg", args[i+1]).Wrap(err)
		}
		*dst = v
	}
	if len(args) == 6 {
		for i, dst := range []*float32{&p.Yaw, &p.Pitch} {
			v, err := strconv.ParseFloat(args[i+4], 32)
			if err != nil {
				return location.Position{}, oops.Code("INVALID_ARGUMENT").With("arg", args[i+4]).Wrap(err)
			}
			*dst = float32(v)
		}
	}
	return p, nil
}

func describePosition(p location.Position) string {
	return fmt.Sprintf("world=%s x=%g y=%g z=%g yaw=%g pitch=%g", p.World, p.X, p.Y, p.Z, p.Yaw, p.Pitch)
}
