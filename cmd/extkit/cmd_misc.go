package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/extkit/dates"
	"github.com/kbukum/extkit/errors"
	"github.com/kbukum/extkit/fnvhash"
	"github.com/kbukum/extkit/validation"
	"github.com/kbukum/extkit/version"
)

const dateLayout = "2006-01-02"

type ageOptions struct {
	at      string
	integer bool
}

func (a *app) ageCmd() *cobra.Command {
	var opts ageOptions
	cmd := &cobra.Command{
		Use:   "age BIRTHDATE",
		Short: "Print the age in whole years for a YYYY-MM-DD birth date",
		Long: `Age counts the birthdays between BIRTHDATE and today (or --at).
A 29 February birthday is reached on 1 March in common years.
Future birth dates give 0 unless --integer is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.do(cmd, func(ctx context.Context) error {
				return a.runAge(cmd, opts, args[0])
			})
		},
	}
	cmd.Flags().StringVar(&opts.at, "at", "", "reference date, YYYY-MM-DD (default: today)")
	cmd.Flags().BoolVar(&opts.integer, "integer", false, "allow negative ages for future birth dates")
	return cmd
}

func (a *app) runAge(cmd *cobra.Command, opts ageOptions, arg string) error {
	birth, err := parseDate("BIRTHDATE", arg)
	if err != nil {
		return err
	}
	at := a.clock.Now()
	if opts.at != "" {
		if at, err = parseDate("at", opts.at); err != nil {
			return err
		}
	}

	age := dates.Age(birth, at)
	if opts.integer {
		age = dates.IntegerAge(birth, at)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), age)
	return err
}

func parseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, errors.InvalidFormat(field, "YYYY-MM-DD").WithCause(err)
	}
	return t, nil
}

type hashOptions struct {
	bits  int
	ints  bool
	basis uint64
	hex   bool
}

func (a *app) hashCmd() *cobra.Command {
	var opts hashOptions
	cmd := &cobra.Command{
		Use:   "hash TEXT...",
		Short: "Print the FNV-1a hash of TEXT or of a list of integers",
		Long: `Hash prints the FNV-1a hash of TEXT, folded per UTF-16 code unit.

With --ints every argument is parsed as an integer and the values are
combined in order, starting from --basis (0 selects the FNV offset basis).`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.do(cmd, func(ctx context.Context) error {
				return runHash(cmd, opts, args)
			})
		},
	}
	cmd.Flags().IntVarP(&opts.bits, "bits", "b", 32, "hash width, 32 or 64")
	cmd.Flags().BoolVar(&opts.ints, "ints", false, "combine the arguments as integers")
	cmd.Flags().Uint64Var(&opts.basis, "basis", 0, "starting value for --ints")
	cmd.Flags().BoolVarP(&opts.hex, "hex", "x", false, "print hexadecimal")
	return cmd
}

func runHash(cmd *cobra.Command, opts hashOptions, args []string) error {
	bits := strconv.Itoa(opts.bits)
	if err := validation.New().
		OneOf("bits", bits, []string{"32", "64"}).
		Custom(opts.bits != 32 || opts.basis <= 0xFFFFFFFF, "basis", "must fit in 32 bits").
		Validate(); err != nil {
		return err
	}

	var sum uint64
	if opts.ints {
		values, err := parseInts(args, opts.bits)
		if err != nil {
			return err
		}
		if opts.bits == 32 {
			vs := make([]int32, len(values))
			for k, v := range values {
				vs[k] = int32(v)
			}
			sum = uint64(fnvhash.Combine32(uint32(opts.basis), vs...))
		} else {
			sum = fnvhash.Combine64(opts.basis, values...)
		}
	} else {
		text := strings.Join(args, " ")
		if opts.bits == 32 {
			sum = uint64(fnvhash.String32(text))
		} else {
			sum = fnvhash.String64(text)
		}
	}

	var out string
	switch {
	case opts.hex && opts.bits == 32:
		out = fmt.Sprintf("%08x", sum)
	case opts.hex:
		out = fmt.Sprintf("%016x", sum)
	default:
		out = strconv.FormatUint(sum, 10)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}

func parseInts(args []string, bits int) ([]int64, error) {
	values := make([]int64, len(args))
	for k, arg := range args {
		v, err := strconv.ParseInt(arg, 10, bits)
		if err != nil {
			return nil, errors.InvalidFormat(fmt.Sprintf("args[%d]", k), fmt.Sprintf("a %d-bit integer", bits)).WithCause(err)
		}
		values[k] = v
	}
	return values, nil
}

type versionOptions struct {
	short bool
	deps  bool
	json  bool
}

func (a *app) versionCmd() *cobra.Command {
	var opts versionOptions
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.do(cmd, func(ctx context.Context) error {
				return runVersion(cmd, opts)
			})
		},
	}
	cmd.Flags().BoolVar(&opts.short, "short", false, "print only the version")
	cmd.Flags().BoolVar(&opts.deps, "deps", false, "list linked module dependencies")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print as JSON")
	return cmd
}

func runVersion(cmd *cobra.Command, opts versionOptions) error {
	out := cmd.OutOrStdout()
	if opts.json {
		doc := struct {
			*version.Info
			Dependencies []version.Dependency `json:"dependencies,omitempty"`
		}{Info: version.GetVersionInfo()}
		if opts.deps {
			doc.Dependencies = version.Dependencies()
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	if opts.short {
		fmt.Fprintln(out, version.GetShortVersion())
	} else {
		fmt.Fprintf(out, "extkit %s\n", version.GetFullVersion())
	}
	if opts.deps {
		for _, d := range version.Dependencies() {
			fmt.Fprintf(out, "  %s %s\n", d.Path, d.Version)
		}
	}
	return nil
}
