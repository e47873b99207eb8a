package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/extkit/errors"
	"github.com/kbukum/extkit/numeric"
	"github.com/kbukum/extkit/observability"
	"github.com/kbukum/extkit/strutil"
	"github.com/kbukum/extkit/validation"
)

var truncateModes = []string{"left", "right", "center", "outside"}

type truncateOptions struct {
	mode        string
	width       int
	marker      string
	interpolate bool
}

func (a *app) truncateCmd() *cobra.Command {
	var opts truncateOptions
	cmd := &cobra.Command{
		Use:   "truncate TEXT...",
		Short: "Shorten text to a width in runes",
		Long: `Truncate keeps at most --width runes of TEXT.

Modes:
  left     keep the start
  right    keep the end
  center   keep the middle
  outside  keep the start and the end, dropping the middle

The marker (default: text.ellipsis) is counted in the width. Pass
--marker "" to cut without one. A negative width switches to the
complementary mode. With --interpolate, {#GUID:D} and {#DATE:2006-01-02}
tokens are expanded first.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.do(cmd, func(ctx context.Context) error {
				return a.runTruncate(ctx, cmd, opts, strings.Join(args, " "))
			})
		},
	}
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "left", "left, right, center or outside")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 0, "maximum width in runes (default: text.width)")
	cmd.Flags().StringVar(&opts.marker, "marker", "", "truncation marker (default: text.ellipsis)")
	cmd.Flags().BoolVarP(&opts.interpolate, "interpolate", "i", false, "expand {#TAG:format} tokens before truncating")
	return cmd
}

func (a *app) runTruncate(ctx context.Context, cmd *cobra.Command, opts truncateOptions, text string) error {
	if err := validation.New().
		OneOf("mode", opts.mode, truncateModes).
		Validate(); err != nil {
		return err
	}
	width := a.cfg.Text.Width
	if cmd.Flags().Changed("width") {
		width = opts.width
	}
	marker := a.cfg.Text.Ellipsis
	if cmd.Flags().Changed("marker") {
		marker = opts.marker
	}
	if opts.interpolate {
		text = strutil.Interpolate(text, strutil.DefaultEvaluator(a.clock.Now))
	}

	observability.SetSpanAttribute(ctx, "truncate.mode", opts.mode)
	observability.SetSpanAttribute(ctx, "truncate.width", width)

	_, err := fmt.Fprintln(cmd.OutOrStdout(), truncate(opts.mode, text, width, marker))
	return err
}

func truncate(mode, s string, width int, marker string) string {
	if marker == "" {
		switch mode {
		case "right":
			return strutil.FromRight(s, width)
		case "center":
			return strutil.FromCenter(s, width)
		case "outside":
			return strutil.FromOutside(s, width)
		default:
			return strutil.FromLeft(s, width)
		}
	}
	switch mode {
	case "right":
		return strutil.FromRightWith(s, width, marker)
	case "center":
		return strutil.FromCenterWith(s, width, marker)
	case "outside":
		return strutil.FromOutsideWith(s, width, marker)
	default:
		return strutil.FromLeftWith(s, width, marker)
	}
}

type wordsOptions struct {
	ordinal bool
	suffix  bool
}

func (a *app) wordsCmd() *cobra.Command {
	var opts wordsOptions
	cmd := &cobra.Command{
		Use:   "words N",
		Short: "Spell an integer in English words",
		Example: `  extkit words 2345          Two Thousand Three Hundred and Forty-Five
  extkit words --ordinal 21  Twenty-First
  extkit words --suffix 112  112th`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.do(cmd, func(ctx context.Context) error {
				return runWords(cmd, opts, args[0])
			})
		},
	}
	cmd.Flags().BoolVarP(&opts.ordinal, "ordinal", "o", false, "spell the ordinal (Twenty-First)")
	cmd.Flags().BoolVarP(&opts.suffix, "suffix", "s", false, "print digits with an ordinal suffix (21st)")
	cmd.MarkFlagsMutuallyExclusive("ordinal", "suffix")
	return cmd
}

func runWords(cmd *cobra.Command, opts wordsOptions, arg string) error {
	n, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return errors.InvalidFormat("N", "a 64-bit integer").WithCause(err)
	}

	var text string
	switch {
	case opts.ordinal:
		text = numeric.ToOrdinalText(n)
	case opts.suffix:
		text = numeric.ToOrdinal(n)
	default:
		text = numeric.ToText(n)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
	return err
}
