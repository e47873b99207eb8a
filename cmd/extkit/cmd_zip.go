package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbukum/extkit/errors"
	"github.com/kbukum/extkit/logger"
	"github.com/kbukum/extkit/observability"
	"github.com/kbukum/extkit/pipeline"
	"github.com/kbukum/extkit/validation"
)

type zipOptions struct {
	policy    string
	sep       string
	index     bool
	skipBlank bool
	group     int
}

func (a *app) zipCmd() *cobra.Command {
	var opts zipOptions
	cmd := &cobra.Command{
		Use:   "zip FILE...",
		Short: "Join the lines of several files side by side",
		Long: `Zip reads every FILE line by line and prints one output line per
position, joining the lines with the separator (like paste).

Policies decide what happens when the files have different lengths:
  truncate  stop at the end of the shortest file
  pad       continue to the end of the longest file, printing the
            padding marker for files that already ended
  fail      require equal lengths and fail at the first position
            where they differ

A FILE of "-" reads standard input. --index numbers the positions of the
zip, so with --skip-blank the numbers keep counting the dropped ones.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.do(cmd, func(ctx context.Context) error {
				return a.runZip(ctx, cmd, opts, args)
			})
		},
	}
	cmd.Flags().StringVarP(&opts.policy, "policy", "p", "", "truncate, pad or fail (default: zip.policy)")
	cmd.Flags().StringVarP(&opts.sep, "sep", "d", "", `output separator, \t and \n are unescaped (default: zip.separator)`)
	cmd.Flags().BoolVarP(&opts.index, "index", "n", false, "prefix each output line with its zero-based position")
	cmd.Flags().BoolVarP(&opts.skipBlank, "skip-blank", "s", false, "drop positions where every line is empty or padded")
	cmd.Flags().IntVarP(&opts.group, "group", "g", 0, "print a blank line after every N output lines")
	return cmd
}

func (a *app) runZip(ctx context.Context, cmd *cobra.Command, opts zipOptions, files []string) error {
	if err := validation.NonNegative("group", opts.group); err != nil {
		return err
	}
	name := a.cfg.Zip.Policy
	if opts.policy != "" {
		name = opts.policy
	}
	policy, err := pipeline.ParsePolicy(name)
	if err != nil {
		return err
	}
	f := rowFormat{sep: a.cfg.Zip.Separator, pad: a.cfg.Zip.PaddingMarker, index: opts.index}
	if cmd.Flags().Changed("sep") {
		f.sep = unescape(opts.sep)
	}

	observability.SetSpanAttribute(ctx, observability.AttrPolicy, policy)
	observability.SetSpanAttribute(ctx, observability.AttrInputs, len(files))

	inputs := make([]*pipeline.Pipeline[line], len(files))
	for k, path := range files {
		inputs[k] = lines(path, cmd.InOrStdin())
	}
	zipped, err := pipeline.ZipWith(policy, func(vals []line, _ int) []line { return vals }, inputs...)
	if err != nil {
		return err
	}

	padded := make([]int, len(files))
	rows := pipeline.TapEach(zipped, padCounters(padded)...)
	if opts.skipBlank {
		rows = pipeline.Filter(rows, hasText)
	}
	text := pipeline.Map(observability.Observe(rows, a.metrics(), "zip"), func(_ context.Context, vals []line) (string, error) {
		return f.format(vals), nil
	})
	if opts.group > 0 {
		if text, err = groupLines(text, opts.group); err != nil {
			return err
		}
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	written := pipeline.Reduce(pipeline.Tap(text, func(_ context.Context, s string) error {
		_, err := fmt.Fprintln(out, s)
		return err
	}), 0, func(n int, _ string) int { return n + 1 })
	counts, runErr := pipeline.Collect(ctx, written)
	if err := out.Flush(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		return runErr
	}

	observability.SetSpanAttribute(ctx, observability.AttrElements, counts[0])
	logger.Get("cli").WithContext(ctx).Info("zip finished", logger.Fields(
		logger.FieldPolicy, policy.String(),
		logger.FieldInputs, len(files),
		logger.FieldElements, counts[0],
		logger.FieldPadded, padded,
	))
	return nil
}

type rowFormat struct {
	sep   string
	pad   string
	index bool
}

func (f rowFormat) format(vals []line) string {
	var b strings.Builder
	if f.index {
		b.WriteString(strconv.Itoa(position(vals)))
		b.WriteString(f.sep)
	}
	for k, v := range vals {
		if k > 0 {
			b.WriteString(f.sep)
		}
		if v.ok {
			b.WriteString(v.text)
		} else {
			b.WriteString(f.pad)
		}
	}
	return b.String()
}

// padCounters returns one observer per input that counts its padded slots
// into padded[k].
func padCounters(padded []int) []func(context.Context, line) error {
	fns := make([]func(context.Context, line) error, len(padded))
	for k := range padded {
		fns[k] = func(_ context.Context, l line) error {
			if !l.ok {
				padded[k]++
			}
			return nil
		}
	}
	return fns
}

func hasText(vals []line) bool {
	for _, v := range vals {
		if v.text != "" {
			return true
		}
	}
	return false
}

// position is the zip position of a row. Inputs advance in lockstep, so
// it is the line number of any slot that is not padded.
func position(vals []line) int {
	for _, v := range vals {
		if v.ok {
			return v.no
		}
	}
	return 0
}

// groupLines streams text in groups of size lines, each followed by a
// blank line.
func groupLines(text *pipeline.Pipeline[string], size int) (*pipeline.Pipeline[string], error) {
	groups, err := pipeline.ChunkStream(text, size)
	if err != nil {
		return nil, err
	}
	return pipeline.FlatMap(groups, func(ctx context.Context, g pipeline.Iterator[string]) (pipeline.Iterator[string], error) {
		return pipeline.Append(pipeline.From(g), "").Iter(ctx), nil
	}), nil
}

// line is one input line and its zero-based number. A padded slot is the
// zero line, which is how the zip output tells "file ended" apart from an
// empty line.
type line struct {
	text string
	no   int
	ok   bool
}

// lines streams the lines of path. The file is opened on the first pull
// of every session and closed with the session.
func lines(path string, stdin io.Reader) *pipeline.Pipeline[line] {
	return pipeline.FromFunc(func(_ context.Context) pipeline.Iterator[line] {
		return &lineIter{path: path, stdin: stdin}
	})
}

type lineIter struct {
	path    string
	stdin   io.Reader
	file    *os.File
	scanner *bufio.Scanner
	no      int
}

// maxLineSize is the longest input line zip accepts.
const maxLineSize = 16 << 20

func (it *lineIter) open() error {
	if it.path == "-" {
		it.scanner = newLineScanner(it.stdin)
		return nil
	}
	f, err := os.Open(it.path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFound("file", it.path).WithCause(err)
		}
		return errors.Internal(err).WithDetail("file", it.path)
	}
	it.file = f
	it.scanner = newLineScanner(f)
	return nil
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return s
}

func (it *lineIter) Next(_ context.Context) (line, bool, error) {
	if it.scanner == nil {
		if err := it.open(); err != nil {
			return line{}, false, err
		}
	}
	if it.scanner.Scan() {
		l := line{text: it.scanner.Text(), no: it.no, ok: true}
		it.no++
		return l, true, nil
	}
	if err := it.scanner.Err(); err != nil {
		return line{}, false, errors.Internal(err).WithDetail("file", it.path)
	}
	return line{}, false, nil
}

func (it *lineIter) Close() error {
	if it.file == nil {
		return nil
	}
	f := it.file
	it.file = nil
	return f.Close()
}

var escapes = strings.NewReplacer(`\t`, "\t", `\n`, "\n", `\\`, `\`)

func unescape(s string) string {
	return escapes.Replace(s)
}
