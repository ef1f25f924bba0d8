package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/unkn0wn-root/roman"
)

// cmdFmt: integers -> numerals
func (a *app) cmdFmt(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) int {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	lower := fs.Bool("lower", false, "lower-case output")
	if err := fs.Parse(args); err != nil {
		a.log.Error("fmt: bad flags", zap.Error(err))
		return 2
	}
	style := a.style
	if *lower {
		style = roman.Lower
	}

	ops, err := operands(fs.Args(), stdin)
	if err != nil {
		a.log.Error("fmt", zap.Error(err))
		return 1
	}
	code := 0
	for _, op := range ops {
		n, err := parseIntArg(op)
		if err == nil {
			var num roman.Numeral
			if num, err = roman.NewChecked(n); err == nil {
				var s string
				if s, err = a.conv.Format(ctx, num, style); err == nil {
					fmt.Fprintln(stdout, s)
					continue
				}
			}
		}
		a.log.Error("fmt failed", zap.String("input", op), zap.Error(err))
		code = 1
	}
	return code
}

// cmdParse: numerals -> integers
func (a *app) cmdParse(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) int {
	ops, err := operands(args, stdin)
	if err != nil {
		a.log.Error("parse", zap.Error(err))
		return 1
	}
	code := 0
	for _, op := range ops {
		n, err := a.conv.Parse(ctx, op)
		if err != nil {
			a.log.Error("parse failed", zap.String("input", op), zap.Error(err))
			code = 1
			continue
		}
		fmt.Fprintln(stdout, n.Value())
	}
	return code
}

// cmdCheck reports every operand as ok or with the reason it was rejected.
func (a *app) cmdCheck(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) int {
	ops, err := operands(args, stdin)
	if err != nil {
		a.log.Error("check", zap.Error(err))
		return 1
	}
	values, errs := a.conv.ParseMany(ctx, ops)
	for _, op := range ops {
		if n, ok := values[op]; ok {
			fmt.Fprintf(stdout, "ok\t%s\t%d\n", op, n.Value())
			continue
		}
		fmt.Fprintf(stdout, "%s\t%s\t%v\n", reason(errs[op]), op, errs[op])
	}
	if len(errs) > 0 {
		return 1
	}
	return 0
}

func reason(err error) string {
	switch {
	case errors.Is(err, roman.ErrInvalidDigit):
		return "invalid"
	case errors.Is(err, roman.ErrOutOfRange):
		return "range"
	case errors.Is(err, roman.ErrOverflow):
		return "overflow"
	default:
		return "error"
	}
}

// cmdTable prints FROM..=TO with their numerals.
func (a *app) cmdTable(ctx context.Context, args []string, stdout io.Writer) int {
	if len(args) != 2 {
		a.log.Error("table: want FROM TO", zap.Strings("args", args))
		return 2
	}
	from, err := parseIntArg(args[0])
	if err != nil {
		a.log.Error("table", zap.Error(err))
		return 2
	}
	to, err := parseIntArg(args[1])
	if err != nil {
		a.log.Error("table", zap.Error(err))
		return 2
	}
	lo, err := roman.NewChecked(from)
	if err != nil {
		a.log.Error("table", zap.Error(err))
		return 1
	}
	hi, err := roman.NewChecked(to)
	if err != nil {
		a.log.Error("table", zap.Error(err))
		return 1
	}
	if roman.Compare(lo, hi) > 0 {
		lo, hi = hi, lo
	}
	for v := lo.Value(); v <= hi.Value(); v++ {
		s, err := a.conv.Format(ctx, roman.MustNew(v), a.style)
		if err != nil {
			a.log.Error("table", zap.Int("value", v), zap.Error(err))
			return 1
		}
		fmt.Fprintf(stdout, "%d\t%s\n", v, s)
	}
	return 0
}
