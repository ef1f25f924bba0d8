// roman - Roman numeral CLI
//
// Usage:
//
//	roman [-config file] fmt [-lower] [N...]   Format integers as numerals
//	roman [-config file] parse [TEXT...]       Parse numerals to integers
//	roman [-config file] check [TEXT...]       Validate numerals; exit 1 on any failure
//	roman [-config file] table FROM TO         Print value/numeral pairs for a range
//	roman version                              Print version info
//
// If no operands are given, whitespace-separated operands are read from stdin.
// Settings come from the -config YAML file (or ROMAN_CONFIG), overridden by
// ROMAN_* environment variables.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/unkn0wn-root/roman"
	"github.com/unkn0wn-root/roman/internal/config"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("roman", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }
	cfgPath := fs.String("config", os.Getenv("ROMAN_CONFIG"), "YAML config file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		printUsage(stderr)
		return 2
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "version", "-v", "--version":
		fmt.Fprintf(stdout, "roman %s (max %d)\n", version, roman.Max)
		return 0
	case "help", "-h", "--help":
		printUsage(stdout)
		return 0
	case "fmt", "parse", "check", "table":
	default:
		fmt.Fprintf(stderr, "roman: unknown command: %s\n", cmd)
		printUsage(stderr)
		return 2
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(stderr, "roman: %v\n", err)
		return 1
	}
	a, err := newApp(cfg, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "roman: %v\n", err)
		return 1
	}
	defer a.close()

	ctx := context.Background()
	switch cmd {
	case "fmt":
		return a.cmdFmt(ctx, rest, stdin, stdout)
	case "parse":
		return a.cmdParse(ctx, rest, stdin, stdout)
	case "check":
		return a.cmdCheck(ctx, rest, stdin, stdout)
	default:
		return a.cmdTable(ctx, rest, stdout)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `roman - Roman numeral converter

Usage:
  roman [-config file] fmt [-lower] [N...]   Format integers as numerals
  roman [-config file] parse [TEXT...]       Parse numerals to integers
  roman [-config file] check [TEXT...]       Validate numerals; exit 1 on any failure
  roman [-config file] table FROM TO         Print value/numeral pairs for a range
  roman version                              Print version info

If no operands are given, reads them from stdin.

Examples:
  roman fmt 1984
  # Output: MCMLXXXIV

  echo "mmcmxcix iiii" | roman parse
  # Output:
  # 2999
  # 4

  ROMAN_CACHE_PROVIDER=bigcache roman table 1 10
`)
}

// operands returns args, or the whitespace-separated words of r when args is
// empty.
func operands(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var out []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return out, nil
}

func parseIntArg(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not an integer: %q", s)
	}
	return n, nil
}
