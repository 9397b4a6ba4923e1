package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"
)

var (
	noColorFlag = cli.BoolFlag{
		Name:  "no-color",
		Usage: "disable colors in error messages",
	}

	debugTokensFlag = cli.BoolFlag{
		Name:  "debug-tokens",
		Usage: "print the token sequence to stderr before generating code",
	}

	exprFlag = cli.StringFlag{
		Name:  "expr, e",
		Usage: "compile `EXPR` instead of reading a file",
	}

	outputFlag = cli.StringFlag{
		Name:  "output, o",
		Usage: "write assembly to `FILE` instead of stdout",
	}
)

var errNoInput = errors.New("expected exactly one input file (or - for stdin), or --expr")

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "rvexpr"
	app.Usage = "compile +/- expressions to RISC-V assembly"
	app.HideVersion = true
	app.Writer = stdout
	app.ErrWriter = stderr

	app.Commands = []cli.Command{
		{
			Name:      "build",
			Aliases:   []string{"b"},
			Usage:     "Emit assembly for an expression",
			ArgsUsage: "[file]",
			Flags:     []cli.Flag{exprFlag, outputFlag, noColorFlag, debugTokensFlag},
			Action: func(c *cli.Context) error {
				return buildAction(c, stdin)
			},
		},
		{
			Name:      "run",
			Aliases:   []string{"r"},
			Usage:     "Compile an expression, replay the assembly and print the result",
			ArgsUsage: "[file]",
			Flags:     []cli.Flag{exprFlag, noColorFlag, debugTokensFlag},
			Action: func(c *cli.Context) error {
				return runAction(c, stdin)
			},
		},
	}

	app.Action = func(c *cli.Context) error {
		return cli.ShowAppHelp(c)
	}

	return app
}

// Reports an error and returns it so the caller can exit.
func fail(c *cli.Context, format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	fmt.Fprintf(c.App.ErrWriter, "%s: %s\n", c.App.Name, err)
	return err
}

// Returns the program text and a name to use in diagnostics.
func readInput(c *cli.Context, stdin io.Reader) (string, string, error) {
	if c.IsSet("expr") {
		if c.NArg() != 0 {
			return "", "", errNoInput
		}
		return "<expr>", c.String("expr"), nil
	}

	if c.NArg() != 1 {
		return "", "", errNoInput
	}

	var buf []byte
	var err error
	name := c.Args().First()
	if name == "-" {
		name = "<stdin>"
		buf, err = io.ReadAll(stdin)
	} else {
		buf, err = os.ReadFile(name)
	}
	if err != nil {
		return "", "", err
	}

	// Drop the newline editors put at the end of a file.
	input := string(buf)
	if trimmed, ok := strings.CutSuffix(input, "\n"); ok {
		input = strings.TrimSuffix(trimmed, "\r")
	}
	return name, input, nil
}

// Compile input into out, reporting diagnostics on failure.
func compileInput(c *cli.Context, name, input string, out io.Writer) error {
	toks, err := compile(out, input)
	if c.Bool("debug-tokens") {
		for _, tok := range toks {
			fmt.Fprintln(c.App.ErrWriter, tok)
		}
	}
	if err != nil {
		report(c.App.ErrWriter, name, input, err, !c.Bool("no-color"))
		return err
	}
	return nil
}

func buildAction(c *cli.Context, stdin io.Reader) error {
	name, input, err := readInput(c, stdin)
	if err != nil {
		return fail(c, "%w", err)
	}

	var out bytes.Buffer
	if err := compileInput(c, name, input, &out); err != nil {
		return err
	}

	if path := c.String("output"); path != "" && path != "-" {
		if err := os.WriteFile(path, out.Bytes(), 0644); err != nil {
			return fail(c, "%w", err)
		}
		return nil
	}

	_, err = out.WriteTo(c.App.Writer)
	return err
}

func runAction(c *cli.Context, stdin io.Reader) error {
	name, input, err := readInput(c, stdin)
	if err != nil {
		return fail(c, "%w", err)
	}

	var out bytes.Buffer
	if err := compileInput(c, name, input, &out); err != nil {
		return err
	}

	val, err := simulate(out.String())
	if err != nil {
		return fail(c, "replay: %w", err)
	}
	fmt.Fprintln(c.App.Writer, val)
	return nil
}

func main() {
	app := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
