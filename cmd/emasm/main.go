package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/emasm/asm"
	"github.com/wippyai/emasm/easm"
)

func main() {
	var (
		format      = flag.String("format", "hex", "Output format: hex or bin")
		valuesPath  = flag.String("values", "", "TOML file with placeholder values")
		labels      = flag.Bool("labels", false, "Print resolved label and data offsets instead of bytecode")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		asm.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(flag.Arg(0)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: emasm [flags] <file.easm>")
		fmt.Fprintln(os.Stderr, "       emasm [flags] -  (read source from stdin)")
		fmt.Fprintln(os.Stderr, "       emasm -i [file.easm]  (interactive mode)")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *format, *valuesPath, *labels); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(input, format, valuesPath string, printLabels bool) error {
	source, err := readSource(input)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	elements, err := easm.Parse(string(source))
	if err != nil {
		return err
	}

	if valuesPath != "" {
		values, err := loadValues(valuesPath)
		if err != nil {
			return fmt.Errorf("load values: %w", err)
		}
		elements, err = asm.SubstituteValues(elements, values)
		if err != nil {
			return err
		}
	}

	if printLabels {
		layout, err := asm.Resolve(elements)
		if err != nil {
			return err
		}
		printLayout(os.Stdout, layout)
		return nil
	}

	code, err := asm.Assemble(elements)
	if err != nil {
		return err
	}

	switch format {
	case "hex":
		fmt.Printf("%x\n", code)
	case "bin":
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("refusing to write raw bytecode to a terminal; redirect stdout or use -format hex")
		}
		if _, err := os.Stdout.Write(code); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q (want hex or bin)", format)
	}
	return nil
}

func readSource(input string) ([]byte, error) {
	if input == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(input)
}

// printLayout writes the resolved offsets as a two-column table, labels
// first, then raw data sections, each sorted by offset.
func printLayout(w io.Writer, layout *asm.Layout) {
	type row struct {
		name   string
		offset int
		size   int
		data   bool
	}

	var rows []row
	for name, info := range layout.Labels {
		rows = append(rows, row{name: name, offset: info.Offset})
	}
	for name, info := range layout.Data {
		rows = append(rows, row{name: name, offset: info.Offset, size: info.Size, data: true})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].data != rows[j].data {
			return !rows[i].data
		}
		return rows[i].offset < rows[j].offset
	})

	for _, r := range rows {
		if r.data {
			fmt.Fprintf(w, "data  0x%04x  %-20s %d bytes\n", r.offset, r.name, r.size)
		} else {
			fmt.Fprintf(w, "label 0x%04x  %s\n", r.offset, r.name)
		}
	}
}
