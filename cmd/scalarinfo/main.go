// Scalarinfo prints the canonical scalar types, their widths and the constraints they satisfy
// for the current build.
//
// Usage:
//
//	scalarinfo [-f types.list] [-json] [name ...]
//
// Without names or -f, every canonical type is printed.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/gostdlib/base/context"
	"github.com/jedib0t/go-pretty/v6/table"
	perrors "github.com/pkg/errors"

	"github.com/bearlytools/scalar"
	"github.com/bearlytools/scalar/errors"
	"github.com/bearlytools/scalar/internal/conversions"
	"github.com/bearlytools/scalar/internal/typelist"
)

type row struct {
	Name         string   `json:"name"`
	GoType       string   `json:"goType"`
	Bytes        int      `json:"bytes"`
	Capabilities []string `json:"capabilities"`
}

type report struct {
	DoublePrecision bool   `json:"doublePrecision"`
	Real            string `json:"real"`
	RealBits        string `json:"realBits"`
	Kinds           []row  `json:"kinds"`
}

func main() {
	ctx := context.Background()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		exit(err)
	}
}

// run executes the command. Usage and flag errors are written to errOut.
func run(ctx context.Context, args []string, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("scalarinfo", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: scalarinfo [-f types.list] [-json] [name ...]")
		fs.PrintDefaults()
	}
	file := fs.String("f", "", "a type list file to read the type names from")
	asJSON := fs.Bool("json", false, "output JSON instead of a table")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	kinds, err := selectKinds(ctx, *file, fs.Args())
	if err != nil {
		return err
	}

	rep := newReport(kinds)
	if *asJSON {
		return json.MarshalWrite(out, rep, jsontext.WithIndent("  "))
	}
	renderTable(out, rep)
	return nil
}

func selectKinds(ctx context.Context, file string, names []string) ([]scalar.Kind, error) {
	var kinds []scalar.Kind

	if file != "" {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, errors.E(ctx, errors.CatUser, errors.TypeFS, perrors.Wrapf(err, "problem reading type list %s", file))
		}
		l, err := typelist.Parse(ctx, conversions.ByteSlice2String(content))
		if err != nil {
			return nil, perrors.Wrapf(err, "type list %s", file)
		}
		kinds = append(kinds, l.Kinds...)
	}

	for _, n := range names {
		k, err := scalar.ParseKind(n)
		if err != nil {
			return nil, errors.E(ctx, errors.CatUser, errors.TypeParameter, err)
		}
		kinds = append(kinds, k)
	}

	if len(kinds) == 0 {
		return scalar.Kinds(), nil
	}
	return kinds, nil
}

func newReport(kinds []scalar.Kind) report {
	rep := report{
		DoublePrecision: scalar.DoublePrecision,
		Real:            scalar.RealKind().GoType(),
		RealBits:        scalar.RealBitsKind().GoType(),
		Kinds:           make([]row, 0, len(kinds)),
	}
	for _, k := range kinds {
		rep.Kinds = append(rep.Kinds, row{
			Name:         k.String(),
			GoType:       k.GoType(),
			Bytes:        int(k.Size()),
			Capabilities: k.Capabilities(),
		})
	}
	return rep
}

func renderTable(out io.Writer, rep report) {
	fmt.Fprintf(out, "Real=%s RealBits=%s\n", rep.Real, rep.RealBits)

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Name", "Go Type", "Bytes", "Capabilities"})
	for _, r := range rep.Kinds {
		t.AppendRow(table.Row{r.Name, r.GoType, r.Bytes, strings.Join(r.Capabilities, ", ")})
	}
	t.Render()
}

func exit(i ...any) {
	fmt.Fprintln(os.Stderr, i...)
	os.Exit(1)
}
