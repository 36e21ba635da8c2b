// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	formatYAML = "yaml"
	formatJSON = "json"
)

func newEvalCmd(df *dispatchFlags) *cobra.Command {
	var (
		file   string
		output string
	)

	cmd := &cobra.Command{
		Use:   "eval [op]",
		Short: "Evaluate one operation on an operand document",
		Long: "Evaluate one operation on a YAML or JSON operand document.\n" +
			"The operation is taken from the argument, or from the document's op key.\n\n" +
			"JSON has no NaN or infinity, so -o json writes those values as the\n" +
			"strings \"NaN\", \"+Inf\" and \"-Inf\"; YAML keeps .nan and .inf.\n\n" +
			"Operations: " + strings.Join(opNames(), ", "),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != formatYAML && output != formatJSON {
				return errors.Newf("--output must be %q or %q, got %q", formatYAML, formatJSON, output)
			}
			opts, err := df.options()
			if err != nil {
				return err
			}

			doc, err := readDocument(cmd.InOrStdin(), file)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				doc.Op = args[0]
			}

			res, err := evaluate(doc, opts)
			if err != nil {
				return err
			}

			return writeResult(cmd.OutOrStdout(), output, res)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "operand document path (- for stdin)")
	cmd.Flags().StringVarP(&output, "output", "o", formatYAML, "output format: yaml or json")

	return cmd
}

// readDocument decodes the operand document from path, or from stdin for "-".
func readDocument(stdin io.Reader, path string) (document, error) {
	if path == "-" {
		return decodeDocument(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return document{}, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	return decodeDocument(f)
}

// writeResult encodes res in the requested format.
func writeResult(w io.Writer, format string, res result) error {
	switch format {
	case formatJSON:
		payload := res.payload()
		payload[res.Kind] = jsonValue(res.Value)
		enc := json.NewEncoder(w)
		if err := enc.Encode(payload); err != nil {
			return errors.Wrap(err, "encode result")
		}
		return nil
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res.payload()); err != nil {
			return errors.Wrap(err, "encode result")
		}
		return enc.Close()
	default:
		return errors.AssertionFailedf("unhandled output format %q", format)
	}
}

// jsonValue replaces non-finite floats in a result value with their
// strconv spelling, leaving finite values as numbers.
func jsonValue(v any) any {
	switch x := v.(type) {
	case float64:
		return jsonFloat(x)
	case []float64:
		out := make([]any, len(x))
		for i, f := range x {
			out[i] = jsonFloat(f)
		}
		return out
	case [][]float64:
		out := make([]any, len(x))
		for i, row := range x {
			out[i] = jsonValue(row)
		}
		return out
	default:
		return v
	}
}

func jsonFloat(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}

	return f
}

func newOpsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List supported operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range opNames() {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
