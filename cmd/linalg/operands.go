// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/linalg"
	"github.com/katalvlaran/linalg/matrix"
	"gopkg.in/yaml.v3"
)

// errMissingOperand is returned when a document lacks an input the op needs.
var errMissingOperand = errors.New("missing operand")

// errUnknownOp is returned for operation names outside the boundary table.
var errUnknownOp = errors.New("unknown operation")

// document is one operand set. YAML is a superset of JSON, so both decode.
type document struct {
	Op string      `yaml:"op"`
	V1 []float64   `yaml:"v1"`
	V2 []float64   `yaml:"v2"`
	V  []float64   `yaml:"v"`
	M1 [][]float64 `yaml:"m1"`
	M2 [][]float64 `yaml:"m2"`
	M  [][]float64 `yaml:"m"`
	K  *float64    `yaml:"k"`
}

// Output kinds of the boundary operations.
const (
	kindVector = "vector"
	kindMatrix = "matrix"
	kindScalar = "scalar"
)

// result is one evaluated operation: its name, output kind and value.
type result struct {
	Op    string
	Kind  string
	Value any
}

// payload is the encoded form, e.g. {op: dot_product, scalar: 32}.
// Empty vectors stay visible as [] rather than being dropped.
func (r result) payload() map[string]any {
	return map[string]any{"op": r.Op, r.Kind: r.Value}
}

func vectorResult(v []float64, err error) (result, error) {
	return result{Kind: kindVector, Value: v}, err
}

func matrixResult(m [][]float64, err error) (result, error) {
	return result{Kind: kindMatrix, Value: m}, err
}

func scalarResult(s float64, err error) (result, error) {
	return result{Kind: kindScalar, Value: s}, err
}

// decodeDocument reads a single YAML/JSON document from r.
func decodeDocument(r io.Reader) (document, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return document{}, errors.New("empty operand document")
		}
		return document{}, errors.Wrap(err, "decode operand document")
	}

	return doc, nil
}

// evaluator runs one boundary operation against a document.
type evaluator func(doc document, opts []matrix.Option) (result, error)

// evaluators is the boundary table keyed by operation name.
var evaluators = map[string]evaluator{
	"add_vectors": func(d document, _ []matrix.Option) (result, error) {
		if err := needOperand(d.V1 != nil, "v1"); err != nil {
			return result{}, err
		}
		if err := needOperand(d.V2 != nil, "v2"); err != nil {
			return result{}, err
		}
		return vectorResult(linalg.AddVectors(d.V1, d.V2))
	},
	"sub_vectors": func(d document, _ []matrix.Option) (result, error) {
		if err := needOperand(d.V1 != nil, "v1"); err != nil {
			return result{}, err
		}
		if err := needOperand(d.V2 != nil, "v2"); err != nil {
			return result{}, err
		}
		return vectorResult(linalg.SubVectors(d.V1, d.V2))
	},
	"scalar_mul_vector": func(d document, _ []matrix.Option) (result, error) {
		if err := needOperand(d.V != nil, "v"); err != nil {
			return result{}, err
		}
		if err := needOperand(d.K != nil, "k"); err != nil {
			return result{}, err
		}
		return vectorResult(linalg.ScalarMulVector(d.V, *d.K), nil)
	},
	"dot_product": func(d document, _ []matrix.Option) (result, error) {
		if err := needOperand(d.V1 != nil, "v1"); err != nil {
			return result{}, err
		}
		if err := needOperand(d.V2 != nil, "v2"); err != nil {
			return result{}, err
		}
		return scalarResult(linalg.DotProduct(d.V1, d.V2))
	},
	"norm_vector": func(d document, _ []matrix.Option) (result, error) {
		if err := needOperand(d.V != nil, "v"); err != nil {
			return result{}, err
		}
		return scalarResult(linalg.NormVector(d.V), nil)
	},
	"add_matrices": func(d document, opts []matrix.Option) (result, error) {
		return matrixResult(linalg.AddMatrices(d.M1, d.M2, opts...))
	},
	"sub_matrices": func(d document, opts []matrix.Option) (result, error) {
		return matrixResult(linalg.SubMatrices(d.M1, d.M2, opts...))
	},
	"scalar_mul_matrix": func(d document, opts []matrix.Option) (result, error) {
		if err := needOperand(d.K != nil, "k"); err != nil {
			return result{}, err
		}
		return matrixResult(linalg.ScalarMulMatrix(d.M, *d.K, opts...))
	},
	"mul_matrices": func(d document, opts []matrix.Option) (result, error) {
		return matrixResult(linalg.MulMatrices(d.M1, d.M2, opts...))
	},
	"mul_matrix_vector": func(d document, opts []matrix.Option) (result, error) {
		if err := needOperand(d.V != nil, "v"); err != nil {
			return result{}, err
		}
		return vectorResult(linalg.MulMatrixVector(d.M, d.V, opts...))
	},
}

// needOperand reports errMissingOperand for name unless ok.
// Absent matrices are left to the kernel, which reports ErrEmptyMatrix.
func needOperand(ok bool, name string) error {
	if ok {
		return nil
	}

	return errors.Wrapf(errMissingOperand, "%q", name)
}

// evaluate dispatches doc.Op through the boundary table.
func evaluate(doc document, opts []matrix.Option) (result, error) {
	eval, ok := evaluators[doc.Op]
	if !ok {
		return result{}, errors.Wrapf(errUnknownOp, "%q", doc.Op)
	}
	res, err := eval(doc, opts)
	if err != nil {
		return result{}, err
	}
	res.Op = doc.Op

	return res, nil
}

// opNames lists the boundary operations in sorted order.
func opNames() []string {
	names := make([]string, 0, len(evaluators))
	for name := range evaluators {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
