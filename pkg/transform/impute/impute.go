// Package impute fills absent cells of a frame column by column.
package impute

import (
	"errors"
	"fmt"

	ds "github.com/wdm0006/dataprepkit/pkg/dataset"
)

// Method selects an imputation strategy.
type Method string

const (
	MethodMean         Method = "mean"
	MethodMedian       Method = "median"
	MethodMode         Method = "mode"
	MethodForwardFill  Method = "forward-fill"
	MethodBackwardFill Method = "backward-fill"
)

// DefaultMethod is used when no selector is given.
const DefaultMethod = MethodMean

// ErrUnsupportedMethod is matched by errors returned for unknown selectors.
var ErrUnsupportedMethod = errors.New("unsupported method")

// UnsupportedMethodError names the rejected selector.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported method: %s", e.Method)
}

func (e *UnsupportedMethodError) Is(target error) bool { return target == ErrUnsupportedMethod }

// ParseMethod maps a selector to a Method. The empty selector yields
// DefaultMethod; "ffill" and "bfill" are accepted as aliases.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "":
		return DefaultMethod, nil
	case "mean":
		return MethodMean, nil
	case "median":
		return MethodMedian, nil
	case "mode":
		return MethodMode, nil
	case "forward-fill", "ffill":
		return MethodForwardFill, nil
	case "backward-fill", "bfill":
		return MethodBackwardFill, nil
	}
	return "", &UnsupportedMethodError{Method: s}
}

// ForColumn returns the transform implementing m for a single column.
func ForColumn(m Method, column string) (ds.Transform, error) {
	switch m {
	case MethodMean:
		return &Mean{Column: column}, nil
	case MethodMedian:
		return &Median{Column: column}, nil
	case MethodMode:
		return &Mode{Column: column}, nil
	case MethodForwardFill:
		return &ForwardFill{Column: column}, nil
	case MethodBackwardFill:
		return &BackwardFill{Column: column}, nil
	}
	return nil, &UnsupportedMethodError{Method: string(m)}
}

// Pipeline builds a pipeline applying m to every column of the schema.
func Pipeline(m Method, s ds.Schema) (*ds.Pipeline, error) {
	p := ds.NewPipeline()
	for _, cs := range s.Columns {
		t, err := ForColumn(m, cs.Name)
		if err != nil {
			return nil, err
		}
		p.Add(t)
	}
	return p, nil
}

// valueColumn is the typed accessor shared by the concrete column types.
type valueColumn[T any] interface {
	Len() int
	Get(i int) (T, bool)
	Set(i int, v T)
}

func fillNulls[T any](c valueColumn[T], v T) {
	for i := 0; i < c.Len(); i++ {
		if _, ok := c.Get(i); !ok {
			c.Set(i, v)
		}
	}
}

func present[T any](c valueColumn[T]) []T {
	out := make([]T, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		if v, ok := c.Get(i); ok {
			out = append(out, v)
		}
	}
	return out
}
