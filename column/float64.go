package column

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// float64Column backs a declared FLOAT8 output column with an Arrow
// nullable float64 builder.
type float64Column struct {
	b *array.Float64Builder
}

func newFloat64Column(mem memory.Allocator) *float64Column {
	return &float64Column{b: array.NewFloat64Builder(mem)}
}

func (c *float64Column) appendValid(v float64)     { c.b.Append(v) }
func (c *float64Column) appendNull()                { c.b.AppendNull() }
func (c *float64Column) len() int                   { return c.b.Len() }
func (c *float64Column) release()                   { c.b.Release() }
func (c *float64Column) finish() arrow.Array        { return c.b.NewArray() }
func (c *float64Column) arrowType() arrow.DataType  { return arrow.PrimitiveTypes.Float64 }
