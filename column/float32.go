package column

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// float32Column backs a declared FLOAT4 output column with an Arrow
// nullable float32 builder.
type float32Column struct {
	b *array.Float32Builder
}

func newFloat32Column(mem memory.Allocator) *float32Column {
	return &float32Column{b: array.NewFloat32Builder(mem)}
}

func (c *float32Column) appendValid(v float32)     { c.b.Append(v) }
func (c *float32Column) appendNull()                { c.b.AppendNull() }
func (c *float32Column) len() int                   { return c.b.Len() }
func (c *float32Column) release()                   { c.b.Release() }
func (c *float32Column) finish() arrow.Array        { return c.b.NewArray() }
func (c *float32Column) arrowType() arrow.DataType  { return arrow.PrimitiveTypes.Float32 }
