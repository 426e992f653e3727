// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cube

import "github.com/deshaw/gocube/dtype"

const wordBits = 64

// BitSet is the packed-bit storage backend for boolean cubes. Bulk I/O is
// word-granular internally but exposed element-wise through ToFlat/FromFlat
// so kernels can stage chunks the same way they do for Dense.
type BitSet struct {
	shape Shape
	size  int
	words []uint64
}

// NewBitSet allocates an all-false BitSet of the given shape.
func NewBitSet(shape Shape) *BitSet {
	size := shape.Size()
	return &BitSet{
		shape: shape.Clone(),
		size:  size,
		words: make([]uint64, (size+wordBits-1)/wordBits),
	}
}

func (b *BitSet) Size() int            { return b.size }
func (b *BitSet) NDim() int            { return len(b.shape) }
func (b *BitSet) Shape() Shape         { return b.shape }
func (b *BitSet) Length(axis int) int  { return b.shape[axis] }
func (b *BitSet) DType() dtype.DType   { return dtype.Bool }
func (b *BitSet) SupportsBulkIO() bool { return true }
func (b *BitSet) Writable() bool       { return true }

func (b *BitSet) MatchesShape(other Cube) bool { return b.shape.Equal(other.Shape()) }
func (b *BitSet) Matches(other Cube) bool {
	return other.DType() == dtype.Bool && b.MatchesShape(other)
}

func (b *BitSet) GetAt(i int) bool {
	return b.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

func (b *BitSet) SetAt(i int, v bool) {
	word := i / wordBits
	bit := uint(i % wordBits)
	if v {
		b.words[word] |= 1 << bit
	} else {
		b.words[word] &^= 1 << bit
	}
}

// GetObjectAt always reports present: booleans have no missing bit
// pattern at the primitive level (spec §3).
func (b *BitSet) GetObjectAt(i int) (bool, bool) { return b.GetAt(i), true }

func (b *BitSet) SetObjectAt(i int, v bool, present bool) {
	if !present {
		v = false
	}
	b.SetAt(i, v)
}

func (b *BitSet) ToFlat(srcOff int, dst []bool, dstOff int, length int) error {
	for i := 0; i < length; i++ {
		dst[dstOff+i] = b.GetAt(srcOff + i)
	}
	return nil
}

func (b *BitSet) FromFlat(src []bool, srcOff int, dstOff int, length int) error {
	for i := 0; i < length; i++ {
		b.SetAt(dstOff+i, src[srcOff+i])
	}
	return nil
}

func (b *BitSet) Fill(v bool) {
	var word uint64
	if v {
		word = ^uint64(0)
	}
	for i := range b.words {
		b.words[i] = word
	}
}

func (b *BitSet) Slice(axes ...Axis) Typed[bool] {
	return newView[bool](b, axes)
}

func (b *BitSet) Array() Typed[bool] {
	out := NewBitSet(b.shape)
	copy(out.words, b.words)
	return out
}
