// package patch implements a lightweight, guard-padded 2-D view over a
// contiguous numeric buffer, addressed by logical cell index (i, j). It is
// the sole mechanism the DG core uses to read and write per-cell data.
package patch

import "github.com/cpmech/gosl/chk"

// Patch is a 2-D view over a flat, row-major buffer. It does not own
// storage; copying a Patch value copies the view, not the data.
type Patch struct {
	Start0, Start1 int // origin of the logical index range (e.g. -NumGuard)
	Count0, Count1 int // extents including any guard layers
	NumFields      int // payload width per cell
	Stride0        int // J_0 = NumFields * Count1
	Stride1        int // J_1 = NumFields
	Data           []float64
}

// New allocates a fresh, zeroed Patch with the given origin, extents and
// per-cell payload width.
func New(start0, start1, count0, count1, numFields int) Patch {
	stride1 := numFields
	stride0 := numFields * count1
	return Patch{
		Start0: start0, Start1: start1,
		Count0: count0, Count1: count1,
		NumFields: numFields,
		Stride0:   stride0, Stride1: stride1,
		Data: make([]float64, count0*count1*numFields),
	}
}

// addr returns the flat offset of the payload for cell (i, j).
func (p Patch) addr(i, j int) int {
	return p.Stride0*(i-p.Start0) + p.Stride1*(j-p.Start1)
}

// At returns the NumFields-wide payload slice for cell (i, j). The slice
// aliases the backing buffer; mutating it mutates the patch.
func (p Patch) At(i, j int) []float64 {
	a := p.addr(i, j)
	return p.Data[a : a+p.NumFields]
}

// Interior0 and Interior1 report the size of the interior (non-guard)
// index range along each axis, i.e. ni and nj.
func (p Patch) Interior0() int { return p.Count0 + 2*p.Start0 }
func (p Patch) Interior1() int { return p.Count1 + 2*p.Start1 }

// SameShape reports whether two patches share identical extents, origin,
// and payload width.
func SameShape(a, b Patch) bool {
	return a.Start0 == b.Start0 && a.Start1 == b.Start1 &&
		a.Count0 == b.Count0 && a.Count1 == b.Count1 &&
		a.NumFields == b.NumFields
}

// RequireDistinct returns an error if rd and wr alias the same backing
// storage; aliased read/write patches otherwise produce undefined results,
// since per-cell kernels assume rd is untouched while they fill wr.
func RequireDistinct(rd, wr Patch) error {
	if len(rd.Data) > 0 && len(wr.Data) > 0 && &rd.Data[0] == &wr.Data[0] {
		return chk.Err("read and write patches must not alias the same backing storage")
	}
	return nil
}
