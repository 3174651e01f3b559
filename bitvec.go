package bitvec

import (
	"bufio"
	"bytes"
	"io"
	"math/bits"
	"strings"
)

// BitVector is a fixed-length array of single-bit flags packed into bytes.
//
// The bit length is fixed at construction. Operations never write outside
// the allocated buffer, but SetAll and Not touch padding bits and Equal
// compares them; callers must never address indices at or beyond BitLen.
type BitVector struct {
	bits   []byte
	bitLen int

	mode        Mode
	onViolation ViolationHandler
}

// New allocates a zero-filled vector holding bitLen bits in ceil(bitLen/8)
// bytes. A bit length of zero is legal and yields an empty buffer. A
// negative bit length returns *ErrInvalidBitLength.
func New(bitLen int, optFns ...Option) (*BitVector, error) {
	if bitLen < 0 {
		return nil, &ErrInvalidBitLength{BitLen: bitLen}
	}

	o := applyOptions(optFns)

	return &BitVector{
		bits:        make([]byte, byteLen(bitLen)),
		bitLen:      bitLen,
		mode:        o.mode,
		onViolation: o.onViolation,
	}, nil
}

func byteLen(bitLen int) int {
	return (bitLen + 7) / 8
}

// BitLen returns the fixed number of addressable bits.
func (v *BitVector) BitLen() int { return v.bitLen }

// ByteLen returns the number of storage bytes, ceil(BitLen/8).
func (v *BitVector) ByteLen() int { return byteLen(v.bitLen) }

// Bytes returns the underlying storage without copying. Mutating the
// returned slice mutates the vector.
func (v *BitVector) Bytes() []byte { return v.bits }

// released vectors are the only ones with nil storage; New(0) allocates an
// empty, non-nil buffer.
func (v *BitVector) released() bool { return v.bits == nil }

// check validates a single-bit access. It reports false when the operation
// must become a no-op, which only happens with a non-panicking handler.
func (v *BitVector) check(index int) bool {
	if v.mode == ModeFast {
		return true
	}
	if v.released() {
		v.onViolation(ErrReleased)
		return false
	}
	if index < 0 || index >= v.bitLen {
		v.onViolation(&ErrIndexOutOfRange{Index: index, BitLen: v.bitLen})
		return false
	}
	return true
}

func (v *BitVector) checkLive() bool {
	if v.mode == ModeFast {
		return true
	}
	if v.released() {
		v.onViolation(ErrReleased)
		return false
	}
	return true
}

func (v *BitVector) checkPair(o *BitVector) bool {
	if v.mode == ModeFast {
		return true
	}
	if v.released() || o == nil || o.released() {
		v.onViolation(ErrReleased)
		return false
	}
	return true
}

// Set sets the bit at index to 1.
func (v *BitVector) Set(index int) {
	if !v.check(index) {
		return
	}
	v.bits[index/8] |= 1 << (index % 8)
}

// Clear sets the bit at index to 0.
func (v *BitVector) Clear(index int) {
	if !v.check(index) {
		return
	}
	v.bits[index/8] &^= 1 << (index % 8)
}

// Flip inverts the bit at index.
func (v *BitVector) Flip(index int) {
	if !v.check(index) {
		return
	}
	v.bits[index/8] ^= 1 << (index % 8)
}

// Get reports whether the bit at index is set.
func (v *BitVector) Get(index int) bool {
	if !v.check(index) {
		return false
	}
	return v.bits[index/8]&(1<<(index%8)) != 0
}

// SetAll sets every storage byte to 0xFF, padding bits included.
func (v *BitVector) SetAll() {
	if !v.checkLive() {
		return
	}
	for i := range v.bits {
		v.bits[i] = 0xFF
	}
}

// ClearAll sets every storage byte to 0x00, padding bits included.
func (v *BitVector) ClearAll() {
	if !v.checkLive() {
		return
	}
	for i := range v.bits {
		v.bits[i] = 0
	}
}

// Not complements every storage byte in place, padding bits included.
func (v *BitVector) Not() {
	if !v.checkLive() {
		return
	}
	for i := range v.bits {
		v.bits[i] = ^v.bits[i]
	}
}

// truncatedByteLen returns the byte length of whichever operand has the
// smaller bit length. The pick compares bit lengths, not byte lengths, so
// operands of 57 and 60 bits process the same number of bytes.
func (v *BitVector) truncatedByteLen(o *BitVector) int {
	if v.bitLen < o.bitLen {
		return v.ByteLen()
	}
	return o.ByteLen()
}

// Or combines o into v byte-wise. When the operands differ in bit length,
// only the bytes covered by the shorter one are combined and the rest of the
// longer vector is left untouched. This truncation is deliberate, not a
// resize; callers needing matched-length semantics must ensure equal bit
// lengths beforehand.
func (v *BitVector) Or(o *BitVector) {
	if !v.checkPair(o) {
		return
	}
	n := v.truncatedByteLen(o)
	for i := 0; i < n; i++ {
		v.bits[i] |= o.bits[i]
	}
}

// And combines o into v byte-wise, truncating to the shorter operand as
// described for Or.
func (v *BitVector) And(o *BitVector) {
	if !v.checkPair(o) {
		return
	}
	n := v.truncatedByteLen(o)
	for i := 0; i < n; i++ {
		v.bits[i] &= o.bits[i]
	}
}

// Xor combines o into v byte-wise, truncating to the shorter operand as
// described for Or.
func (v *BitVector) Xor(o *BitVector) {
	if !v.checkPair(o) {
		return
	}
	n := v.truncatedByteLen(o)
	for i := 0; i < n; i++ {
		v.bits[i] ^= o.bits[i]
	}
}

// Equal reports whether v and o have the same bit length and identical
// storage bytes. The comparison is storage-exact: padding bits participate,
// so two vectors that agree on every addressable bit can still differ here
// when their padding drifted apart, for example through Not.
func (v *BitVector) Equal(o *BitVector) bool {
	if !v.checkPair(o) {
		return false
	}
	if o == nil || v.bitLen != o.bitLen {
		return false
	}
	return bytes.Equal(v.bits, o.bits)
}

// Count returns the number of set bits among the first BitLen bits. Padding
// bits are masked out of the final byte, so Count is unaffected by whatever
// SetAll or Not left there.
func (v *BitVector) Count() int {
	if !v.checkLive() {
		return 0
	}

	n := 0
	full := v.bitLen / 8
	for _, b := range v.bits[:full] {
		n += bits.OnesCount8(b)
	}
	if rem := v.bitLen % 8; rem != 0 {
		n += bits.OnesCount8(v.bits[full] & (1<<rem - 1))
	}

	return n
}

// Clone returns a new vector with its own storage holding the same bit
// length and the same bytes, padding included. Validation settings carry
// over. Mutating the clone never affects v.
func (v *BitVector) Clone() *BitVector {
	if !v.checkLive() {
		return nil
	}

	c := &BitVector{
		bits:        make([]byte, len(v.bits)),
		bitLen:      v.bitLen,
		mode:        v.mode,
		onViolation: v.onViolation,
	}
	copy(c.bits, v.bits)

	return c
}

// Release drops the storage and resets the bit length to zero. Any further
// use of the vector, including a second Release, is a contract violation:
// ModeStrict reports ErrReleased, ModeFast behavior is undefined.
func (v *BitVector) Release() {
	if !v.checkLive() {
		return
	}
	v.bits = nil
	v.bitLen = 0
}

// Dump writes one '0' or '1' character per bit for indices 0..BitLen in
// order, breaking the line after every groupSize characters, and finishes
// with a newline. A groupSize of zero or less emits a single unbroken line.
// Diagnostic output only; nothing parses it.
func (v *BitVector) Dump(w io.Writer, groupSize int) error {
	if !v.checkLive() {
		return nil
	}

	bw := bufio.NewWriter(w)
	for i := 0; i < v.bitLen; i++ {
		c := byte('0')
		if v.bits[i/8]&(1<<(i%8)) != 0 {
			c = '1'
		}
		if err := bw.WriteByte(c); err != nil {
			return err
		}
		if groupSize > 0 && (i+1)%groupSize == 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	return bw.Flush()
}

// String renders the vector in groups of 8 bits per line.
func (v *BitVector) String() string {
	var sb strings.Builder
	_ = v.Dump(&sb, 8)
	return sb.String()
}
