package enums

import (
	"math/bits"
	"reflect"
	"strconv"
)

// Underlying is the set of integer types an enumeration may be declared over.
// Both named and unnamed integer types satisfy it; enumerations are expected
// to use a defined type (e.g. "type Color uint8") so that each one has a
// distinct identity in the registry.
type Underlying interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// traits describes the numeric shape of an underlying type. It is resolved
// once per registered enumeration and drives formatting, parsing, range
// checks, and flag arithmetic without any per-operation reflection.
type traits struct {
	kind   reflect.Kind
	bits   int    // width in bits: 8, 16, 32, or 64
	signed bool
	mask   uint64 // low `bits` bits set
	minS   int64  // smallest representable value; 0 for unsigned types
	maxS   int64  // largest representable value that fits in int64
	maxU   uint64 // largest representable value viewed as unsigned
}

func traitsFor[T Underlying]() traits {
	rt := reflect.TypeFor[T]()
	k := rt.Kind()
	tr := traits{
		kind:   k,
		bits:   rt.Bits(),
		signed: k >= reflect.Int && k <= reflect.Int64,
	}
	tr.mask = ^uint64(0) >> (64 - tr.bits)
	if tr.signed {
		tr.maxS = int64(tr.mask >> 1)
		tr.minS = -tr.maxS - 1
		tr.maxU = uint64(tr.maxS)
	} else {
		tr.maxU = tr.mask
		if tr.bits == 64 {
			tr.maxS = int64(tr.mask >> 1)
		} else {
			tr.maxS = int64(tr.maxU)
		}
	}
	return tr
}

// bitsOf returns the raw bit pattern of v widened to 64 bits, with any sign
// extension masked off. All flag arithmetic operates on this view so that
// high-bit flags of signed types (e.g. int8 -128) behave like ordinary bits.
func bitsOf[T Underlying](v T, tr *traits) uint64 {
	return uint64(v) & tr.mask
}

// isBit reports whether the masked bit pattern has exactly one bit set.
func isBit(b uint64) bool {
	return b != 0 && b&(b-1) == 0
}

func popCount[T Underlying](v T, tr *traits) int {
	return bits.OnesCount64(bitsOf(v, tr))
}

// decimalString renders v in its natural decimal form: signed types keep
// their sign, unsigned types are plain digits.
func decimalString[T Underlying](v T, tr *traits) string {
	if tr.signed {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatUint(uint64(v), 10)
}

const upperhex = "0123456789ABCDEF"

// hexString renders the raw bit pattern of v as upper-case hexadecimal,
// zero-padded to the full width of the underlying type.
func hexString[T Underlying](v T, tr *traits) string {
	b := bitsOf(v, tr)
	n := tr.bits / 4
	var buf [16]byte
	for i := n - 1; i >= 0; i-- {
		buf[i] = upperhex[b&0xF]
		b >>= 4
	}
	return string(buf[:n])
}

// parseDecimal parses tok as a decimal number in the underlying type's
// range. A leading sign is accepted only for signed types, mirroring
// decimalString.
func parseDecimal[T Underlying](tok string, tr *traits) (T, bool) {
	if tr.signed {
		n, err := strconv.ParseInt(tok, 10, tr.bits)
		if err != nil {
			return 0, false
		}
		return T(n), true
	}
	n, err := strconv.ParseUint(tok, 10, tr.bits)
	if err != nil {
		return 0, false
	}
	return T(n), true
}

// parseHex parses tok as bare hex digits (no 0x prefix, no sign) and
// reinterprets the bit pattern in the underlying type, so "FF" parses to -1
// for an int8-backed enumeration.
func parseHex[T Underlying](tok string, tr *traits) (T, bool) {
	n, err := strconv.ParseUint(tok, 16, tr.bits)
	if err != nil {
		return 0, false
	}
	return T(n), true
}

// numericLooking reports whether s starts like a number. Failed parses of
// such inputs are reported as range errors rather than unrecognized names.
func numericLooking(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '-' || c == '+' || ('0' <= c && c <= '9')
}

func decimalInt64(x int64) string { return strconv.FormatInt(x, 10) }

func decimalUint64(x uint64) string { return strconv.FormatUint(x, 10) }

// fromInt64 converts x into the underlying type, reporting false when x is
// outside its representable range.
func fromInt64[T Underlying](x int64, tr *traits) (T, bool) {
	if tr.signed {
		if x < tr.minS || x > tr.maxS {
			return 0, false
		}
		return T(x), true
	}
	if x < 0 || uint64(x) > tr.maxU {
		return 0, false
	}
	return T(x), true
}

// fromUint64 is the unsigned counterpart of fromInt64.
func fromUint64[T Underlying](x uint64, tr *traits) (T, bool) {
	if tr.signed {
		if x > uint64(tr.maxS) {
			return 0, false
		}
		return T(x), true
	}
	if x > tr.maxU {
		return 0, false
	}
	return T(x), true
}

// memberIndexOf computes the offset of v from min without overflowing the
// underlying type; both values must already be known to satisfy min <= v.
func memberIndexOf[T Underlying](v, min T, tr *traits) int {
	if tr.signed {
		return int(int64(v) - int64(min))
	}
	return int(uint64(v) - uint64(min))
}
