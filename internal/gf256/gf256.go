// Package gf256 implements the GF(256) arithmetic contract consumed by
// the fecal encoder: add (XOR), scalar multiply-add over byte buffers,
// and scalar squaring, all under the primitive polynomial
// x^8 + x^4 + x^3 + x^2 + 1 (0x11D) with generator 2. This is not the
// Rijndael/AES polynomial 0x11B, so products differ from AES GF(2^8)
// arithmetic. It is deliberately small and table-driven, in the spirit
// of the classic log/exp/mul-table Reed-Solomon byte codecs.
package gf256

import (
	"sync"

	"github.com/templexxx/xorsimd"
)

const (
	// Bits is the field width.
	Bits = 8
	// Size is 2^Bits - 1, the multiplicative group order.
	Size = (1 << Bits) - 1
	// primitivePoly is the primitive polynomial
	// x^8 + x^4 + x^3 + x^2 + 1 (0x11D), expressed low-bit-first as the
	// reduction term applied whenever the exponentiation sequence
	// overflows 8 bits.
	primitivePoly = "101110001"
)

var (
	expTable [2 * Size]byte
	logTable [Size + 1]int
	invTable [Size + 1]byte
	mulTable [(Size + 1) * (Size + 1)]byte

	once sync.Once
)

// Init builds the log/exp/mul/inverse tables. It is idempotent and
// safe to call from multiple goroutines; callers normally never call
// it directly since every table-using function below calls it lazily
// (Add is a plain XOR and needs no tables).
func Init() {
	once.Do(buildTables)
}

func buildTables() {
	var mask byte = 1
	expTable[Bits] = 0
	for i := 0; i < Bits; i++ {
		expTable[i] = mask
		logTable[expTable[i]] = i
		if primitivePoly[i] == '1' {
			expTable[Bits] ^= mask
		}
		mask <<= 1
	}
	logTable[expTable[Bits]] = Bits

	mask = 1 << (Bits - 1)
	for i := Bits + 1; i < Size; i++ {
		if expTable[i-1] >= mask {
			expTable[i] = expTable[Bits] ^ ((expTable[i-1] ^ mask) << 1)
		} else {
			expTable[i] = expTable[i-1] << 1
		}
		logTable[expTable[i]] = i
	}
	logTable[0] = Size

	for i := 0; i < Size; i++ {
		expTable[i+Size] = expTable[i]
	}

	invTable[0] = 0
	invTable[1] = 1
	for i := 2; i <= Size; i++ {
		invTable[i] = expTable[Size-logTable[i]]
	}

	for i := 0; i <= Size; i++ {
		for j := 0; j <= Size; j++ {
			mulTable[(i<<8)+j] = expTable[modSize(logTable[i]+logTable[j])]
		}
	}
	for j := 0; j <= Size; j++ {
		mulTable[j] = 0
		mulTable[j<<8] = 0
	}
}

func modSize(x int) int {
	for x >= Size {
		x -= Size
	}
	return x
}

// ExpTableSize is the size of the multiplicative group (2^Bits - 1).
// Callers that need a fixed nonzero permutation over a residue class
// (e.g. the codec's column/row value functions) index Exp modulo this
// constant.
const ExpTableSize = Size

// Exp returns expTable[i mod ExpTableSize], always nonzero.
func Exp(i int) byte {
	Init()
	return expTable[i%ExpTableSize]
}

// Mul returns a*b in GF(256).
func Mul(a, b byte) byte {
	Init()
	return mulTable[(int(a)<<8)+int(b)]
}

// Square returns c*c in GF(256).
func Square(c byte) byte {
	return Mul(c, c)
}

// Inverse returns the multiplicative inverse of a nonzero element.
// Inverse(0) is 0 by convention and must never be relied upon by a
// caller (a zero pivot means the matrix is singular).
func Inverse(a byte) byte {
	Init()
	return invTable[a]
}

// Add computes dst ^= src elementwise over n = min(len(dst), len(src))
// bytes. Addition in GF(256) is XOR, so this delegates straight to
// templexxx/xorsimd's accelerated byte XOR.
func Add(dst, src []byte) {
	xorsimd.Bytes(dst, dst, src)
}

// MulAdd computes dst ^= c*src elementwise. When c is zero this is a
// no-op, matching the convention used by every table-driven GF(256)
// codec in the ecosystem (a zero scalar never touches memory).
func MulAdd(dst []byte, c byte, src []byte) {
	if c == 0 {
		return
	}
	Init()
	row := mulTable[int(c)<<8:]
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] ^= row[src[i]]
	}
}

// Mulc overwrites dst with c*src elementwise, used when a buffer is
// being seeded rather than accumulated into.
func Mulc(dst []byte, c byte, src []byte) {
	Init()
	if c == 0 {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	row := mulTable[int(c)<<8:]
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] = row[src[i]]
	}
}
