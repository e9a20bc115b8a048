package bloom

import (
	"fmt"
	"math"
)

// maxSeed is the largest seed value the format accepts (2^53-1), carried
// over from the reference implementation so seeds remain representable
// without precision loss in a float64-backed number type.
const maxSeed = (uint64(1) << 53) - 1

// defaultP is used when Config.P is left at its zero value. The spec
// requires 0 < p < 1 but does not name a default; this module picks the
// same 1% false-positive target the rest of the corpus's cache/config
// defaults aim for (see DESIGN.md).
const defaultP = 0.01

// Config parameterizes a Filter's construction. N is required; P, M, K, and
// S each default per §4.F when left at their zero value.
type Config struct {
	// N is the expected element count. Must be positive.
	N int `json:"n" jsonschema:"description=Expected number of elements the filter will hold"`
	// P is the target false-positive rate, 0 < p < 1. Defaults to 0.01.
	P float64 `json:"p,omitempty" jsonschema:"description=Target false-positive rate in (0,1), default 0.01"`
	// M is the bit array size. When zero, computed from N and P and
	// rounded up to a multiple of 24 so the bit array base64-encodes
	// without padding.
	M uint64 `json:"m,omitempty" jsonschema:"description=Bit array size (0 = computed from n and p)"`
	// K is the number of hash positions per element. When zero, computed
	// from P.
	K int `json:"k,omitempty" jsonschema:"description=Number of hash positions (0 = computed from p)"`
	// S is the hash seed, 0 <= s <= 2^53-1. Defaults to 0.
	S uint64 `json:"s,omitempty" jsonschema:"description=Hash seed, default 0"`
}

// resolved returns a copy of c with every default applied, or ErrConfig if
// any field is outside its valid domain.
func (c Config) resolved() (Config, error) {
	out := c

	if out.N <= 0 {
		return Config{}, fmt.Errorf("%w: n must be positive, got %d", ErrConfig, out.N)
	}

	if out.P == 0 {
		out.P = defaultP
	}
	if out.P <= 0 || out.P >= 1 {
		return Config{}, fmt.Errorf("%w: p must satisfy 0 < p < 1, got %v", ErrConfig, out.P)
	}

	if out.M == 0 {
		bits := math.Ceil((-float64(out.N)*math.Log(out.P))/(math.Ln2*math.Ln2)/24) * 24
		if bits <= 0 {
			return Config{}, fmt.Errorf("%w: computed m is non-positive", ErrConfig)
		}
		out.M = uint64(bits)
	}

	if out.K == 0 {
		k := int(math.Round(-math.Log2(out.P)))
		if k <= 0 {
			k = 1
		}
		out.K = k
	}
	if out.K <= 0 {
		return Config{}, fmt.Errorf("%w: k must be positive, got %d", ErrConfig, out.K)
	}

	if out.S > maxSeed {
		return Config{}, fmt.Errorf("%w: s must not exceed %d, got %d", ErrConfig, maxSeed, out.S)
	}

	return out, nil
}
