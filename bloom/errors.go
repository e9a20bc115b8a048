package bloom

import "errors"

// ErrConfig is returned when one of a Config's fields (N, P, M, K, or S)
// falls outside its valid domain.
var ErrConfig = errors.New("bloom: invalid config")
