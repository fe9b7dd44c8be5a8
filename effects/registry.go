// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"fmt"
	"strings"
)

// unimplementedEffects are names that belong to the engine vocabulary but
// are intentionally not exposed through the chain. Validation rejects them
// before they reach the engine.
var unimplementedEffects = map[string]struct{}{
	"spectrogram": {},
	"splice":      {},
	"noiseprof":   {},
	"fir":         {},
}

// snapshotEffectNames queries the engine once and builds the lower-cased
// vocabulary set used by a chain for its whole lifetime.
func snapshotEffectNames(eng Engine) map[string]struct{} {
	names := eng.EffectNames()
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[strings.ToLower(name)] = struct{}{}
	}
	return set
}

// validateEffect lower-cases name and checks it against the chain's
// vocabulary snapshot minus the unimplemented set. Returns the normalized
// name on success.
func (c *Chain) validateEffect(name string) (string, error) {
	lower := strings.ToLower(name)
	if _, ok := unimplementedEffects[lower]; ok {
		return "", fmt.Errorf("%w: %s", ErrEffectUnimplemented, lower)
	}
	if _, ok := c.available[lower]; !ok {
		return "", fmt.Errorf("%w: %s", ErrEffectUnknown, lower)
	}
	return lower, nil
}
