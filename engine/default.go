// SPDX-License-Identifier: EPL-2.0

package engine

import "sync"

var (
	defaultMu     sync.Mutex
	defaultEngine *Engine
)

// Default returns a process-wide shared engine, initializing it on first
// use. Callers that need isolated lifecycles should use New instead.
func Default() (*Engine, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultEngine == nil {
		eng := New()
		if _, err := eng.Initialize(); err != nil {
			return nil, err
		}
		defaultEngine = eng
	}

	return defaultEngine, nil
}
