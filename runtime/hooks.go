package runtime

import (
	"fmt"

	"github.com/vcrobe/folio/console"
)

// callHook runs a lifecycle hook. In dev builds panics propagate to aid debugging
// and fast failure. Otherwise they are recovered and logged so one broken component
// cannot take down the page.
func callHook(hook, key string, fn func()) {
	if !strictHooks {
		defer func() {
			if rec := recover(); rec != nil {
				console.Error(fmt.Sprintf("ERROR: %s panic in component %s: %v", hook, key, rec))
			}
		}()
	}
	fn()
}
