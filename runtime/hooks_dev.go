//go:build dev

package runtime

const strictHooks = true
