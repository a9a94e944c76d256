//go:build !simdebug

package world

// DebugChecks enables post-tick structural validation. Built only under the
// simdebug tag; optimized builds carry no validation cost and no safety net.
const DebugChecks = false
