//go:build !voxeldebug

package world

// DebugAssertions выключены в обычной сборке
const DebugAssertions = false
