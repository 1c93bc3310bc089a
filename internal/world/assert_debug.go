//go:build voxeldebug

package world

// DebugAssertions включает проверки инвариантов (сборка с -tags voxeldebug)
const DebugAssertions = true
