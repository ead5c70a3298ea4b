// SPDX-License-Identifier: MIT
// Package: chroma/builder
//
// constants.go - shared identifiers and method tags.

package builder

// CenterVertexID is the hub vertex emitted by Star and Wheel.
const CenterVertexID = "Center"

// Method tags used as error context prefixes.
const (
	methodComplete          = "Complete"
	methodCycle             = "Cycle"
	methodPath              = "Path"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"
	methodRandomSparse      = "RandomSparse"
)

// Parameter minimums.
const (
	minCompleteNodes     = 1
	minCycleNodes        = 3
	minPathNodes         = 1
	minStarNodes         = 2
	minWheelNodes        = 4
	minPartitionSize     = 1
	minGridDim           = 1
	minRandomSparseNodes = 1

	probMin = 0.0
	probMax = 1.0
)
