// Copyright (c) 2026 Dream Labs Inc. All Rights Reserved.
// This is licensed software from Dream Labs Inc, for limitations
// and restrictions contact your company contract manager.

package season

const (
	// StartingLevel is the level for users new to a season, and for users
	// who did not meet the carry-over threshold when the previous season ended.
	StartingLevel = 0

	// ResetThresholdLevel is the minimum level a user must reach in an ended
	// season to qualify for a partial carry-over into the next one.
	ResetThresholdLevel = 10

	// ResetToLevel is the starting level in the new season for users who met
	// or exceeded ResetThresholdLevel.
	ResetToLevel = 5

	// PointsPerLevel is the number of seasonal points per level step.
	PointsPerLevel = 100
)
