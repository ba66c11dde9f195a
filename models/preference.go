package models

// StrategyID names a weight strategy selectable by the caller.
type StrategyID string

const (
	StrategyHops     StrategyID = "hops"
	StrategyCombined StrategyID = "combined"
	StrategyCost     StrategyID = "cost"
	StrategyDistance StrategyID = "distance"
	StrategyDuration StrategyID = "duration"
	StrategyUnknown  StrategyID = ""
)
