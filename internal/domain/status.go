package domain

// Reorder urgency tiers.
const (
	UrgencyHigh   = "HIGH"
	UrgencyMedium = "MEDIUM"
	UrgencyLow    = "LOW"
)

// Recommended actions.
const (
	ActionReorderNow  = "REORDER_NOW"
	ActionReorderSoon = "REORDER_SOON"
	ActionMonitor     = "MONITOR"
	ActionNoData      = "NO_DATA"
)

// Sales-velocity performance classes.
const (
	PerformanceFastMoving   = "FAST_MOVING"
	PerformanceMediumMoving = "MEDIUM_MOVING"
	PerformanceSlowMoving   = "SLOW_MOVING"
	PerformanceNoData       = "NO_DATA"
)

// ABC revenue-concentration tiers.
const (
	ABCTierA = "A"
	ABCTierB = "B"
	ABCTierC = "C"
)

var abcTierDescriptions = map[string]string{
	ABCTierA: "High Value - Focus on tight control",
	ABCTierB: "Medium Value - Regular monitoring",
	ABCTierC: "Low Value - Basic control",
}

// ABCTierDescription returns the human-readable description for an ABC tier.
func ABCTierDescription(tier string) string {
	return abcTierDescriptions[tier]
}
