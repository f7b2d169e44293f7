package scorer

// Scoring weights for ranking GitHub projects. These are a fixed contract:
// the ordering of a user's featured projects must be reproducible across
// runs, so the constants are not configurable.
const (
	weightPerStar        = 100
	weightNotFork        = 50
	weightDescription    = 30 // description present and longer than minDescriptionLen
	weightHomepage       = 25
	weightRecentUpdate   = 20 // updated within recentUpdateDays
	weightPerTopic       = 5
	weightLargeRepo      = 15 // size above largeRepoKB
	weightPortfolioMatch = 40 // "portfolio" in name or description
	weightAppMatch       = 20 // "app"/"project" in name or "application" in description
	penaltyShortName     = 10 // name shorter than minNameLen
)

const (
	minDescriptionLen = 20
	recentUpdateDays  = 365
	largeRepoKB       = 1000
	minNameLen        = 4
)
