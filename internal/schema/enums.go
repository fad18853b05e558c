package schema

// Closed vocabularies from the Intervals.icu OpenAPI spec. Parsing is
// tolerant: values outside these sets are kept as-is (see safeEnum).

// Event categories for calendar events.
const (
	CategoryWorkout     = "WORKOUT"
	CategoryRaceA       = "RACE_A"
	CategoryRaceB       = "RACE_B"
	CategoryRaceC       = "RACE_C"
	CategoryNote        = "NOTE"
	CategoryPlan        = "PLAN"
	CategoryHoliday     = "HOLIDAY"
	CategorySick        = "SICK"
	CategoryInjured     = "INJURED"
	CategorySetEFTP     = "SET_EFTP"
	CategoryFitnessDays = "FITNESS_DAYS"
	CategorySeasonStart = "SEASON_START"
	CategoryTarget      = "TARGET"
	CategorySetFitness  = "SET_FITNESS"
)

var eventCategories = []string{
	CategoryWorkout, CategoryRaceA, CategoryRaceB, CategoryRaceC,
	CategoryNote, CategoryPlan, CategoryHoliday, CategorySick,
	CategoryInjured, CategorySetEFTP, CategoryFitnessDays,
	CategorySeasonStart, CategoryTarget, CategorySetFitness,
}

var customItemTypes = []string{
	"FITNESS_CHART", "TRACE_CHART", "INPUT_FIELD", "ACTIVITY_FIELD",
	"INTERVAL_FIELD", "ACTIVITY_STREAM", "ACTIVITY_CHART",
	"ACTIVITY_HISTOGRAM", "ACTIVITY_HEATMAP", "ACTIVITY_MAP",
	"ACTIVITY_PANEL", "ZONES",
}

var visibilities = []string{"PRIVATE", "FOLLOWERS", "PUBLIC"}

var athleteStatuses = []string{"ACTIVE", "DORMANT", "ARCHIVED"}

var menstrualPhases = []string{"PERIOD", "FOLLICULAR", "OVULATING", "LUTEAL", "NONE"}

var sportTypes = []string{
	"Ride", "Run", "Swim", "WeightTraining", "Hike", "Walk",
	"AlpineSki", "BackcountrySki", "Badminton", "Canoeing", "Crossfit",
	"EBikeRide", "EMountainBikeRide", "Elliptical", "Golf", "GravelRide",
	"TrackRide", "Handcycle", "HighIntensityIntervalTraining", "Hockey",
	"IceSkate", "InlineSkate", "Kayaking", "Kitesurf", "MountainBikeRide",
	"NordicSki", "OpenWaterSwim", "Padel", "Pilates", "Pickleball",
	"Racquetball", "Rugby", "RockClimbing", "RollerSki", "Rowing", "Sail",
	"Skateboard", "Snowboard", "Snowshoe", "Soccer", "Squash",
	"StairStepper", "StandUpPaddling", "Surfing", "TableTennis", "Tennis",
	"TrailRun", "Transition", "Velomobile", "VirtualRide", "VirtualRow",
	"VirtualRun", "VirtualSki", "WaterSport", "Wheelchair", "Windsurf",
	"Workout", "Yoga", "Other",
}
