package schema

// WellnessSportInfo is a sport-specific entry nested inside a wellness day.
type WellnessSportInfo struct {
	Type *string
	EFTP *float64
}

// WellnessEntry is one calendar day of health metrics. The wellness endpoint
// keys almost everything in camelCase.
type WellnessEntry struct {
	ID                      *string
	CTL                     *float64
	ATL                     *float64
	RampRate                *float64
	CTLLoad                 *float64
	ATLLoad                 *float64
	SportInfo               []WellnessSportInfo
	Weight                  *float64
	RestingHR               *int
	HRV                     *float64
	HRVSDNN                 *float64
	MenstrualPhase          *string
	MenstrualPhasePredicted *string
	KcalConsumed            *int
	SleepSecs               *int
	SleepScore              *float64
	SleepQuality            *int
	AvgSleepingHR           *float64
	Soreness                *int
	Fatigue                 *int
	Stress                  *int
	Mood                    *int
	Motivation              *int
	Injury                  *int
	SpO2                    *float64
	Systolic                *int
	Diastolic               *int
	Hydration               *int
	HydrationVolume         *float64
	Readiness               *float64
	BaevskySI               *float64
	BloodGlucose            *float64
	Lactate                 *float64
	BodyFat                 *float64
	Abdomen                 *float64
	VO2Max                  *float64
	Comments                *string
	Steps                   *int
	Respiration             *float64
	Locked                  *bool
	SleepHours              *float64
}

func WellnessEntryFromRaw(data map[string]any) WellnessEntry {
	entry := WellnessEntry{
		ID:                      firstString(data, "id"),
		CTL:                     firstFloat(data, "ctl"),
		ATL:                     firstFloat(data, "atl"),
		RampRate:                firstFloat(data, "rampRate"),
		CTLLoad:                 firstFloat(data, "ctlLoad"),
		ATLLoad:                 firstFloat(data, "atlLoad"),
		Weight:                  firstFloat(data, "weight"),
		RestingHR:               firstInt(data, "restingHR", "restingHr"),
		HRV:                     firstFloat(data, "hrv"),
		HRVSDNN:                 firstFloat(data, "hrvSDNN"),
		MenstrualPhase:          safeEnum(menstrualPhases, data["menstrualPhase"]),
		MenstrualPhasePredicted: safeEnum(menstrualPhases, data["menstrualPhasePredicted"]),
		KcalConsumed:            firstInt(data, "kcalConsumed"),
		SleepSecs:               firstInt(data, "sleepSecs"),
		SleepScore:              firstFloat(data, "sleepScore"),
		SleepQuality:            firstInt(data, "sleepQuality"),
		AvgSleepingHR:           firstFloat(data, "avgSleepingHR"),
		Soreness:                firstInt(data, "soreness"),
		Fatigue:                 firstInt(data, "fatigue"),
		Stress:                  firstInt(data, "stress"),
		Mood:                    firstInt(data, "mood"),
		Motivation:              firstInt(data, "motivation"),
		Injury:                  firstInt(data, "injury"),
		SpO2:                    firstFloat(data, "spO2"),
		Systolic:                firstInt(data, "systolic"),
		Diastolic:               firstInt(data, "diastolic"),
		Hydration:               firstInt(data, "hydration"),
		HydrationVolume:         firstFloat(data, "hydrationVolume"),
		Readiness:               firstFloat(data, "readiness"),
		BaevskySI:               firstFloat(data, "baevskySI"),
		BloodGlucose:            firstFloat(data, "bloodGlucose"),
		Lactate:                 firstFloat(data, "lactate"),
		BodyFat:                 firstFloat(data, "bodyFat"),
		Abdomen:                 firstFloat(data, "abdomen"),
		VO2Max:                  firstFloat(data, "vo2max"),
		Comments:                firstString(data, "comments"),
		Steps:                   firstInt(data, "steps"),
		Respiration:             firstFloat(data, "respiration"),
		Locked:                  firstBool(data, "locked"),
		SleepHours:              firstFloat(data, "sleepHours"),
	}
	for _, m := range ObjectItems(firstList(data, "sportInfo"), "sportInfo") {
		entry.SportInfo = append(entry.SportInfo, WellnessSportInfo{
			Type: firstString(m, "type"),
			EFTP: firstFloat(m, "eftp"),
		})
	}
	return entry
}

// Athlete is the profile of the tracked user.
type Athlete struct {
	ID        *string
	Name      *string
	Weight    *float64
	RestingHR *int
	Location  *string
	Timezone  *string
	Status    *string
}

func AthleteFromRaw(data map[string]any) Athlete {
	return Athlete{
		ID:        firstString(data, "id"),
		Name:      firstString(data, "name"),
		Weight:    firstFloat(data, "weight", "icu_weight"),
		RestingHR: firstInt(data, "icu_resting_hr", "restingHr", "resting_hr"),
		Location:  firstString(data, "location", "city"),
		Timezone:  firstString(data, "timezone"),
		Status:    safeEnum(athleteStatuses, data["status"]),
	}
}

// SportSettings holds per-sport thresholds: FTP, LTHR, max HR and zone
// boundaries.
type SportSettings struct {
	Type         *string
	FTP          *int
	LTHR         *int
	MaxHR        *int
	PowerZones   []int
	HRZones      []int
	PaceZones    []float64
	WarmupTime   *int
	CooldownTime *int
}

func SportSettingsFromRaw(data map[string]any) SportSettings {
	return SportSettings{
		Type:         safeEnum(sportTypes, data["type"]),
		FTP:          firstInt(data, "ftp"),
		LTHR:         firstInt(data, "lthr"),
		MaxHR:        firstInt(data, "max_hr", "maxHr"),
		PowerZones:   intList(firstList(data, "power_zones", "zones", "powerZones")),
		HRZones:      intList(firstList(data, "hr_zones")),
		PaceZones:    floatList(firstList(data, "pace_zones", "paceZones")),
		WarmupTime:   firstInt(data, "warmup_time", "warmup"),
		CooldownTime: firstInt(data, "cooldown_time", "cooldown"),
	}
}
