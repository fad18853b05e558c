package schema

// Activity is an athlete activity response. Only the fields the tools and
// formatters read are included; the upstream schema is far larger.
type Activity struct {
	ID                  *string
	Name                *string
	Description         *string
	Type                *string
	StartDate           *string
	Distance            *float64
	ElapsedTime         *int
	MovingTime          *int
	TotalElevationGain  *float64
	TotalElevationLoss  *float64
	Trainer             *bool
	AverageHeartrate    *int
	MaxHeartrate        *int
	AverageCadence      *float64
	Calories            *int
	AverageSpeed        *float64
	MaxSpeed            *float64
	AverageTemp         *float64
	MinTemp             *int
	MaxTemp             *int
	AvgLRBalance        *float64
	PerceivedExertion   *float64
	Feel                *int
	SessionRPE          *int
	FTP                 *int
	TrainingLoad        *int
	ATL                 *float64
	CTL                 *float64
	AverageWatts        *int
	WeightedAvgWatts    *int
	Joules              *int
	Intensity           *float64
	RPE                 *int
	PowerHR             *float64
	VariabilityIndex    *float64
	RestingHR           *int
	Weight              *float64
	EfficiencyFactor    *float64
	LTHR                *int
	Decoupling          *float64
	AverageStride       *float64
	AverageWindSpeed    *float64
	HeadwindPercent     *float64
	TailwindPercent     *float64
	TRIMP               *float64
	PolarizationIndex   *float64
	PowerLoad           *int
	HRLoad              *int
	PaceLoad            *int
	DeviceName          *string
	PowerMeter          *string
	FileType            *string
	Tags                []string
}

// ActivityFromRaw builds an Activity from a raw API response object, mapping
// legacy camelCase aliases (startTime, avgHr, avgPower, ...) onto canonical
// snake_case fields. Canonical keys win when both are present.
func ActivityFromRaw(data map[string]any) Activity {
	return Activity{
		ID:                 firstString(data, "id"),
		Name:               firstString(data, "name"),
		Description:        firstString(data, "description"),
		Type:               safeEnum(sportTypes, data["type"]),
		StartDate:          firstString(data, "start_date", "startTime", "start_date_local"),
		Distance:           firstFloat(data, "distance"),
		ElapsedTime:        firstInt(data, "elapsed_time", "duration"),
		MovingTime:         firstInt(data, "moving_time"),
		TotalElevationGain: firstFloat(data, "total_elevation_gain", "elevationGain"),
		TotalElevationLoss: firstFloat(data, "total_elevation_loss"),
		Trainer:            firstBool(data, "trainer"),
		AverageHeartrate:   firstInt(data, "average_heartrate", "avgHr"),
		MaxHeartrate:       firstInt(data, "max_heartrate"),
		AverageCadence:     firstFloat(data, "average_cadence"),
		Calories:           firstInt(data, "calories"),
		AverageSpeed:       firstFloat(data, "average_speed"),
		MaxSpeed:           firstFloat(data, "max_speed"),
		AverageTemp:        firstFloat(data, "average_temp"),
		MinTemp:            firstInt(data, "min_temp"),
		MaxTemp:            firstInt(data, "max_temp"),
		AvgLRBalance:       firstFloat(data, "avg_lr_balance"),
		PerceivedExertion:  firstFloat(data, "perceived_exertion"),
		Feel:               firstInt(data, "feel"),
		SessionRPE:         firstInt(data, "session_rpe"),
		FTP:                firstInt(data, "icu_ftp"),
		TrainingLoad:       firstInt(data, "icu_training_load", "trainingLoad"),
		ATL:                firstFloat(data, "icu_atl"),
		CTL:                firstFloat(data, "icu_ctl"),
		AverageWatts:       firstInt(data, "icu_average_watts", "avgPower", "average_watts"),
		WeightedAvgWatts:   firstInt(data, "icu_weighted_avg_watts"),
		Joules:             firstInt(data, "icu_joules"),
		Intensity:          firstFloat(data, "icu_intensity"),
		RPE:                firstInt(data, "icu_rpe"),
		PowerHR:            firstFloat(data, "icu_power_hr"),
		VariabilityIndex:   firstFloat(data, "icu_variability_index"),
		RestingHR:          firstInt(data, "icu_resting_hr"),
		Weight:             firstFloat(data, "icu_weight"),
		EfficiencyFactor:   firstFloat(data, "icu_efficiency_factor"),
		LTHR:               firstInt(data, "lthr"),
		Decoupling:         firstFloat(data, "decoupling"),
		AverageStride:      firstFloat(data, "average_stride"),
		AverageWindSpeed:   firstFloat(data, "average_wind_speed"),
		HeadwindPercent:    firstFloat(data, "headwind_percent"),
		TailwindPercent:    firstFloat(data, "tailwind_percent"),
		TRIMP:              firstFloat(data, "trimp"),
		PolarizationIndex:  firstFloat(data, "polarization_index"),
		PowerLoad:          firstInt(data, "power_load"),
		HRLoad:             firstInt(data, "hr_load"),
		PaceLoad:           firstInt(data, "pace_load"),
		DeviceName:         firstString(data, "device_name"),
		PowerMeter:         firstString(data, "power_meter"),
		FileType:           firstString(data, "file_type"),
		Tags:               stringList(data["tags"]),
	}
}
