package schema

// ActivityInterval is one entry of the icu_intervals array in an intervals
// response.
type ActivityInterval struct {
	Label              *string
	Type               *string
	ElapsedTime        *int
	MovingTime         *int
	Distance           *float64
	StartIndex         *int
	EndIndex           *int
	AverageWatts       *int
	AverageWattsKg     *float64
	MaxWatts           *int
	MaxWattsKg         *float64
	WeightedAvgWatts   *int
	Intensity          *float64
	TrainingLoad       *float64
	Joules             *int
	JoulesAboveFTP     *int
	Zone               *int
	ZoneMinWatts       *int
	ZoneMaxWatts       *int
	WBalStart          *int
	WBalEnd            *int
	AvgLRBalance       *float64
	W5sVariability     *float64
	AverageTorque      *float64
	MinTorque          *float64
	MaxTorque          *float64
	AverageHeartrate   *int
	MinHeartrate       *int
	MaxHeartrate       *int
	Decoupling         *float64
	AverageDFAa1       *float64
	AverageRespiration *float64
	AverageEPOC        *float64
	AverageSmO2        *float64
	AverageSmO22       *float64
	AverageTHb         *float64
	AverageTHb2        *float64
	AverageSpeed       *float64
	MinSpeed           *float64
	MaxSpeed           *float64
	GAP                *float64
	AverageCadence     *float64
	MinCadence         *int
	MaxCadence         *int
	AverageStride      *float64
	TotalElevationGain *float64
	MinAltitude        *float64
	MaxAltitude        *float64
	AverageGradient    *float64
	AverageTemp        *float64
	AverageWeatherTemp *float64
	AverageFeelsLike   *float64
	AverageWindSpeed   *float64
	AverageWindGust    *float64
	PrevailingWindDeg  *int
	HeadwindPercent    *float64
	TailwindPercent    *float64
}

func ActivityIntervalFromRaw(data map[string]any) ActivityInterval {
	return ActivityInterval{
		Label:              firstString(data, "label"),
		Type:               firstString(data, "type"),
		ElapsedTime:        firstInt(data, "elapsed_time"),
		MovingTime:         firstInt(data, "moving_time"),
		Distance:           firstFloat(data, "distance"),
		StartIndex:         firstInt(data, "start_index"),
		EndIndex:           firstInt(data, "end_index"),
		AverageWatts:       firstInt(data, "average_watts"),
		AverageWattsKg:     firstFloat(data, "average_watts_kg"),
		MaxWatts:           firstInt(data, "max_watts"),
		MaxWattsKg:         firstFloat(data, "max_watts_kg"),
		WeightedAvgWatts:   firstInt(data, "weighted_average_watts"),
		Intensity:          firstFloat(data, "intensity"),
		TrainingLoad:       firstFloat(data, "training_load"),
		Joules:             firstInt(data, "joules"),
		JoulesAboveFTP:     firstInt(data, "joules_above_ftp"),
		Zone:               firstInt(data, "zone"),
		ZoneMinWatts:       firstInt(data, "zone_min_watts"),
		ZoneMaxWatts:       firstInt(data, "zone_max_watts"),
		WBalStart:          firstInt(data, "wbal_start"),
		WBalEnd:            firstInt(data, "wbal_end"),
		AvgLRBalance:       firstFloat(data, "avg_lr_balance"),
		W5sVariability:     firstFloat(data, "w5s_variability"),
		AverageTorque:      firstFloat(data, "average_torque"),
		MinTorque:          firstFloat(data, "min_torque"),
		MaxTorque:          firstFloat(data, "max_torque"),
		AverageHeartrate:   firstInt(data, "average_heartrate"),
		MinHeartrate:       firstInt(data, "min_heartrate"),
		MaxHeartrate:       firstInt(data, "max_heartrate"),
		Decoupling:         firstFloat(data, "decoupling"),
		AverageDFAa1:       firstFloat(data, "average_dfa_a1"),
		AverageRespiration: firstFloat(data, "average_respiration"),
		AverageEPOC:        firstFloat(data, "average_epoc"),
		AverageSmO2:        firstFloat(data, "average_smo2"),
		AverageSmO22:       firstFloat(data, "average_smo2_2"),
		AverageTHb:         firstFloat(data, "average_thb"),
		AverageTHb2:        firstFloat(data, "average_thb_2"),
		AverageSpeed:       firstFloat(data, "average_speed"),
		MinSpeed:           firstFloat(data, "min_speed"),
		MaxSpeed:           firstFloat(data, "max_speed"),
		GAP:                firstFloat(data, "gap"),
		AverageCadence:     firstFloat(data, "average_cadence"),
		MinCadence:         firstInt(data, "min_cadence"),
		MaxCadence:         firstInt(data, "max_cadence"),
		AverageStride:      firstFloat(data, "average_stride"),
		TotalElevationGain: firstFloat(data, "total_elevation_gain"),
		MinAltitude:        firstFloat(data, "min_altitude"),
		MaxAltitude:        firstFloat(data, "max_altitude"),
		AverageGradient:    firstFloat(data, "average_gradient"),
		AverageTemp:        firstFloat(data, "average_temp"),
		AverageWeatherTemp: firstFloat(data, "average_weather_temp"),
		AverageFeelsLike:   firstFloat(data, "average_feels_like"),
		AverageWindSpeed:   firstFloat(data, "average_wind_speed"),
		AverageWindGust:    firstFloat(data, "average_wind_gust"),
		PrevailingWindDeg:  firstInt(data, "prevailing_wind_deg"),
		HeadwindPercent:    firstFloat(data, "headwind_percent"),
		TailwindPercent:    firstFloat(data, "tailwind_percent"),
	}
}

// IntervalGroup is one entry of the icu_groups array.
type IntervalGroup struct {
	ID               *string
	Count            *int
	ElapsedTime      *int
	MovingTime       *int
	Distance         *float64
	StartIndex       *int
	AverageWatts     *int
	AverageWattsKg   *float64
	MaxWatts         *int
	WeightedAvgWatts *int
	Intensity        *float64
	AverageHeartrate *int
	MaxHeartrate     *int
	AverageSpeed     *float64
	MaxSpeed         *float64
	AverageCadence   *float64
	MaxCadence       *int
}

func IntervalGroupFromRaw(data map[string]any) IntervalGroup {
	return IntervalGroup{
		ID:               firstString(data, "id"),
		Count:            firstInt(data, "count"),
		ElapsedTime:      firstInt(data, "elapsed_time"),
		MovingTime:       firstInt(data, "moving_time"),
		Distance:         firstFloat(data, "distance"),
		StartIndex:       firstInt(data, "start_index"),
		AverageWatts:     firstInt(data, "average_watts"),
		AverageWattsKg:   firstFloat(data, "average_watts_kg"),
		MaxWatts:         firstInt(data, "max_watts"),
		WeightedAvgWatts: firstInt(data, "weighted_average_watts"),
		Intensity:        firstFloat(data, "intensity"),
		AverageHeartrate: firstInt(data, "average_heartrate"),
		MaxHeartrate:     firstInt(data, "max_heartrate"),
		AverageSpeed:     firstFloat(data, "average_speed"),
		MaxSpeed:         firstFloat(data, "max_speed"),
		AverageCadence:   firstFloat(data, "average_cadence"),
		MaxCadence:       firstInt(data, "max_cadence"),
	}
}

// IntervalsData is the top-level intervals response.
type IntervalsData struct {
	ID        *string
	Analyzed  any
	Intervals []ActivityInterval
	Groups    []IntervalGroup
}

func IntervalsDataFromRaw(data map[string]any) IntervalsData {
	out := IntervalsData{
		ID:       firstString(data, "id"),
		Analyzed: data["analyzed"],
	}
	for _, m := range ObjectItems(firstList(data, "icu_intervals"), "icu_intervals") {
		out.Intervals = append(out.Intervals, ActivityIntervalFromRaw(m))
	}
	for _, m := range ObjectItems(firstList(data, "icu_groups"), "icu_groups") {
		out.Groups = append(out.Groups, IntervalGroupFromRaw(m))
	}
	return out
}

// ActivityMessage is a note or comment attached to an activity.
type ActivityMessage struct {
	Name    *string
	Created *string
	Type    *string
	Content *string
}

func ActivityMessageFromRaw(data map[string]any) ActivityMessage {
	return ActivityMessage{
		Name:    firstString(data, "name"),
		Created: firstString(data, "created"),
		Type:    firstString(data, "type"),
		Content: firstString(data, "content"),
	}
}
