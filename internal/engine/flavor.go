package engine

// FlavorText returns a sentence about the light outside, appended to the
// descriptions of rooms with a window.
//
// Precondition: period is one of the eight TimePeriod constants.
// Postcondition: Returns a non-empty string when hasWindow, empty otherwise.
func FlavorText(period TimePeriod, hasWindow bool) string {
	if !hasWindow {
		return ""
	}
	switch period {
	case PeriodMidnight:
		return "Outside the window it is pitch black."
	case PeriodLateNight:
		return "The street outside the window is silent and still."
	case PeriodDawn:
		return "The early light of dawn creeps in through the window."
	case PeriodMorning:
		return "Morning sunlight streams in through the window."
	case PeriodAfternoon:
		return "Bright afternoon sun glares through the window."
	case PeriodDusk:
		return "The sky outside the window burns orange and red."
	case PeriodEvening:
		return "Twilight settles outside the window."
	default: // PeriodNight
		return "Stars glitter outside the window."
	}
}
