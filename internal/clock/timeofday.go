// Package clock holds time-telling helpers: time-of-day context, spoken
// times, formatting, and an ASCII clock face.
package clock

// Period names a part of the day.
type Period string

const (
	EarlyMorning Period = "early-morning"
	Morning      Period = "morning"
	LateMorning  Period = "late-morning"
	Noon         Period = "noon"
	Afternoon    Period = "afternoon"
	Evening      Period = "evening"
	Night        Period = "night"
	LateNight    Period = "late-night"
)

// Context describes what a part of the day is like.
type Context struct {
	Period Period

	// StartHour and EndHour bound the period as [StartHour, EndHour).
	// LateNight wraps midnight, so its StartHour is greater than EndHour.
	StartHour int
	EndHour   int

	Greeting   string
	Activity   string
	Nature     string
	Emoji      string
	Color      string
	Activities []string
}

var contexts = []Context{
	{
		Period: EarlyMorning, StartHour: 5, EndHour: 7,
		Greeting:   "Very Early Morning",
		Activity:   "It's super early! Most people are still sleeping, but the sun is starting to wake up.",
		Nature:     "The sky is getting lighter as the sun begins to rise.",
		Emoji:      "🌅",
		Color:      "#FD746C",
		Activities: []string{"Getting up early", "Watching the sunrise", "Morning stretch"},
	},
	{
		Period: Morning, StartHour: 7, EndHour: 9,
		Greeting:   "Good Morning!",
		Activity:   "It's breakfast time! Time to eat yummy food and get ready for the day ahead.",
		Nature:     "The sun is rising and the birds are singing their morning songs.",
		Emoji:      "🌞",
		Color:      "#FF9A56",
		Activities: []string{"Eating breakfast", "Brushing teeth", "Getting dressed for school"},
	},
	{
		Period: LateMorning, StartHour: 9, EndHour: 12,
		Greeting:   "Late Morning",
		Activity:   "School time or playtime! It's a great time to learn new things or play with friends.",
		Nature:     "The sun is climbing higher in the sky. It's getting brighter outside!",
		Emoji:      "☀️",
		Color:      "#87CEEB",
		Activities: []string{"Learning at school", "Reading books", "Playing outside"},
	},
	{
		Period: Noon, StartHour: 12, EndHour: 13,
		Greeting:   "Noon - Lunchtime!",
		Activity:   "It's the middle of the day! Time for lunch and a little break.",
		Nature:     "The sun is at its highest point in the sky. Shadows are at their shortest!",
		Emoji:      "🌤️",
		Color:      "#4FC3F7",
		Activities: []string{"Eating lunch", "Taking a break", "Talking with friends"},
	},
	{
		Period: Afternoon, StartHour: 13, EndHour: 17,
		Greeting:   "Good Afternoon!",
		Activity:   "Afternoon activities! Maybe homework, sports, or playing with friends.",
		Nature:     "The sun is slowly moving across the sky towards the horizon.",
		Emoji:      "⛅",
		Color:      "#64B5F6",
		Activities: []string{"Afternoon classes", "Doing homework", "Playing sports"},
	},
	{
		Period: Evening, StartHour: 17, EndHour: 20,
		Greeting:   "Good Evening!",
		Activity:   "Dinner time is near! It's time to wind down and enjoy family time.",
		Nature:     "The sun is setting, painting the sky with orange and pink colors.",
		Emoji:      "🌆",
		Color:      "#FF7043",
		Activities: []string{"Eating dinner", "Family time", "Playing games"},
	},
	{
		Period: Night, StartHour: 20, EndHour: 22,
		Greeting:   "Nighttime",
		Activity:   "It's getting late! Time for a bath, story time, and getting ready for bed.",
		Nature:     "The moon and stars are coming out. The sky is turning dark blue and purple.",
		Emoji:      "🌙",
		Color:      "#5C6BC0",
		Activities: []string{"Bath time", "Reading stories", "Getting ready for bed"},
	},
	{
		Period: LateNight, StartHour: 22, EndHour: 5,
		Greeting:   "Late Night",
		Activity:   "Shhh... It's bedtime! Time to sleep and dream wonderful dreams.",
		Nature:     "The moon is bright and the stars are twinkling. Everything is peaceful and quiet.",
		Emoji:      "🌛",
		Color:      "#7986CB",
		Activities: []string{"Sleeping", "Having sweet dreams", "Resting"},
	},
}

// Contexts returns every period in day order starting at early morning.
func Contexts() []Context {
	out := make([]Context, len(contexts))
	copy(out, contexts)
	return out
}

// ContextFor returns the period containing hour (0-23).
func ContextFor(hour int) Context {
	hour = ((hour % 24) + 24) % 24
	for _, c := range contexts {
		if c.contains(hour) {
			return c
		}
	}
	return contexts[len(contexts)-1]
}

func (c Context) contains(hour int) bool {
	if c.StartHour > c.EndHour {
		return hour >= c.StartHour || hour < c.EndHour
	}
	return hour >= c.StartHour && hour < c.EndHour
}

// ActivitySuggestions returns things children usually do at this hour.
func ActivitySuggestions(hour int) []string {
	return ContextFor(hour).Activities
}

// RelativeMessage returns a short note about what is coming up, or "" when
// nothing special is happening.
func RelativeMessage(hour, minute int) string {
	total := hour*60 + minute
	switch {
	case total >= 7*60 && total < 8*60:
		return "Almost time for breakfast!"
	case total >= 8*60 && total < 9*60:
		return "School is starting soon!"
	case total >= 12*60 && total < 13*60:
		return "Lunchtime! Yummy!"
	case total >= 15*60 && total < 16*60:
		return "Afternoon snack time!"
	case total >= 18*60 && total < 19*60:
		return "Dinner time is here!"
	case total >= 20*60 && total < 21*60:
		return "Getting close to bedtime!"
	}
	return ""
}

// BuddyMessage is what a buddy says about the current hour on the clock
// screen.
func BuddyMessage(hour int) string {
	switch ContextFor(hour).Period {
	case EarlyMorning:
		return "Shh! It's so early. Even the birds are yawning!"
	case Morning:
		return "Good morning! Time to get up and have breakfast!"
	case LateMorning:
		return "The morning is zooming by. What are you learning today?"
	case Noon:
		return "The short hand and the long hand both point to 12 at noon!"
	case Afternoon:
		return "Afternoons are great for playing outside!"
	case Evening:
		return "The sun is going down. Dinner smells yummy!"
	case Night:
		return "It's getting dark. Time for pajamas and a story!"
	default:
		return "Zzz... it's sleepy time. See you in the morning!"
	}
}
