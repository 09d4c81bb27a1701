package characters

var order = []ID{Bunny, Panda, Bear, Monkey, Horse, Octopus}

var roster = map[ID]Character{
	Bunny: {
		ID:          Bunny,
		Name:        "Bella Bunny",
		Emoji:       "🐰",
		Color:       "#FFB6C1",
		Personality: "Cheerful and bouncy",
		Greetings: []string{
			"Hop hop! Let's learn about time together!",
			"Hello friend! Ready to tell time?",
			"Yay! It's learning time with Bella!",
		},
		Encouragements: []string{
			"Keep hopping! You're doing great!",
			"Almost there! Try again!",
			"Every bunny makes mistakes. Let's try once more!",
		},
		Celebrations: []string{
			"Hoppy hooray! You got it right!",
			"Bouncing brilliant! Amazing work!",
			"You're a time-telling superstar!",
		},
	},
	Panda: {
		ID:          Panda,
		Name:        "Percy Panda",
		Emoji:       "🐼",
		Color:       "#98D8C8",
		Personality: "Calm and wise",
		Greetings: []string{
			"Welcome, little one! Let's learn time together.",
			"Hello there! Percy is here to help!",
			"Ready to become a time master?",
		},
		Encouragements: []string{
			"Take your time. You can do this!",
			"Don't worry, every panda learns step by step.",
			"Close! Let's think about this together.",
		},
		Celebrations: []string{
			"Wonderful! You're so clever!",
			"Bamboo-tastic! That's correct!",
			"You make Percy so proud!",
		},
	},
	Bear: {
		ID:          Bear,
		Name:        "Bruno Bear",
		Emoji:       "🐻",
		Color:       "#DEB887",
		Personality: "Strong and supportive",
		Greetings: []string{
			"Hey there, champ! Time to learn!",
			"Bruno Bear is ready to help you!",
			"Let's tackle time together!",
		},
		Encouragements: []string{
			"You're stronger than you think! Try again!",
			"Bears never give up. Neither should you!",
			"Almost! Give it one more big try!",
		},
		Celebrations: []string{
			"ROAR! You're amazing!",
			"Bear-y impressive work!",
			"That's the spirit! High five!",
		},
	},
	Monkey: {
		ID:          Monkey,
		Name:        "Max Monkey",
		Emoji:       "🐵",
		Color:       "#F4A460",
		Personality: "Playful and energetic",
		Greetings: []string{
			"Ooh ooh! Let's swing into learning!",
			"Hey hey! Max is excited to teach you!",
			"Banana-rama! Time to learn time!",
		},
		Encouragements: []string{
			"Oops! Monkeys make mistakes too. Try again!",
			"So close! Swing back and try once more!",
			"Don't worry, learning is fun! Keep going!",
		},
		Celebrations: []string{
			"Ooh ooh ahh ahh! You nailed it!",
			"Monkey awesome! You're so smart!",
			"Bananas! That was perfect!",
		},
	},
	Horse: {
		ID:          Horse,
		Name:        "Holly Horse",
		Emoji:       "🐴",
		Color:       "#C19A6B",
		Personality: "Graceful and patient",
		Greetings: []string{
			"Neigh there! Ready to gallop through time?",
			"Hello friend! Holly is here to guide you!",
			"Let's trot along the path of learning!",
		},
		Encouragements: []string{
			"Easy does it! You'll get there!",
			"Every great rider slips sometimes. Back in the saddle!",
			"Steady now, try again at your own pace!",
		},
		Celebrations: []string{
			"Magnificent gallop! You did it!",
			"You're racing ahead! Wonderful!",
			"Champion work! Holly is proud!",
		},
	},
	Octopus: {
		ID:          Octopus,
		Name:        "Ollie Octopus",
		Emoji:       "🐙",
		Color:       "#9370DB",
		Personality: "Creative and clever",
		Greetings: []string{
			"Splash! Eight arms ready to help you learn!",
			"Bubble hello! Ollie is here!",
			"Let's dive deep into learning time!",
		},
		Encouragements: []string{
			"Bubble trouble? No worries, try again!",
			"Ollie has 8 arms and still makes mistakes. You've got this!",
			"Swim back and try once more!",
		},
		Celebrations: []string{
			"Ink-redible! You're so smart!",
			"Eight arms up for you! Amazing!",
			"Splash-tastic work! You're a star!",
		},
	},
}
