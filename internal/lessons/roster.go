package lessons

var roster = []Lesson{
	{
		ID:          1,
		Title:       "What is a Clock?",
		Description: "Meet the clock face, its numbers, and its two hands.",
		Difficulty:  Beginner,
		Icon:        "🕐",
		Color:       "#FFB6C1",
		Steps: []Step{
			{
				ID:               1,
				Kind:             StepExplanation,
				Title:            "Hello, Clock!",
				Content:          "A clock tells us what time it is. It helps us know when to wake up, eat lunch, and go to bed.",
				CharacterMessage: "Clocks are everywhere! Can you spot one in your room?",
			},
			{
				ID:      2,
				Kind:    StepExplanation,
				Title:   "The Numbers",
				Content: "A clock face has the numbers 1 to 12 going around in a circle. The 12 sits at the very top.",
				FunFact: "The first clocks people used were sundials, which read time from shadows!",
			},
			{
				ID:          3,
				Kind:        StepExplanation,
				Title:       "Two Hands",
				Content:     "A clock has a short hand and a long hand. The short hand shows the hour. The long hand shows the minutes.",
				TimeExample: "3:00",
				Hint:        "Short hand = hour. Long hand = minutes.",
			},
			{
				ID:               4,
				Kind:             StepPractice,
				Title:            "Which Hand Is Which?",
				Content:          "Look at the clock. The short hand points to 3 and the long hand points to 12. The short hand is telling us the hour: 3!",
				TimeExample:      "3:00",
				CharacterMessage: "You found the hour hand! Great looking!",
			},
		},
	},
	{
		ID:              2,
		Title:           "Hours",
		Description:     "Learn how the short hand counts the hours of the day.",
		Difficulty:      Beginner,
		Icon:            "⏰",
		Color:           "#98D8C8",
		RequiredLessons: []int{1},
		Steps: []Step{
			{
				ID:      1,
				Kind:    StepExplanation,
				Title:   "The Hour Hand",
				Content: "The short hand moves slowly. It takes a whole hour to go from one number to the next.",
			},
			{
				ID:          2,
				Kind:        StepExplanation,
				Title:       "Reading the Hour",
				Content:     "Look at the number the short hand points to. That number is the hour.",
				TimeExample: "7:00",
				Hint:        "If the short hand is between two numbers, the hour is the smaller one.",
			},
			{
				ID:      3,
				Kind:    StepExplanation,
				Title:   "A Day Has 24 Hours",
				Content: "The short hand goes around the clock two times every day: once in the morning and once in the afternoon and night.",
				FunFact: "That means the hour hand travels around the clock 730 times in a year!",
			},
			{
				ID:               4,
				Kind:             StepPractice,
				Title:            "Your Turn",
				Content:          "The short hand points to 9. What hour is it? It is 9!",
				TimeExample:      "9:00",
				CharacterMessage: "You're getting the hang of hours!",
			},
		},
	},
	{
		ID:              3,
		Title:           "O'Clock",
		Description:     "When the long hand points to 12, it's something o'clock.",
		Difficulty:      Beginner,
		Icon:            "🕒",
		Color:           "#DEB887",
		RequiredLessons: []int{2},
		Steps: []Step{
			{
				ID:      1,
				Kind:    StepExplanation,
				Title:   "Long Hand at the Top",
				Content: "When the long hand points straight up at 12, the time is exactly on the hour. We say o'clock.",
			},
			{
				ID:          2,
				Kind:        StepExplanation,
				Title:       "Saying O'Clock",
				Content:     "Short hand on 4, long hand on 12: it's 4 o'clock. We write it as 4:00.",
				TimeExample: "4:00",
			},
			{
				ID:      3,
				Kind:    StepInteractive,
				Title:   "Digital O'Clock",
				Content: "On a digital clock, o'clock times end with :00. So 8:00 means 8 o'clock.",
				Hint:    "Two zeros after the colon means o'clock!",
				FunFact: "O'clock is short for \"of the clock\".",
			},
			{
				ID:               4,
				Kind:             StepPractice,
				Title:            "Practice",
				Content:          "The short hand is on 11 and the long hand is on 12. It's 11 o'clock!",
				TimeExample:      "11:00",
				CharacterMessage: "O'clock is your new superpower!",
			},
		},
	},
	{
		ID:              4,
		Title:           "Half Past",
		Description:     "When the long hand points to 6, half an hour has passed.",
		Difficulty:      Intermediate,
		Icon:            "🕧",
		Color:           "#F4A460",
		RequiredLessons: []int{3},
		Steps: []Step{
			{
				ID:      1,
				Kind:    StepExplanation,
				Title:   "Half of an Hour",
				Content: "An hour has 60 minutes. Half of an hour is 30 minutes.",
			},
			{
				ID:          2,
				Kind:        StepExplanation,
				Title:       "Long Hand on 6",
				Content:     "When the long hand points to 6, it has gone halfway around the clock. We say half past the hour.",
				TimeExample: "2:30",
				Hint:        "At half past, the short hand sits between two numbers.",
			},
			{
				ID:      3,
				Kind:    StepExplanation,
				Title:   "Writing Half Past",
				Content: "Half past 2 is written 2:30. The 30 means 30 minutes after 2 o'clock.",
				FunFact: "Some people say \"two thirty\" and some say \"half past two\". Both are right!",
			},
			{
				ID:               4,
				Kind:             StepPractice,
				Title:            "Practice",
				Content:          "The long hand is on 6 and the short hand is just past 5. It's half past 5, or 5:30!",
				TimeExample:      "5:30",
				CharacterMessage: "Halfway there and doing great!",
			},
		},
	},
	{
		ID:              5,
		Title:           "Quarter Past and Quarter To",
		Description:     "Split the hour into four quarters.",
		Difficulty:      Intermediate,
		Icon:            "🕞",
		Color:           "#C19A6B",
		RequiredLessons: []int{4},
		Steps: []Step{
			{
				ID:      1,
				Kind:    StepExplanation,
				Title:   "Four Quarters",
				Content: "If you cut the clock into four equal parts, each part is 15 minutes. That's a quarter of an hour.",
			},
			{
				ID:          2,
				Kind:        StepExplanation,
				Title:       "Quarter Past",
				Content:     "When the long hand points to 3, it's 15 minutes after the hour. We say quarter past.",
				TimeExample: "6:15",
			},
			{
				ID:          3,
				Kind:        StepExplanation,
				Title:       "Quarter To",
				Content:     "When the long hand points to 9, it's 15 minutes before the next hour. We say quarter to.",
				TimeExample: "6:45",
				Hint:        "6:45 is quarter to 7, because 7 o'clock is coming next.",
			},
			{
				ID:               4,
				Kind:             StepPractice,
				Title:            "Practice",
				Content:          "The long hand is on 3 and the short hand is just past 10. It's quarter past 10, or 10:15!",
				TimeExample:      "10:15",
				CharacterMessage: "Quarter past, quarter to. You know them both!",
				FunFact:          "A quarter of a dollar is 25 cents, but a quarter of an hour is 15 minutes!",
			},
		},
	},
	{
		ID:              6,
		Title:           "Counting by Fives",
		Description:     "Read any minute by counting the numbers by fives.",
		Difficulty:      Intermediate,
		Icon:            "🖐️",
		Color:           "#9370DB",
		RequiredLessons: []int{4},
		Steps: []Step{
			{
				ID:      1,
				Kind:    StepExplanation,
				Title:   "Five Minutes Each",
				Content: "Each number on the clock is 5 minutes apart for the long hand. 1 means 5 minutes, 2 means 10 minutes, and so on.",
			},
			{
				ID:          2,
				Kind:        StepInteractive,
				Title:       "Count Along",
				Content:     "Point at each number and count: 5, 10, 15, 20, 25, 30, 35, 40, 45, 50, 55!",
				Hint:        "Multiply the number by 5 to get the minutes.",
				TimeExample: "8:20",
			},
			{
				ID:      3,
				Kind:    StepExplanation,
				Title:   "The Little Lines",
				Content: "Between the numbers are small lines. Each small line is one minute.",
				FunFact: "There are 60 little minute lines all the way around a clock.",
			},
			{
				ID:               4,
				Kind:             StepPractice,
				Title:            "Practice",
				Content:          "The long hand is on 7. Count by fives: 35 minutes! If the short hand is past 1, it's 1:35.",
				TimeExample:      "1:35",
				CharacterMessage: "High five for counting by fives!",
			},
		},
	},
	{
		ID:              7,
		Title:           "AM and PM",
		Description:     "Tell morning times from afternoon and night times.",
		Difficulty:      Intermediate,
		Icon:            "🌗",
		Color:           "#4FC3F7",
		RequiredLessons: []int{3},
		Steps: []Step{
			{
				ID:      1,
				Kind:    StepExplanation,
				Title:   "Twice Around",
				Content: "Every time shows up twice a day. 7:00 can be breakfast time or dinner time!",
			},
			{
				ID:      2,
				Kind:    StepExplanation,
				Title:   "AM",
				Content: "AM times go from midnight until noon. Waking up and going to school happen in the AM.",
				Hint:    "AM: morning. The sun is coming up.",
			},
			{
				ID:      3,
				Kind:    StepExplanation,
				Title:   "PM",
				Content: "PM times go from noon until midnight. Lunch, playtime after school, and bedtime happen in the PM.",
				FunFact: "12:00 PM is noon and 12:00 AM is midnight.",
			},
			{
				ID:               4,
				Kind:             StepPractice,
				Title:            "Practice",
				Content:          "You eat breakfast at 7:30. Is that AM or PM? It's AM, because it's in the morning!",
				TimeExample:      "7:30",
				CharacterMessage: "Morning or night, you've got it right!",
			},
		},
	},
	{
		ID:              8,
		Title:           "How Much Time?",
		Description:     "Work out how long something takes from start to finish.",
		Difficulty:      Advanced,
		Icon:            "⏳",
		Color:           "#FF7043",
		RequiredLessons: []int{5, 6},
		Steps: []Step{
			{
				ID:      1,
				Kind:    StepExplanation,
				Title:   "Elapsed Time",
				Content: "Elapsed time is how much time goes by between a start time and an end time.",
			},
			{
				ID:          2,
				Kind:        StepExplanation,
				Title:       "Counting Forward",
				Content:     "Start at 2:00. Move the long hand all the way around once and it's 3:00. One hour has gone by!",
				TimeExample: "3:00",
				Hint:        "One full trip of the long hand is one hour.",
			},
			{
				ID:      3,
				Kind:    StepInteractive,
				Title:   "Minutes Add Up",
				Content: "Recess starts at 10:15 and ends at 10:45. Count by fives from 15 to 45: that's 30 minutes.",
				FunFact: "A movie is usually around 90 minutes long. That's an hour and a half!",
			},
			{
				ID:               4,
				Kind:             StepPractice,
				Title:            "Practice",
				Content:          "Soccer starts at 4:00 and ends at 5:30. How long is it? 1 hour and 30 minutes!",
				TimeExample:      "5:30",
				CharacterMessage: "You're a real time detective now!",
			},
		},
	},
}
