package quiz

import "slices"

// Bank returns a copy of the built-in question bank.
func Bank() []Question {
	return slices.Clone(bank)
}

var bank = []Question{
	// Lesson 1: What is a Clock?
	{ID: 101, LessonID: 1, Kind: KindMultipleChoice, Prompt: "What does a clock tell us?",
		Options: []string{"The weather", "The time", "The date", "How tall we are"}, Correct: 1,
		Explanation: "A clock tells us what time it is."},
	{ID: 102, LessonID: 1, Kind: KindMultipleChoice, Prompt: "Which number is at the very top of a clock?",
		Options: []string{"1", "6", "12", "3"}, Correct: 2,
		Explanation: "The 12 always sits at the top of the clock face."},
	{ID: 103, LessonID: 1, Kind: KindMultipleChoice, Prompt: "How many numbers are on a clock face?",
		Options: []string{"10", "12", "24", "60"}, Correct: 1,
		Explanation: "A clock face has the numbers 1 through 12."},
	{ID: 104, LessonID: 1, Kind: KindMultipleChoice, Prompt: "Which hand shows the hour?",
		Options: []string{"The long hand", "The short hand", "Both hands", "Neither hand"}, Correct: 1,
		Explanation: "The short hand is the hour hand."},
	{ID: 105, LessonID: 1, Kind: KindMultipleChoice, Prompt: "Which hand shows the minutes?",
		Options: []string{"The short hand", "The long hand", "The 12", "The clock face"}, Correct: 1,
		Explanation: "The long hand is the minute hand."},

	// Lesson 2: Hours
	{ID: 201, LessonID: 2, Kind: KindTimeMatch, Prompt: "The short hand points to 5. What hour is it?", TimeShown: "5:00",
		Options: []string{"4", "5", "6", "12"}, Correct: 1,
		Explanation: "The hour is the number the short hand points to: 5."},
	{ID: 202, LessonID: 2, Kind: KindMultipleChoice, Prompt: "How many hours are in one day?",
		Options: []string{"12", "24", "60", "7"}, Correct: 1,
		Explanation: "A day has 24 hours. The hour hand goes around twice."},
	{ID: 203, LessonID: 2, Kind: KindMultipleChoice, Prompt: "How long does the short hand take to move from one number to the next?",
		Options: []string{"One minute", "One hour", "One day", "One second"}, Correct: 1,
		Explanation: "The hour hand moves one number every hour."},
	{ID: 204, LessonID: 2, Kind: KindTimeMatch, Prompt: "The short hand is between 8 and 9. What hour is it?", TimeShown: "8:40",
		Options: []string{"8", "9", "10", "7"}, Correct: 0,
		Explanation: "When the short hand is between two numbers, the hour is the smaller one: 8."},
	{ID: 205, LessonID: 2, Kind: KindMultipleChoice, Prompt: "How many times does the hour hand go around the clock in one day?",
		Options: []string{"Once", "Twice", "Three times", "Twelve times"}, Correct: 1,
		Explanation: "It goes around once in the morning and once in the afternoon and night."},

	// Lesson 3: O'Clock
	{ID: 301, LessonID: 3, Kind: KindTimeMatch, Prompt: "What time does this clock show?", TimeShown: "3:00",
		Options: []string{"3 o'clock", "12 o'clock", "Half past 3", "6 o'clock"}, Correct: 0,
		Explanation: "Short hand on 3 and long hand on 12 means 3 o'clock."},
	{ID: 302, LessonID: 3, Kind: KindMultipleChoice, Prompt: "Where is the long hand at o'clock?",
		Options: []string{"On the 6", "On the 3", "On the 12", "On the 9"}, Correct: 2,
		Explanation: "At any o'clock time the long hand points straight up to 12."},
	{ID: 303, LessonID: 3, Kind: KindFillBlank, Prompt: "7 o'clock is written as 7:__",
		Options: []string{"07", "00", "30", "12"}, Correct: 1,
		Explanation: "O'clock times end with :00, so 7 o'clock is 7:00."},
	{ID: 304, LessonID: 3, Kind: KindTimeMatch, Prompt: "What time does this clock show?", TimeShown: "10:00",
		Options: []string{"12 o'clock", "2 o'clock", "10 o'clock", "11 o'clock"}, Correct: 2,
		Explanation: "Short hand on 10 and long hand on 12 means 10 o'clock."},
	{ID: 305, LessonID: 3, Kind: KindMultipleChoice, Prompt: "Which of these is an o'clock time?",
		Options: []string{"4:30", "4:15", "4:00", "4:45"}, Correct: 2,
		Explanation: "4:00 ends in :00, so it's 4 o'clock."},

	// Lesson 4: Half Past
	{ID: 401, LessonID: 4, Kind: KindTimeMatch, Prompt: "What time does this clock show?", TimeShown: "2:30",
		Options: []string{"2 o'clock", "Half past 2", "Half past 3", "Quarter past 2"}, Correct: 1,
		Explanation: "The long hand on 6 means half past. The short hand is past 2."},
	{ID: 402, LessonID: 4, Kind: KindMultipleChoice, Prompt: "How many minutes are in half an hour?",
		Options: []string{"15", "20", "30", "60"}, Correct: 2,
		Explanation: "An hour has 60 minutes, so half an hour is 30 minutes."},
	{ID: 403, LessonID: 4, Kind: KindMultipleChoice, Prompt: "Where does the long hand point at half past?",
		Options: []string{"12", "3", "6", "9"}, Correct: 2,
		Explanation: "Halfway around the clock is the 6."},
	{ID: 404, LessonID: 4, Kind: KindFillBlank, Prompt: "Half past 9 is written as 9:__",
		Options: []string{"15", "30", "45", "00"}, Correct: 1,
		Explanation: "Half past means 30 minutes after, so it's 9:30."},
	{ID: 405, LessonID: 4, Kind: KindTimeMatch, Prompt: "What time does this clock show?", TimeShown: "11:30",
		Options: []string{"Half past 11", "Half past 12", "11 o'clock", "Half past 10"}, Correct: 0,
		Explanation: "The long hand is on 6 and the short hand is just past 11: half past 11."},

	// Lesson 5: Quarter Past and Quarter To
	{ID: 501, LessonID: 5, Kind: KindTimeMatch, Prompt: "What time does this clock show?", TimeShown: "4:15",
		Options: []string{"Quarter to 4", "Quarter past 4", "Half past 4", "Quarter past 3"}, Correct: 1,
		Explanation: "The long hand on 3 means quarter past. The short hand is past 4."},
	{ID: 502, LessonID: 5, Kind: KindMultipleChoice, Prompt: "How many minutes are in a quarter of an hour?",
		Options: []string{"10", "15", "25", "30"}, Correct: 1,
		Explanation: "60 minutes split into four quarters is 15 minutes each."},
	{ID: 503, LessonID: 5, Kind: KindTimeMatch, Prompt: "What time does this clock show?", TimeShown: "7:45",
		Options: []string{"Quarter past 7", "Quarter to 7", "Quarter to 8", "Half past 7"}, Correct: 2,
		Explanation: "7:45 is 15 minutes before 8, so it's quarter to 8."},
	{ID: 504, LessonID: 5, Kind: KindMultipleChoice, Prompt: "Where does the long hand point at quarter to?",
		Options: []string{"3", "6", "9", "12"}, Correct: 2,
		Explanation: "At quarter to, the long hand points to 9."},
	{ID: 505, LessonID: 5, Kind: KindFillBlank, Prompt: "Quarter past 1 is written as 1:__",
		Options: []string{"15", "45", "30", "25"}, Correct: 0,
		Explanation: "Quarter past means 15 minutes after the hour: 1:15."},

	// Lesson 6: Counting by Fives
	{ID: 601, LessonID: 6, Kind: KindMultipleChoice, Prompt: "The long hand points to 4. How many minutes is that?",
		Options: []string{"4", "15", "20", "40"}, Correct: 2,
		Explanation: "Count by fives: 5, 10, 15, 20. The 4 means 20 minutes."},
	{ID: 602, LessonID: 6, Kind: KindTimeMatch, Prompt: "What time does this clock show?", TimeShown: "3:10",
		Options: []string{"3:02", "3:10", "2:10", "3:50"}, Correct: 1,
		Explanation: "The long hand on 2 means 10 minutes. The short hand is past 3."},
	{ID: 603, LessonID: 6, Kind: KindMultipleChoice, Prompt: "How many minutes apart are two numbers next to each other for the long hand?",
		Options: []string{"1", "5", "10", "12"}, Correct: 1,
		Explanation: "Each number is 5 minutes apart."},
	{ID: 604, LessonID: 6, Kind: KindTimeMatch, Prompt: "What time does this clock show?", TimeShown: "6:55",
		Options: []string{"6:11", "7:55", "6:55", "6:50"}, Correct: 2,
		Explanation: "The long hand on 11 is 55 minutes. The short hand is almost at 7, so it's still 6."},
	{ID: 605, LessonID: 6, Kind: KindMultipleChoice, Prompt: "The long hand points to 8. How many minutes is that?",
		Options: []string{"8", "35", "40", "45"}, Correct: 2,
		Explanation: "8 times 5 is 40 minutes."},

	// Lesson 7: AM and PM
	{ID: 701, LessonID: 7, Kind: KindMultipleChoice, Prompt: "You wake up at 7:00. Is that AM or PM?",
		Options: []string{"AM", "PM"}, Correct: 0,
		Explanation: "Waking up happens in the morning, so it's AM."},
	{ID: 702, LessonID: 7, Kind: KindMultipleChoice, Prompt: "You eat dinner at 6:00. Is that AM or PM?",
		Options: []string{"AM", "PM"}, Correct: 1,
		Explanation: "Dinner happens in the evening, so it's PM."},
	{ID: 703, LessonID: 7, Kind: KindMultipleChoice, Prompt: "What is 12:00 PM called?",
		Options: []string{"Midnight", "Noon", "Morning", "Bedtime"}, Correct: 1,
		Explanation: "12:00 PM is noon, the middle of the day."},
	{ID: 704, LessonID: 7, Kind: KindMultipleChoice, Prompt: "AM times go from midnight until...",
		Options: []string{"Breakfast", "Noon", "Dinner", "Bedtime"}, Correct: 1,
		Explanation: "AM runs from midnight until noon."},
	{ID: 705, LessonID: 7, Kind: KindMultipleChoice, Prompt: "Which activity usually happens in the PM?",
		Options: []string{"Eating breakfast", "Watching the sunrise", "Going to bed", "Waking up"}, Correct: 2,
		Explanation: "Bedtime is at night, which is PM."},

	// Lesson 8: How Much Time?
	{ID: 801, LessonID: 8, Kind: KindMultipleChoice, Prompt: "Art class starts at 1:00 and ends at 2:00. How long is it?",
		Options: []string{"30 minutes", "1 hour", "2 hours", "15 minutes"}, Correct: 1,
		Explanation: "From 1:00 to 2:00 the long hand goes around once: 1 hour."},
	{ID: 802, LessonID: 8, Kind: KindMultipleChoice, Prompt: "Recess starts at 10:15 and ends at 10:45. How long is recess?",
		Options: []string{"15 minutes", "30 minutes", "45 minutes", "1 hour"}, Correct: 1,
		Explanation: "From 15 to 45 is 30 minutes."},
	{ID: 803, LessonID: 8, Kind: KindMultipleChoice, Prompt: "It's 3:00. What time will it be in 30 minutes?",
		Options: []string{"3:15", "3:30", "4:00", "3:45"}, Correct: 1,
		Explanation: "30 minutes after 3:00 is 3:30."},
	{ID: 804, LessonID: 8, Kind: KindMultipleChoice, Prompt: "A movie starts at 5:00 and lasts 2 hours. When does it end?",
		Options: []string{"6:00", "7:00", "5:30", "8:00"}, Correct: 1,
		Explanation: "5:00 plus 2 hours is 7:00."},
	{ID: 805, LessonID: 8, Kind: KindMultipleChoice, Prompt: "Soccer starts at 4:00 and ends at 5:30. How long is it?",
		Options: []string{"1 hour", "30 minutes", "1 hour 30 minutes", "2 hours"}, Correct: 2,
		Explanation: "4:00 to 5:00 is 1 hour, then 30 more minutes."},
}
