package clock

import (
	"math"
	"strconv"
	"strings"
)

// Face draws an analog clock showing hour:minute as text lines. radius is
// measured in rows; columns are doubled to keep the face round in a
// terminal. Radii below 4 are raised to 4.
func Face(hour, minute, radius int) []string {
	if radius < 4 {
		radius = 4
	}
	rows := 2*radius + 1
	cols := 4*radius + 1
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", cols))
	}
	cx, cy := 2*radius, radius

	put := func(x, y int, r rune) {
		if y >= 0 && y < rows && x >= 0 && x < cols {
			grid[y][x] = r
		}
	}
	// polar maps an angle (0 = 12 o'clock, clockwise) and a length in rows
	// to grid coordinates.
	polar := func(angle, length float64) (int, int) {
		x := cx + int(math.Round(2*length*math.Sin(angle)))
		y := cy - int(math.Round(length*math.Cos(angle)))
		return x, y
	}

	// Rim.
	for step := range 96 {
		a := 2 * math.Pi * float64(step) / 96
		x, y := polar(a, float64(radius))
		put(x, y, '·')
	}

	minuteAngle := 2 * math.Pi * float64(minute) / 60
	hourAngle := 2 * math.Pi * (float64(hour%12) + float64(minute)/60) / 12

	drawHand := func(angle, length float64, r rune) {
		steps := int(length * 4)
		for i := 1; i <= steps; i++ {
			x, y := polar(angle, length*float64(i)/float64(steps))
			if x == cx && y == cy {
				continue
			}
			put(x, y, r)
		}
	}
	drawHand(minuteAngle, float64(radius)-1.5, '•')
	drawHand(hourAngle, float64(radius)*0.5, '█')

	// Numbers just inside the rim, drawn over the hands.
	for n := 1; n <= 12; n++ {
		a := 2 * math.Pi * float64(n) / 12
		x, y := polar(a, float64(radius)-1)
		label := []rune(strconv.Itoa(n))
		if len(label) == 2 {
			x--
		}
		for i, r := range label {
			put(x+i, y, r)
		}
	}
	put(cx, cy, '◉')

	out := make([]string, rows)
	for i, row := range grid {
		out[i] = strings.TrimRight(string(row), " ")
	}
	return out
}
