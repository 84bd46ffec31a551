package schedule

// Circle is one arrangement of the circle method. It holds participant
// indices; an index equal to or above the participant count is the bye.
// Position 0 never moves, every other index walks one step per round.
type Circle []int

// NewCircle creates the starting arrangement for the given number of
// players, padding odd counts with a single bye index.
func NewCircle(players int) Circle {
	rounded_total := players + players%2

	circle := make(Circle, rounded_total)
	for i := range circle {
		circle[i] = i
	}

	return circle
}

// Pairs returns the encounters of the current arrangement: position i
// meets position n-1-i, from the outside of the circle in.
func (circle Circle) Pairs() [][2]int {
	n := len(circle)

	pairs := make([][2]int, n/2)
	for i := range pairs {
		pairs[i] = [2]int{circle[i], circle[n-1-i]}
	}

	return pairs
}

// Rotate returns the arrangement for the next round. The last element
// moves into position 1 and positions 1..n-2 shift right by one. The
// receiver is left untouched.
func (circle Circle) Rotate() Circle {
	n := len(circle)

	next := make(Circle, n)
	next[0] = circle[0]
	next[1] = circle[n-1]
	copy(next[2:], circle[1:n-1])

	return next
}
