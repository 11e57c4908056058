package game

import "github.com/TheDevPiyush/uno-by-thedevpiyush/internal/model"

// nextPosition computes the circular successor of a 1-based seat position
// for the given direction and seated player count. Clockwise wraps from
// total back to 1; counterclockwise wraps from 1 back to total.
func nextPosition(current, total int, direction model.Direction) int {
	if direction == model.DirectionClockwise {
		return current%total + 1
	}
	if current-1 <= 0 {
		return total
	}
	return current - 1
}
