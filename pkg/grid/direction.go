package grid

// Point is an integer grid coordinate. X grows to the east, Y grows to the south.
type Point struct {
	X int
	Y int
}

// Add returns the component-wise sum of p and o.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Direction is one of the four cardinal directions.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in clockwise order starting at North.
var Directions = [4]Direction{North, East, South, West}

// Offset returns the unit step for d.
func (d Direction) Offset() Point {
	switch d {
	case North:
		return Point{0, -1}
	case South:
		return Point{0, 1}
	case East:
		return Point{1, 0}
	default:
		return Point{-1, 0}
	}
}

// Right rotates d a quarter turn clockwise.
func (d Direction) Right() Direction { return (d + 1) % 4 }

// Left rotates d a quarter turn counter-clockwise.
func (d Direction) Left() Direction { return (d + 3) % 4 }

// Opposite rotates d half a turn.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// IsOpposite reports whether o points the other way along d's axis.
func (d Direction) IsOpposite(o Direction) bool { return d.Opposite() == o }

// Vertical reports whether d moves along a column.
func (d Direction) Vertical() bool { return d == North || d == South }

// Closer returns whichever of a and b is reached first when travelling in
// direction d. Both points are expected to lie on the same travel path.
func (d Direction) Closer(a, b Point) Point {
	switch d {
	case North:
		if a.Y > b.Y {
			return a
		}
		return b
	case South:
		if a.Y > b.Y {
			return b
		}
		return a
	case East:
		if a.X > b.X {
			return b
		}
		return a
	default:
		if a.X > b.X {
			return a
		}
		return b
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}
