package location

// BlockFace names one of the six faces of a block.
type BlockFace string

// The six block faces. North is -z and east is +x.
const (
	North BlockFace = "north"
	South BlockFace = "south"
	East  BlockFace = "east"
	West  BlockFace = "west"
	Up    BlockFace = "up"
	Down  BlockFace = "down"
)

// BlockFaces contains all six faces.
var BlockFaces = []BlockFace{North, South, East, West, Up, Down}

// ParseBlockFace returns the face with the given name.
//
// Postcondition: Returns (face, true) for a known lower-case name, or ("", false).
func ParseBlockFace(name string) (BlockFace, bool) {
	for _, f := range BlockFaces {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// Offset returns the unit block offset of f. Unknown faces return (0, 0, 0).
func (f BlockFace) Offset() (dx, dy, dz int) {
	switch f {
	case North:
		return 0, 0, -1
	case South:
		return 0, 0, 1
	case East:
		return 1, 0, 0
	case West:
		return -1, 0, 0
	case Up:
		return 0, 1, 0
	case Down:
		return 0, -1, 0
	default:
		return 0, 0, 0
	}
}

// Opposite returns the face pointing the other way. Unknown faces return "".
func (f BlockFace) Opposite() BlockFace {
	switch f {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	case Up:
		return Down
	case Down:
		return Up
	default:
		return ""
	}
}
