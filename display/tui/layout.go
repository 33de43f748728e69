package tui

// tileLabels maps tile names to their headings.
var tileLabels = map[string]string{
	"cpu":  "CPU",
	"ram":  "RAM",
	"swap": "SWAP",
	"gpu":  "GPU",
	"vram": "VRAM",
	"temp": "TEMP",
	"disk": "DISK",
	"net":  "NET",
}

// layoutRows splits an ordered tile list into display rows. The compact
// layout wraps at four tiles per row; wide and mini are a single strip;
// vertical stacks everything.
func layoutRows(layout string, order []string) [][]string {
	switch layout {
	case "vertical":
		rows := make([][]string, 0, len(order))
		for _, tile := range order {
			rows = append(rows, []string{tile})
		}
		return rows

	case "wide", "mini":
		if len(order) == 0 {
			return nil
		}
		return [][]string{order}

	default: // compact
		var rows [][]string
		for start := 0; start < len(order); start += 4 {
			end := start + 4
			if end > len(order) {
				end = len(order)
			}
			rows = append(rows, order[start:end])
		}
		return rows
	}
}

// tileWidth returns the inner character width for tiles in a layout.
func tileWidth(layout string) int {
	switch layout {
	case "vertical":
		return 26
	case "mini":
		return 14
	default:
		return 18
	}
}

func tileLabel(name string) string {
	if label, ok := tileLabels[name]; ok {
		return label
	}
	return name
}
