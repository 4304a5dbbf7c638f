package transform

// Schematic is implemented by every catalog transform so tooling (the
// out-of-core "--print-schema" command) can describe its configuration
// shape without a reflection pass.
type Schematic interface {
	Schema() map[string]any
}

func (f *Filter) Schema() map[string]any {
	return map[string]any{
		"type": "Filter",
		"fields": map[string]any{
			"devices":  "[]string",
			"channels": "[]uint8",
			"kinds":    "[]string",
		},
	}
}

func (m *Map) Schema() map[string]any {
	return map[string]any{
		"type": "Map",
		"fields": map[string]any{
			"channel_map":    "map[uint8]uint8",
			"controller_map": "map[uint8]uint8",
		},
	}
}

func (d *Distribute) Schema() map[string]any {
	return map[string]any{
		"type":   "Distribute",
		"fields": map[string]any{"between": "[]uint8 (non-empty)"},
	}
}

func (a *Arpeggio) Schema() map[string]any {
	return map[string]any{
		"type": "Arpeggio",
		"fields": map[string]any{
			"subdivision":      "float64",
			"direction":        "Forward|Backward|PingPong",
			"repeat":           "int (default 1)",
			"note_duration_ms": "int (default 250)",
		},
	}
}

func (m *Mirror) Schema() map[string]any {
	return map[string]any{
		"type":   "Mirror",
		"fields": map[string]any{"channels": "[]uint8"},
	}
}

func (i *Inspect) Schema() map[string]any {
	return map[string]any{
		"type":   "Inspect",
		"fields": map[string]any{"timestamp_format": "string (strftime, optional)"},
	}
}

func (o *Output) Schema() map[string]any {
	return map[string]any{
		"type":   "Output",
		"fields": map[string]any{"device": "string"},
	}
}

func (w *Wasm) Schema() map[string]any {
	return map[string]any{
		"type":   "Wasm",
		"fields": map[string]any{"module_path": "string"},
	}
}
