package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Dragging
	GrabTask   string `yaml:"grab_task"`
	GrabColumn string `yaml:"grab_column"`
	Drop       string `yaml:"drop"`
	Cancel     string `yaml:"cancel"`

	// Columns
	CreateColumn    string `yaml:"create_column"`
	RenameColumn    string `yaml:"rename_column"`
	RecolorColumn   string `yaml:"recolor_column"`
	DeleteColumn    string `yaml:"delete_column"`
	MoveColumnLeft  string `yaml:"move_column_left"`
	MoveColumnRight string `yaml:"move_column_right"`

	// Other
	ViewTask string `yaml:"view_task"`
	Refresh  string `yaml:"refresh"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		GrabTask:   "m",
		GrabColumn: "M",
		Drop:       "enter",
		Cancel:     "esc",

		CreateColumn:    "C",
		RenameColumn:    "R",
		RecolorColumn:   "c",
		DeleteColumn:    "X",
		MoveColumnLeft:  "<",
		MoveColumnRight: ">",

		ViewTask: "space",
		Refresh:  "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}

	fill(&k.PrevColumn, d.PrevColumn)
	fill(&k.NextColumn, d.NextColumn)
	fill(&k.PrevTask, d.PrevTask)
	fill(&k.NextTask, d.NextTask)
	fill(&k.GrabTask, d.GrabTask)
	fill(&k.GrabColumn, d.GrabColumn)
	fill(&k.Drop, d.Drop)
	fill(&k.Cancel, d.Cancel)
	fill(&k.CreateColumn, d.CreateColumn)
	fill(&k.RenameColumn, d.RenameColumn)
	fill(&k.RecolorColumn, d.RecolorColumn)
	fill(&k.DeleteColumn, d.DeleteColumn)
	fill(&k.MoveColumnLeft, d.MoveColumnLeft)
	fill(&k.MoveColumnRight, d.MoveColumnRight)
	fill(&k.ViewTask, d.ViewTask)
	fill(&k.Refresh, d.Refresh)
	fill(&k.ShowHelp, d.ShowHelp)
	fill(&k.Quit, d.Quit)
}
