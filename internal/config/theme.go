package config

// Theme holds the colors used for the board chrome. Column headers are tinted
// with their own palette color instead.
type Theme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	Accent         string `yaml:"accent"`
	SelectedBorder string `yaml:"selected_border"`
	DragBorder     string `yaml:"drag_border"`
	TaskBorder     string `yaml:"task_border"`
	Subtle         string `yaml:"subtle"`
	Normal         string `yaml:"normal"`

	InfoFg    string `yaml:"info_fg"`
	WarningFg string `yaml:"warning_fg"`
	ErrorFg   string `yaml:"error_fg"`
}

// DefaultTheme is the purple theme
func DefaultTheme() Theme {
	return Theme{
		Preset:         "default",
		Accent:         "#874BFD",
		SelectedBorder: "#D75FD7",
		DragBorder:     "#FFD700",
		TaskBorder:     "#585858",
		Subtle:         "#585858",
		Normal:         "#D0D0D0",
		InfoFg:         "#00AFFF",
		WarningFg:      "#FFD700",
		ErrorFg:        "#FF5F5F",
	}
}

// MonochromeTheme is a black and white theme
func MonochromeTheme() Theme {
	return Theme{
		Preset:         "monochrome",
		Accent:         "#FFFFFF",
		SelectedBorder: "#FFFFFF",
		DragBorder:     "#BCBCBC",
		TaskBorder:     "#585858",
		Subtle:         "#6C6C6C",
		Normal:         "#D0D0D0",
		InfoFg:         "#FFFFFF",
		WarningFg:      "#D0D0D0",
		ErrorFg:        "#FFFFFF",
	}
}

func themePreset(name string) Theme {
	if name == "monochrome" {
		return MonochromeTheme()
	}
	return DefaultTheme()
}

// applyDefaults fills unset colors from the selected preset
func (t *Theme) applyDefaults() {
	p := themePreset(t.Preset)
	fill := func(v *string, def string) {
		if *v == "" {
			*v = def
		}
	}
	fill(&t.Preset, p.Preset)
	fill(&t.Accent, p.Accent)
	fill(&t.SelectedBorder, p.SelectedBorder)
	fill(&t.DragBorder, p.DragBorder)
	fill(&t.TaskBorder, p.TaskBorder)
	fill(&t.Subtle, p.Subtle)
	fill(&t.Normal, p.Normal)
	fill(&t.InfoFg, p.InfoFg)
	fill(&t.WarningFg, p.WarningFg)
	fill(&t.ErrorFg, p.ErrorFg)
}
