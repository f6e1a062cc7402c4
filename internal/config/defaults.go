package config

import "time"

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"hide_after":     3 * time.Second,
		"dismiss_on_tap": true,
		"alignment":      "top",
		"transition":     "slide",
		"curve":          "ease-out",
		"animation":      200 * time.Millisecond,
		"backdrop":       false,
		"drag_threshold": 2,
		"margin":         1,
		"width":          48,
		"level":          "info",
	}
}
