package model

// AppSettings are user preferences persisted alongside reminders.
type AppSettings struct {
	DarkMode             bool   `json:"darkMode"`
	AlertSound           string `json:"alertSound"`
	NotificationsEnabled bool   `json:"notificationsEnabled"`
}

// DefaultAppSettings returns the settings used before the user changes anything.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		DarkMode:             false,
		AlertSound:           "default",
		NotificationsEnabled: true,
	}
}

// SettingsPatch lists the settings a partial update may change.
type SettingsPatch struct {
	DarkMode             *bool   `json:"darkMode,omitempty"`
	AlertSound           *string `json:"alertSound,omitempty"`
	NotificationsEnabled *bool   `json:"notificationsEnabled,omitempty"`
}

// CategoryColors maps a category name to its display colour.
type CategoryColors map[string]string

// DefaultCategories returns the built-in category palette.
func DefaultCategories() CategoryColors {
	return CategoryColors{
		"Work":     "#4A90E2",
		"Personal": "#50E3C2",
		"Health":   "#E84393",
		"Finance":  "#F39C12",
		"Other":    "#95A5A6",
	}
}
