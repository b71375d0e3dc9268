package model

// maxRecentPlans caps the recent plan list in the app config.
const maxRecentPlans = 10

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default container settings applied to new plans
	DefaultContainerWidth  float64 `json:"default_container_width"`
	DefaultContainerDepth  float64 `json:"default_container_depth"`
	DefaultContainerHeight float64 `json:"default_container_height"`
	DefaultMaxWeight       float64 `json:"default_max_weight"`
	DefaultMaxContainers   int     `json:"default_max_containers"`
	DefaultPreset          string  `json:"default_preset"`

	// Application preferences
	Units       string   `json:"units"` // "cm" or "in"
	RecentPlans []string `json:"recent_plans"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultContainerWidth:  defaults.ContainerWidth,
		DefaultContainerDepth:  defaults.ContainerDepth,
		DefaultContainerHeight: defaults.ContainerHeight,
		DefaultMaxWeight:       defaults.MaxWeight,
		DefaultMaxContainers:   defaults.MaxContainers,
		DefaultPreset:          "20ft Standard",
		Units:                  "cm",
		RecentPlans:            []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a PackSettings struct.
// This is used when creating a new plan so it inherits the user's saved defaults.
func (c AppConfig) ApplyToSettings(s *PackSettings) {
	s.ContainerWidth = c.DefaultContainerWidth
	s.ContainerDepth = c.DefaultContainerDepth
	s.ContainerHeight = c.DefaultContainerHeight
	s.MaxWeight = c.DefaultMaxWeight
	s.MaxContainers = c.DefaultMaxContainers
}

// AddRecentPlan prepends a plan path to the recent list, removing any
// earlier occurrence and trimming the list to maxRecentPlans entries.
func (c *AppConfig) AddRecentPlan(path string) {
	recents := []string{path}
	for _, p := range c.RecentPlans {
		if p == path {
			continue
		}
		recents = append(recents, p)
	}
	if len(recents) > maxRecentPlans {
		recents = recents[:maxRecentPlans]
	}
	c.RecentPlans = recents
}
