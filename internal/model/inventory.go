package model

import "github.com/google/uuid"

// ContainerPreset represents a reusable container size definition.
type ContainerPreset struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Width     float64 `json:"width"`      // cm
	Depth     float64 `json:"depth"`      // cm
	Height    float64 `json:"height"`     // cm
	MaxWeight float64 `json:"max_weight"` // kg payload capacity
}

// NewContainerPreset creates a new ContainerPreset with a generated ID.
func NewContainerPreset(name string, width, depth, height, maxWeight float64) ContainerPreset {
	return ContainerPreset{
		ID:        uuid.New().String()[:8],
		Name:      name,
		Width:     width,
		Depth:     depth,
		Height:    height,
		MaxWeight: maxWeight,
	}
}

// ApplyToSettings copies this preset's bounds and weight cap into the given
// PackSettings, leaving the container count untouched.
func (cp ContainerPreset) ApplyToSettings(s *PackSettings) {
	s.ContainerWidth = cp.Width
	s.ContainerDepth = cp.Depth
	s.ContainerHeight = cp.Height
	s.MaxWeight = cp.MaxWeight
}

// CargoPreset represents a reusable cargo definition.
type CargoPreset struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	DX             float64 `json:"dx"`
	DY             float64 `json:"dy"`
	DZ             float64 `json:"dz"`
	Weight         float64 `json:"weight"`
	Stackable      bool    `json:"stackable"`
	Fragile        bool    `json:"fragile"`
	MaxStackWeight float64 `json:"max_stack_weight"`
}

// NewCargoPreset creates a new CargoPreset with a generated ID.
func NewCargoPreset(name string, dx, dy, dz, weight float64, stackable, fragile bool, maxStack float64) CargoPreset {
	return CargoPreset{
		ID:             uuid.New().String()[:8],
		Name:           name,
		DX:             dx,
		DY:             dy,
		DZ:             dz,
		Weight:         weight,
		Stackable:      stackable,
		Fragile:        fragile,
		MaxStackWeight: maxStack,
	}
}

// ToItemSpec converts a CargoPreset into an ItemSpec with the given quantity.
func (cp CargoPreset) ToItemSpec(qty int) ItemSpec {
	spec := NewItemSpec(cp.Name, cp.DX, cp.DY, cp.DZ, cp.Weight, qty)
	spec.Stackable = cp.Stackable
	spec.Fragile = cp.Fragile
	spec.MaxStackWeight = cp.MaxStackWeight
	return spec
}

// Inventory holds the user's saved container and cargo presets.
type Inventory struct {
	Containers []ContainerPreset `json:"containers"`
	Cargo      []CargoPreset     `json:"cargo"`
}

// DefaultInventory returns an inventory populated with the standard ISO
// container sizes and a set of common cargo entries.
func DefaultInventory() Inventory {
	return Inventory{
		Containers: []ContainerPreset{
			NewContainerPreset("20ft Standard", 235.2, 589.8, 239.5, 28200),
			NewContainerPreset("40ft Standard", 235.2, 1203.2, 239.5, 26700),
			NewContainerPreset("40ft High Cube", 235.2, 1203.2, 269.8, 26500),
			NewContainerPreset("Custom", 300, 400, 250, 24000),
		},
		Cargo: []CargoPreset{
			NewCargoPreset("Kardus Kecil", 30, 40, 20, 5, true, false, 40),
			NewCargoPreset("Kardus Sedang", 50, 60, 40, 12, true, false, 60),
			NewCargoPreset("Kardus Besar", 80, 100, 60, 25, true, false, 100),
			NewCargoPreset("TV 32inch", 75, 15, 45, 8, false, true, 0),
			NewCargoPreset("Laptop Box", 40, 30, 8, 3, true, false, 15),
			NewCargoPreset("Furniture Box", 120, 80, 40, 30, true, false, 120),
		},
	}
}

// FindContainerByID returns a pointer to the preset with the given ID, or nil.
func (inv *Inventory) FindContainerByID(id string) *ContainerPreset {
	for i := range inv.Containers {
		if inv.Containers[i].ID == id {
			return &inv.Containers[i]
		}
	}
	return nil
}

// FindCargoByID returns a pointer to the cargo preset with the given ID, or nil.
func (inv *Inventory) FindCargoByID(id string) *CargoPreset {
	for i := range inv.Cargo {
		if inv.Cargo[i].ID == id {
			return &inv.Cargo[i]
		}
	}
	return nil
}

// ContainerNames returns a list of container preset names.
func (inv *Inventory) ContainerNames() []string {
	names := make([]string, len(inv.Containers))
	for i, c := range inv.Containers {
		names[i] = c.Name
	}
	return names
}

// CargoNames returns a list of cargo preset names.
func (inv *Inventory) CargoNames() []string {
	names := make([]string, len(inv.Cargo))
	for i, c := range inv.Cargo {
		names[i] = c.Name
	}
	return names
}

// FindContainerByName returns the first container preset with the given name, or nil.
func (inv *Inventory) FindContainerByName(name string) *ContainerPreset {
	for i := range inv.Containers {
		if inv.Containers[i].Name == name {
			return &inv.Containers[i]
		}
	}
	return nil
}

// FindCargoByName returns the first cargo preset with the given name, or nil.
func (inv *Inventory) FindCargoByName(name string) *CargoPreset {
	for i := range inv.Cargo {
		if inv.Cargo[i].Name == name {
			return &inv.Cargo[i]
		}
	}
	return nil
}
