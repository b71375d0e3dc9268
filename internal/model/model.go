package model

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// UnplacedReason classifies why an item ended a run outside every container.
type UnplacedReason int

const (
	ReasonCapacity  UnplacedReason = iota // No feasible slot and the container limit was reached
	ReasonOversized                       // No orientation fits inside an empty container
)

func (r UnplacedReason) String() string {
	switch r {
	case ReasonOversized:
		return "Oversized"
	default:
		return "Capacity"
	}
}

// ItemSpec describes one kind of cargo to pack. Quantity expands into that
// many independent items before a run.
type ItemSpec struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	DX             float64 `json:"dx"`     // cm, along container width
	DY             float64 `json:"dy"`     // cm, along container depth
	DZ             float64 `json:"dz"`     // cm, height
	Weight         float64 `json:"weight"` // kg per unit
	Quantity       int     `json:"quantity"`
	Stackable      bool    `json:"stackable"`        // May other items rest on it
	Fragile        bool    `json:"fragile"`          // Nothing may rest on it
	MaxStackWeight float64 `json:"max_stack_weight"` // kg supportable on top; meaningful only if stackable
}

// NewItemSpec creates a spec with a generated ID. An empty name defaults to
// a label derived from the dimensions and weight.
func NewItemSpec(name string, dx, dy, dz, weight float64, qty int) ItemSpec {
	if name == "" {
		name = fmt.Sprintf("Item_%gx%gx%g_%gkg", dx, dy, dz, weight)
	}
	return ItemSpec{
		ID:       uuid.New().String()[:8],
		Name:     name,
		DX:       dx,
		DY:       dy,
		DZ:       dz,
		Weight:   weight,
		Quantity: qty,
	}
}

// UnitVolume returns the volume of a single unit in cubic cm.
func (s ItemSpec) UnitVolume() float64 {
	return s.DX * s.DY * s.DZ
}

// TotalWeight returns the weight of all units of this spec.
func (s ItemSpec) TotalWeight() float64 {
	return s.Weight * float64(s.Quantity)
}

// Units expands the spec into individual items, one per unit of quantity.
// Each unit gets its own ID and carries the spec's flags.
func (s ItemSpec) Units() []Item {
	count := s.Quantity
	if count < 1 {
		count = 1
	}
	units := make([]Item, count)
	for i := range units {
		units[i] = Item{
			ID:             uuid.New().String()[:8],
			SpecID:         s.ID,
			Name:           s.Name,
			DX:             s.DX,
			DY:             s.DY,
			DZ:             s.DZ,
			Weight:         s.Weight,
			Stackable:      s.Stackable,
			Fragile:        s.Fragile,
			MaxStackWeight: s.MaxStackWeight,
		}
	}
	return units
}

// Item is a single unit to pack. Items are not modified after construction;
// a placed item is a copy whose DX/DY/DZ are the chosen orientation's extents.
type Item struct {
	ID             string  `json:"id"`
	SpecID         string  `json:"spec_id,omitempty"`
	Name           string  `json:"name"`
	DX             float64 `json:"dx"`     // cm
	DY             float64 `json:"dy"`     // cm
	DZ             float64 `json:"dz"`     // cm
	Weight         float64 `json:"weight"` // kg
	Stackable      bool    `json:"stackable"`
	Fragile        bool    `json:"fragile"`
	MaxStackWeight float64 `json:"max_stack_weight"`
}

// Volume returns the item volume in cubic cm.
func (it Item) Volume() float64 {
	return it.DX * it.DY * it.DZ
}

// Orientations returns the distinct axis-aligned orientations of the item.
func (it Item) Orientations() []Orientation {
	return Orientations(it.DX, it.DY, it.DZ)
}

// Oriented returns a copy of the item bound to the given orientation.
func (it Item) Oriented(o Orientation) Item {
	it.DX = o.DX
	it.DY = o.DY
	it.DZ = o.DZ
	return it
}

// Orientation is one axis-aligned permutation of an item's dimensions.
type Orientation struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
	DZ float64 `json:"dz"`
}

// Orientations returns the distinct ordered triples obtained by permuting
// (dx, dy, dz), sorted ascending lexicographically so enumeration order is
// stable across runs. Cardinality is 6 with all dimensions distinct, 3 with
// exactly two equal, 1 with all three equal.
func Orientations(dx, dy, dz float64) []Orientation {
	perms := [6]Orientation{
		{dx, dy, dz},
		{dx, dz, dy},
		{dy, dx, dz},
		{dy, dz, dx},
		{dz, dx, dy},
		{dz, dy, dx},
	}

	var distinct []Orientation
	for _, o := range perms {
		seen := false
		for _, d := range distinct {
			if d == o {
				seen = true
				break
			}
		}
		if !seen {
			distinct = append(distinct, o)
		}
	}

	sort.Slice(distinct, func(i, j int) bool {
		a, b := distinct[i], distinct[j]
		if a.DX != b.DX {
			return a.DX < b.DX
		}
		if a.DY != b.DY {
			return a.DY < b.DY
		}
		return a.DZ < b.DZ
	})
	return distinct
}

// PackSettings holds the run configuration shared by every container.
type PackSettings struct {
	ContainerWidth  float64 `json:"container_width"`  // cm, x axis
	ContainerDepth  float64 `json:"container_depth"`  // cm, y axis
	ContainerHeight float64 `json:"container_height"` // cm, z axis
	MaxWeight       float64 `json:"max_weight"`       // kg per container
	MaxContainers   int     `json:"max_containers"`
}

// DefaultSettings returns the 20ft standard container configuration.
func DefaultSettings() PackSettings {
	return PackSettings{
		ContainerWidth:  235.2,
		ContainerDepth:  589.8,
		ContainerHeight: 239.5,
		MaxWeight:       24000,
		MaxContainers:   10,
	}
}

// Validate reports the first configuration problem found. A run must not
// start with invalid settings.
func (s PackSettings) Validate() error {
	if s.ContainerWidth <= 0 || s.ContainerDepth <= 0 || s.ContainerHeight <= 0 {
		return fmt.Errorf("container dimensions must be positive, got %.1f x %.1f x %.1f",
			s.ContainerWidth, s.ContainerDepth, s.ContainerHeight)
	}
	if s.MaxWeight <= 0 {
		return fmt.Errorf("max weight per container must be positive, got %.1f", s.MaxWeight)
	}
	if s.MaxContainers < 1 {
		return fmt.Errorf("max container count must be at least 1, got %d", s.MaxContainers)
	}
	return nil
}

// ContainerVolume returns the volume of one container in cubic cm.
func (s PackSettings) ContainerVolume() float64 {
	return s.ContainerWidth * s.ContainerDepth * s.ContainerHeight
}

// Placement records one item fixed at a position inside a container.
// Placements are never moved or removed once committed.
type Placement struct {
	Item Item    `json:"item"`
	X    float64 `json:"x"` // cm from the container's left wall
	Y    float64 `json:"y"` // cm from the container's back wall
	Z    float64 `json:"z"` // cm from the container's floor
}

// Top returns the z coordinate of the placement's upper face.
func (p Placement) Top() float64 {
	return p.Z + p.Item.DZ
}

// Container is one filled container in a result.
type Container struct {
	ID         string      `json:"id"`
	Width      float64     `json:"width"`
	Depth      float64     `json:"depth"`
	Height     float64     `json:"height"`
	MaxWeight  float64     `json:"max_weight"`
	Placements []Placement `json:"placements"`
	Weight     float64     `json:"weight"`      // cumulative placed weight, kg
	UsedVolume float64     `json:"used_volume"` // cumulative placed volume, cubic cm
	FreeSpaces []FreeSpace `json:"free_spaces,omitempty"`
}

// NewContainer creates an empty container with the settings' bounds.
func NewContainer(s PackSettings) Container {
	return Container{
		ID:        uuid.New().String()[:8],
		Width:     s.ContainerWidth,
		Depth:     s.ContainerDepth,
		Height:    s.ContainerHeight,
		MaxWeight: s.MaxWeight,
	}
}

// Volume returns the container's total volume in cubic cm.
func (c Container) Volume() float64 {
	return c.Width * c.Depth * c.Height
}

// VolumeEfficiency returns placed volume as a percentage of container volume.
func (c Container) VolumeEfficiency() float64 {
	v := c.Volume()
	if v == 0 {
		return 0
	}
	return (c.UsedVolume / v) * 100.0
}

// WeightUtilization returns placed weight as a percentage of the weight cap.
func (c Container) WeightUtilization() float64 {
	if c.MaxWeight == 0 {
		return 0
	}
	return (c.Weight / c.MaxWeight) * 100.0
}

// RemainingWeight returns the headroom left under the weight cap.
func (c Container) RemainingWeight() float64 {
	return c.MaxWeight - c.Weight
}

// UnplacedItem is an item that ended the run outside every container,
// together with the constraint that blocked it.
type UnplacedItem struct {
	Item   Item           `json:"item"`
	Reason UnplacedReason `json:"reason"`
}

// PackResult holds the full outcome of one run: the containers filled, the
// items that could not be placed, and whether the run halted early.
type PackResult struct {
	Containers []Container    `json:"containers"`
	Unplaced   []UnplacedItem `json:"unplaced,omitempty"`
	Halted     bool           `json:"halted"` // true when the run stopped with items still queued
}

// PlacedCount returns the number of placed units across all containers.
func (r PackResult) PlacedCount() int {
	n := 0
	for _, c := range r.Containers {
		n += len(c.Placements)
	}
	return n
}

// TotalWeight returns the placed weight across all containers in kg.
func (r PackResult) TotalWeight() float64 {
	var total float64
	for _, c := range r.Containers {
		total += c.Weight
	}
	return total
}

// TotalUsedVolume returns the placed volume across all containers.
func (r PackResult) TotalUsedVolume() float64 {
	var total float64
	for _, c := range r.Containers {
		total += c.UsedVolume
	}
	return total
}

// TotalVolume returns the combined volume of all opened containers.
func (r PackResult) TotalVolume() float64 {
	var total float64
	for _, c := range r.Containers {
		total += c.Volume()
	}
	return total
}

// TotalEfficiency returns overall volume usage as a percentage.
func (r PackResult) TotalEfficiency() float64 {
	tv := r.TotalVolume()
	if tv == 0 {
		return 0
	}
	return (r.TotalUsedVolume() / tv) * 100.0
}

// CountByReason returns how many unplaced items share the given reason.
func (r PackResult) CountByReason(reason UnplacedReason) int {
	n := 0
	for _, u := range r.Unplaced {
		if u.Reason == reason {
			n++
		}
	}
	return n
}

// Plan ties cargo and settings together for save/load and re-runs.
type Plan struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	CreatedAt string       `json:"created_at"`
	UpdatedAt string       `json:"updated_at"`
	Items     []ItemSpec   `json:"items"`
	Settings  PackSettings `json:"settings"`
	Result    *PackResult  `json:"result,omitempty"`
}

// NewPlan creates an empty plan with default settings.
func NewPlan(name string) Plan {
	if name == "" {
		name = "Untitled"
	}
	now := time.Now().UTC().Format(time.RFC3339)
	return Plan{
		ID:        uuid.New().String()[:8],
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
		Items:     []ItemSpec{},
		Settings:  DefaultSettings(),
	}
}

// TotalUnits returns the number of individual items the plan expands to.
func (p Plan) TotalUnits() int {
	n := 0
	for _, s := range p.Items {
		q := s.Quantity
		if q < 1 {
			q = 1
		}
		n += q
	}
	return n
}
