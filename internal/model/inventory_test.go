package model

import (
	"testing"
)

func TestDefaultInventory(t *testing.T) {
	inv := DefaultInventory()

	if len(inv.Containers) != 4 {
		t.Errorf("expected 4 container presets, got %d", len(inv.Containers))
	}
	if len(inv.Cargo) != 6 {
		t.Errorf("expected 6 cargo presets, got %d", len(inv.Cargo))
	}

	for _, c := range inv.Containers {
		if c.ID == "" {
			t.Errorf("container preset %s has no ID", c.Name)
		}
		if c.Width <= 0 || c.Depth <= 0 || c.Height <= 0 {
			t.Errorf("container preset %s has non-positive dimensions", c.Name)
		}
	}
	for _, cg := range inv.Cargo {
		if cg.ID == "" {
			t.Errorf("cargo preset %s has no ID", cg.Name)
		}
		if cg.Weight <= 0 {
			t.Errorf("cargo preset %s has non-positive weight", cg.Name)
		}
	}
}

func TestDefaultInventoryTwentyFootMatchesDefaultSettings(t *testing.T) {
	inv := DefaultInventory()
	preset := inv.FindContainerByName("20ft Standard")
	if preset == nil {
		t.Fatal("20ft Standard preset missing from default inventory")
	}

	defaults := DefaultSettings()
	if preset.Width != defaults.ContainerWidth || preset.Depth != defaults.ContainerDepth || preset.Height != defaults.ContainerHeight {
		t.Errorf("20ft preset %vx%vx%v does not match default settings %vx%vx%v",
			preset.Width, preset.Depth, preset.Height,
			defaults.ContainerWidth, defaults.ContainerDepth, defaults.ContainerHeight)
	}
}

func TestContainerPresetApplyToSettings(t *testing.T) {
	preset := NewContainerPreset("40ft High Cube", 235.2, 1203.2, 269.8, 26500)
	s := DefaultSettings()
	s.MaxContainers = 3

	preset.ApplyToSettings(&s)

	if s.ContainerWidth != 235.2 || s.ContainerDepth != 1203.2 || s.ContainerHeight != 269.8 {
		t.Errorf("preset dimensions not applied: %+v", s)
	}
	if s.MaxWeight != 26500 {
		t.Errorf("expected max weight 26500, got %v", s.MaxWeight)
	}
	if s.MaxContainers != 3 {
		t.Errorf("ApplyToSettings should leave MaxContainers alone, got %d", s.MaxContainers)
	}
}

func TestCargoPresetToItemSpec(t *testing.T) {
	preset := NewCargoPreset("TV 32inch", 75, 15, 45, 8, false, true, 0)
	spec := preset.ToItemSpec(5)

	if spec.Name != "TV 32inch" {
		t.Errorf("expected name TV 32inch, got %s", spec.Name)
	}
	if spec.Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", spec.Quantity)
	}
	if spec.Stackable {
		t.Error("expected non-stackable spec from preset")
	}
	if !spec.Fragile {
		t.Error("expected fragile spec from preset")
	}
	if spec.ID == "" {
		t.Error("expected spec to get its own ID")
	}
	if spec.ID == preset.ID {
		t.Error("spec should not reuse the preset ID")
	}
}

func TestInventoryFinders(t *testing.T) {
	inv := DefaultInventory()

	first := inv.Containers[0]
	if found := inv.FindContainerByID(first.ID); found == nil || found.Name != first.Name {
		t.Errorf("FindContainerByID failed for %s", first.ID)
	}
	if inv.FindContainerByID("nope") != nil {
		t.Error("expected nil for unknown container ID")
	}

	cargo := inv.Cargo[0]
	if found := inv.FindCargoByID(cargo.ID); found == nil || found.Name != cargo.Name {
		t.Errorf("FindCargoByID failed for %s", cargo.ID)
	}
	if inv.FindCargoByName("Kardus Kecil") == nil {
		t.Error("expected to find Kardus Kecil by name")
	}
	if inv.FindCargoByName("nope") != nil {
		t.Error("expected nil for unknown cargo name")
	}
}

func TestInventoryNames(t *testing.T) {
	inv := DefaultInventory()

	containerNames := inv.ContainerNames()
	if len(containerNames) != len(inv.Containers) {
		t.Errorf("expected %d container names, got %d", len(inv.Containers), len(containerNames))
	}
	if containerNames[0] != "20ft Standard" {
		t.Errorf("expected first container name 20ft Standard, got %s", containerNames[0])
	}

	cargoNames := inv.CargoNames()
	if len(cargoNames) != len(inv.Cargo) {
		t.Errorf("expected %d cargo names, got %d", len(inv.Cargo), len(cargoNames))
	}
}
