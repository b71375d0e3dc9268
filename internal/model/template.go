package model

import (
	"time"

	"github.com/google/uuid"
)

// PlanTemplate represents a reusable load configuration that captures item
// specs and settings but not packing results.
type PlanTemplate struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	CreatedAt   string       `json:"created_at"`
	UpdatedAt   string       `json:"updated_at"`
	Items       []ItemSpec   `json:"items"`
	Settings    PackSettings `json:"settings"`
}

// NewPlanTemplate creates a new template from the given plan data.
// It copies items and settings but intentionally excludes results.
func NewPlanTemplate(name, description string, items []ItemSpec, settings PackSettings) PlanTemplate {
	now := time.Now().UTC().Format(time.RFC3339)
	return PlanTemplate{
		ID:          uuid.New().String()[:8],
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Items:       copyItemSpecs(items),
		Settings:    settings,
	}
}

// ToPlan creates a new Plan from this template.
// Item specs get fresh IDs so they are independent of the template.
func (t PlanTemplate) ToPlan(planName string) Plan {
	plan := NewPlan(planName)
	plan.Settings = t.Settings

	items := make([]ItemSpec, len(t.Items))
	for i, s := range t.Items {
		items[i] = NewItemSpec(s.Name, s.DX, s.DY, s.DZ, s.Weight, s.Quantity)
		items[i].Stackable = s.Stackable
		items[i].Fragile = s.Fragile
		items[i].MaxStackWeight = s.MaxStackWeight
	}
	plan.Items = items
	return plan
}

// TemplateStore holds a collection of plan templates.
type TemplateStore struct {
	Templates []PlanTemplate `json:"templates"`
}

// NewTemplateStore creates an empty template store.
func NewTemplateStore() TemplateStore {
	return TemplateStore{
		Templates: []PlanTemplate{},
	}
}

// Add adds a template to the store.
func (ts *TemplateStore) Add(t PlanTemplate) {
	ts.Templates = append(ts.Templates, t)
}

// Remove removes a template by ID. Returns true if found and removed.
func (ts *TemplateStore) Remove(id string) bool {
	for i, t := range ts.Templates {
		if t.ID == id {
			ts.Templates = append(ts.Templates[:i], ts.Templates[i+1:]...)
			return true
		}
	}
	return false
}

// FindByID returns a pointer to the template with the given ID, or nil.
func (ts *TemplateStore) FindByID(id string) *PlanTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].ID == id {
			return &ts.Templates[i]
		}
	}
	return nil
}

// Names returns a list of template names.
func (ts *TemplateStore) Names() []string {
	names := make([]string, len(ts.Templates))
	for i, t := range ts.Templates {
		names[i] = t.Name
	}
	return names
}

// FindByName returns a pointer to the first template with the given name, or nil.
func (ts *TemplateStore) FindByName(name string) *PlanTemplate {
	for i := range ts.Templates {
		if ts.Templates[i].Name == name {
			return &ts.Templates[i]
		}
	}
	return nil
}

// copyItemSpecs creates a copy of an item spec slice.
func copyItemSpecs(items []ItemSpec) []ItemSpec {
	if items == nil {
		return []ItemSpec{}
	}
	cp := make([]ItemSpec, len(items))
	copy(cp, items)
	return cp
}
