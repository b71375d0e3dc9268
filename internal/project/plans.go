package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/yudhap/stowplan/internal/model"
)

// DefaultPlansDir returns the default directory for storing saved plans.
func DefaultPlansDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".stowplan", "plans")
	return dir, nil
}

// DefaultPlanPath returns the default file path for a plan with the given name.
func DefaultPlanPath(name string) (string, error) {
	dir, err := DefaultPlansDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, sanitizeFileName(name)+".json"), nil
}

// SavePlan saves a plan to a JSON file, stamping its UpdatedAt timestamp.
func SavePlan(path string, plan model.Plan) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	plan.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPlan loads a plan from a JSON file.
// Unlike config loading there is no fallback: a missing plan file is an error.
func LoadPlan(path string) (model.Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Plan{}, err
	}

	var plan model.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return model.Plan{}, err
	}

	if plan.Name == "" {
		return model.Plan{}, errors.New("plan file has no name")
	}
	// Ensure Items is never nil
	if plan.Items == nil {
		plan.Items = []model.ItemSpec{}
	}
	return plan, nil
}

// ListPlans returns the paths of all plan files in the given directory,
// sorted by file name. A missing directory yields an empty list.
func ListPlans(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}

	paths := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// sanitizeFileName maps a plan name to a safe file name component.
func sanitizeFileName(name string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-', r == '_', r == '.':
			return r
		case r == ' ':
			return '-'
		default:
			return '_'
		}
	}, name)
	if cleaned == "" {
		return "untitled"
	}
	return cleaned
}
