// Package prefs holds the user preference types that drive ranking: the
// selected task types, the positional priority order, and display options.
package prefs

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// TaskType is a category of work the user wants a model for.
type TaskType string

const (
	TaskTranslation TaskType = "translation"
	TaskGeneration  TaskType = "generation"
	TaskQA          TaskType = "qa"
	TaskCoding      TaskType = "coding"
	TaskCreative    TaskType = "creative"
	TaskAnalysis    TaskType = "analysis"
)

// AllTaskTypes lists every task type in display order.
var AllTaskTypes = []TaskType{
	TaskTranslation, TaskGeneration, TaskQA, TaskCoding, TaskCreative, TaskAnalysis,
}

// ParseTaskType converts a string flag value to a TaskType.
func ParseTaskType(s string) (TaskType, error) {
	t := TaskType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllTaskTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("invalid task type %q: must be one of translation, generation, qa, coding, creative, analysis", s)
}

// Priority is one of the three ranking axes.
type Priority string

const (
	PriorityQuality Priority = "quality"
	PrioritySpeed   Priority = "speed"
	PriorityBudget  Priority = "budget"
)

// ParsePriority converts a string flag value to a Priority.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityQuality:
		return PriorityQuality, nil
	case PrioritySpeed:
		return PrioritySpeed, nil
	case PriorityBudget:
		return PriorityBudget, nil
	default:
		return "", fmt.Errorf("invalid priority %q: must be quality, speed, or budget", s)
	}
}

// PriorityOrder is the user's ranking of the three axes. Position determines
// influence; it must be a permutation of quality, speed, and budget.
type PriorityOrder [3]Priority

// DefaultPriorityOrder is quality first, speed second, budget third.
var DefaultPriorityOrder = PriorityOrder{PriorityQuality, PrioritySpeed, PriorityBudget}

// Validate checks that the order is a permutation of the three priorities.
// A malformed order would silently zero out a sub-score during scoring, so
// callers must fail fast on an error here.
func (o PriorityOrder) Validate() error {
	seen := make(map[Priority]bool, 3)
	for _, p := range o {
		switch p {
		case PriorityQuality, PrioritySpeed, PriorityBudget:
		default:
			return fmt.Errorf("invalid priority %q in priority order", p)
		}
		if seen[p] {
			return fmt.Errorf("duplicate priority %q in priority order", p)
		}
		seen[p] = true
	}
	return nil
}

// Position returns the index of p in the order, or -1 if absent.
func (o PriorityOrder) Position(p Priority) int {
	for i, q := range o {
		if q == p {
			return i
		}
	}
	return -1
}

// Limits on RequestsPerDay.
const (
	MinRequestsPerDay = 1
	MaxRequestsPerDay = 200
)

// Preferences is everything the wizard or API caller supplies. Ranking is a
// pure function of a model list plus one of these.
type Preferences struct {
	TaskTypes         []TaskType    `json:"task_types"`
	PriorityOrder     PriorityOrder `json:"priority_order"`
	RequestsPerDay    int           `json:"requests_per_day"`
	InputLanguage     string        `json:"input_language"`
	OutputLanguage    string        `json:"output_language"`
	ExcludedProviders []string      `json:"excluded_providers,omitempty"`
}

// Default returns preferences with the default priority order and a single
// request per day, no task types selected.
func Default() Preferences {
	return Preferences{
		PriorityOrder:  DefaultPriorityOrder,
		RequestsPerDay: MinRequestsPerDay,
		InputLanguage:  "en",
		OutputLanguage: "en",
	}
}

// Validate checks all preference invariants.
func (p Preferences) Validate() error {
	if len(p.TaskTypes) == 0 {
		return fmt.Errorf("at least one task type must be selected")
	}
	for _, t := range p.TaskTypes {
		if _, err := ParseTaskType(string(t)); err != nil {
			return err
		}
	}
	if err := p.PriorityOrder.Validate(); err != nil {
		return err
	}
	if p.RequestsPerDay < MinRequestsPerDay || p.RequestsPerDay > MaxRequestsPerDay {
		return fmt.Errorf("requests per day must be between %d and %d, got %d",
			MinRequestsPerDay, MaxRequestsPerDay, p.RequestsPerDay)
	}
	for _, lang := range []string{p.InputLanguage, p.OutputLanguage} {
		if lang == "" {
			continue
		}
		if _, err := language.Parse(lang); err != nil {
			return fmt.Errorf("invalid language code %q: %w", lang, err)
		}
	}
	return nil
}

// HasTask reports whether t is among the selected task types.
func (p Preferences) HasTask(t TaskType) bool {
	for _, have := range p.TaskTypes {
		if have == t {
			return true
		}
	}
	return false
}

// HasAnyTask reports whether any of the given task types is selected.
func (p Preferences) HasAnyTask(types ...TaskType) bool {
	for _, t := range types {
		if p.HasTask(t) {
			return true
		}
	}
	return false
}

// Excludes reports whether the given provider/creator is excluded.
// Matching is case-insensitive.
func (p Preferences) Excludes(creator string) bool {
	for _, ex := range p.ExcludedProviders {
		if strings.EqualFold(ex, creator) {
			return true
		}
	}
	return false
}
