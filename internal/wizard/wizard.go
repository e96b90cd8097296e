// Package wizard collects ranking preferences interactively.
package wizard

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/getbestai/getbestai/internal/prefs"
)

// Run collects preferences via an interactive huh form. When in is not a
// terminal (tests, piped input) it falls back to plain line-based prompts
// so input can be scripted.
func Run(in io.Reader, out io.Writer) (prefs.Preferences, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return runForm(in, out)
	}
	return runPlain(in, out)
}

func runForm(in io.Reader, out io.Writer) (prefs.Preferences, error) {
	p := prefs.Default()

	var (
		tasks      []string
		orderKey   = orderKeyFor(p.PriorityOrder)
		requests   = strconv.Itoa(p.RequestsPerDay)
		inputLang  string
		outputLang string
	)

	taskOptions := make([]huh.Option[string], 0, len(prefs.AllTaskTypes))
	for _, tt := range prefs.AllTaskTypes {
		taskOptions = append(taskOptions, huh.NewOption(string(tt), string(tt)))
	}

	orderOptions := make([]huh.Option[string], 0, len(priorityOrders))
	for _, po := range priorityOrders {
		orderOptions = append(orderOptions, huh.NewOption(orderLabel(po), orderKeyFor(po)))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Task types").
				Description("What will you use the model for?").
				Options(taskOptions...).
				Value(&tasks).
				Validate(func(sel []string) error {
					if len(sel) == 0 {
						return fmt.Errorf("select at least one task type")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Priorities").
				Description("Most important first").
				Options(orderOptions...).
				Value(&orderKey),
			huh.NewInput().
				Title("Requests per day").
				Description(fmt.Sprintf("Between %d and %d", prefs.MinRequestsPerDay, prefs.MaxRequestsPerDay)).
				Value(&requests).
				Validate(func(s string) error {
					_, err := parseRequests(s)
					return err
				}),
			huh.NewInput().
				Title("Input language").
				Description("BCP 47 tag, blank to skip").
				Placeholder("en").
				Value(&inputLang),
			huh.NewInput().
				Title("Output language").
				Description("BCP 47 tag, blank to skip").
				Placeholder("en").
				Value(&outputLang),
		),
	).
		WithInput(in).
		WithOutput(out)

	if err := form.Run(); err != nil {
		return prefs.Preferences{}, fmt.Errorf("wizard failed: %w", err)
	}

	p.TaskTypes = p.TaskTypes[:0]
	for _, s := range tasks {
		tt, err := prefs.ParseTaskType(s)
		if err != nil {
			return prefs.Preferences{}, err
		}
		p.TaskTypes = append(p.TaskTypes, tt)
	}
	p.PriorityOrder = orderForKey(orderKey)
	n, err := parseRequests(requests)
	if err != nil {
		return prefs.Preferences{}, err
	}
	p.RequestsPerDay = n
	p.InputLanguage = strings.TrimSpace(inputLang)
	p.OutputLanguage = strings.TrimSpace(outputLang)

	if err := p.Validate(); err != nil {
		return prefs.Preferences{}, err
	}
	return p, nil
}

// runPlain reads one answer per line:
//
//	task types (comma-separated)
//	priority order (comma-separated, blank for default)
//	requests per day (blank for default)
//	input language (blank to skip)
//	output language (blank to skip)
func runPlain(in io.Reader, out io.Writer) (prefs.Preferences, error) {
	p := prefs.Default()
	scanner := bufio.NewScanner(in)

	readLine := func(prompt string) (string, error) {
		fmt.Fprintf(out, "%s: ", prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("unexpected end of input")
		}
		return strings.TrimSpace(scanner.Text()), nil
	}

	line, err := readLine("Task types (comma-separated)")
	if err != nil {
		return prefs.Preferences{}, err
	}
	p.TaskTypes = p.TaskTypes[:0]
	for _, s := range splitAndTrim(line) {
		tt, err := prefs.ParseTaskType(s)
		if err != nil {
			return prefs.Preferences{}, err
		}
		p.TaskTypes = append(p.TaskTypes, tt)
	}
	if len(p.TaskTypes) == 0 {
		return prefs.Preferences{}, fmt.Errorf("at least one task type is required")
	}

	line, err = readLine("Priority order (quality, speed, budget)")
	if err != nil {
		return prefs.Preferences{}, err
	}
	if line != "" {
		parts := splitAndTrim(line)
		if len(parts) != 3 {
			return prefs.Preferences{}, fmt.Errorf("priority order needs exactly 3 entries, got %d", len(parts))
		}
		var order prefs.PriorityOrder
		for i, s := range parts {
			pr, err := prefs.ParsePriority(s)
			if err != nil {
				return prefs.Preferences{}, err
			}
			order[i] = pr
		}
		p.PriorityOrder = order
	}

	line, err = readLine("Requests per day")
	if err != nil {
		return prefs.Preferences{}, err
	}
	if line != "" {
		n, err := parseRequests(line)
		if err != nil {
			return prefs.Preferences{}, err
		}
		p.RequestsPerDay = n
	}

	if p.InputLanguage, err = readLine("Input language"); err != nil {
		return prefs.Preferences{}, err
	}
	if p.OutputLanguage, err = readLine("Output language"); err != nil {
		return prefs.Preferences{}, err
	}

	if err := p.Validate(); err != nil {
		return prefs.Preferences{}, err
	}
	return p, nil
}

// priorityOrders lists all six orderings for the selection prompt.
var priorityOrders = []prefs.PriorityOrder{
	{prefs.PriorityQuality, prefs.PrioritySpeed, prefs.PriorityBudget},
	{prefs.PriorityQuality, prefs.PriorityBudget, prefs.PrioritySpeed},
	{prefs.PrioritySpeed, prefs.PriorityQuality, prefs.PriorityBudget},
	{prefs.PrioritySpeed, prefs.PriorityBudget, prefs.PriorityQuality},
	{prefs.PriorityBudget, prefs.PriorityQuality, prefs.PrioritySpeed},
	{prefs.PriorityBudget, prefs.PrioritySpeed, prefs.PriorityQuality},
}

func orderKeyFor(po prefs.PriorityOrder) string {
	return fmt.Sprintf("%s,%s,%s", po[0], po[1], po[2])
}

func orderLabel(po prefs.PriorityOrder) string {
	return fmt.Sprintf("%s > %s > %s", po[0], po[1], po[2])
}

func orderForKey(key string) prefs.PriorityOrder {
	for _, po := range priorityOrders {
		if orderKeyFor(po) == key {
			return po
		}
	}
	return prefs.DefaultPriorityOrder
}

func parseRequests(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("requests per day must be a number")
	}
	if n < prefs.MinRequestsPerDay || n > prefs.MaxRequestsPerDay {
		return 0, fmt.Errorf("requests per day must be between %d and %d", prefs.MinRequestsPerDay, prefs.MaxRequestsPerDay)
	}
	return n, nil
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	var result []string
	for _, p := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
