// Package lesson runs scripted sequences of algorithm selections.
package lesson

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/algoviz/internal/catalog"
	"github.com/san-kum/algoviz/internal/config"
	"github.com/san-kum/algoviz/internal/logging"
	"github.com/san-kum/algoviz/internal/metrics"
)

var ErrUnknownPreset = errors.New("lesson: unknown preset")

// Lesson is a named script of consecutive selections.
type Lesson struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step is one selection. Fields not set in the script come from Preset
// ("algorithm/name") when given, otherwise from the defaults.
type Step struct {
	Title  string
	Notes  string
	Preset string
	Config *config.Config
}

func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	var head struct {
		Title  string `yaml:"title"`
		Notes  string `yaml:"notes"`
		Preset string `yaml:"preset"`
	}
	if err := node.Decode(&head); err != nil {
		return err
	}

	cfg := config.DefaultConfig()
	if head.Preset != "" {
		alg, name, _ := strings.Cut(head.Preset, "/")
		if cfg = config.GetPreset(alg, name); cfg == nil {
			return fmt.Errorf("%w: %s", ErrUnknownPreset, head.Preset)
		}
	}
	if err := node.Decode(cfg); err != nil {
		return err
	}
	*s = Step{Title: head.Title, Notes: head.Notes, Preset: head.Preset, Config: cfg}
	return nil
}

func Load(path string) (*Lesson, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Lesson, error) {
	var l Lesson
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	if len(l.Steps) == 0 {
		return nil, fmt.Errorf("lesson %q has no steps", l.Name)
	}
	return &l, nil
}

// Result is the outcome of one step.
type Result struct {
	Index   int
	Step    Step
	Run     *catalog.Run
	Metrics []metrics.Result
}

// Summary is the one-line description of the step's final snapshot.
func (r Result) Summary() string {
	return r.Run.Trace.Final().Description
}

// Run generates every step in order and stops at the first failure,
// returning the results so far.
func Run(ctx context.Context, l *Lesson, reg *catalog.Registry) ([]Result, error) {
	logger := logging.FromContext(ctx)
	progress := logging.NewProgress(logger)
	results := make([]Result, 0, len(l.Steps))

	for i, step := range l.Steps {
		logger.Info("running step", "step", fmt.Sprintf("%d/%d", i+1, len(l.Steps)), "algorithm", step.Config.Algorithm)

		req, err := step.Config.Request()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		run, err := reg.Generate(ctx, req)
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		results = append(results, Result{Index: i, Step: step, Run: run, Metrics: metrics.Collect(run.Trace)})
	}
	progress.Done(fmt.Sprintf("lesson %q complete", l.Name))
	return results, nil
}
