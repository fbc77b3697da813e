// Package replay drives a board from a YAML script instead of drag gestures.
//
// A script is a list of steps. Lists are addressed by their 0-based display
// position at the time the step runs, since list ids are random.
//
//	steps:
//	  - drop:
//	      from: {template: Headline}
//	      to: {list: 0, index: 0}
//	  - add_list: true
//	  - drop:
//	      from: {list: 0, index: 0}
//	      to: {list: 1, index: 0}
//	  - drop:
//	      from: {list: 1, index: 0}   # released outside
package replay

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

var ErrInvalidStep = errors.New("invalid step")

// Script is a parsed replay script.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is either an add-list action or a drop.
type Step struct {
	AddList bool  `yaml:"add_list,omitempty"`
	Drop    *Drop `yaml:"drop,omitempty"`
}

// Drop describes one drag gesture. A nil To means released outside.
type Drop struct {
	From Source  `yaml:"from"`
	To   *Target `yaml:"to,omitempty"`
}

// Source names exactly one of a catalog index, a template label, or a list.
type Source struct {
	Catalog  *int   `yaml:"catalog,omitempty"`
	Template string `yaml:"template,omitempty"`
	List     *int   `yaml:"list,omitempty"`
	Index    int    `yaml:"index,omitempty"`
}

// Target is a list position.
type Target struct {
	List  int `yaml:"list"`
	Index int `yaml:"index"`
}

// Parse decodes and checks a script. Unknown keys are rejected.
func Parse(r io.Reader) (Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Script
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Script{}, fmt.Errorf("parse script: %w", err)
	}
	for i, step := range s.Steps {
		if err := step.validate(); err != nil {
			return Script{}, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return s, nil
}

func (s Step) validate() error {
	switch {
	case s.AddList && s.Drop != nil:
		return fmt.Errorf("%w: add_list and drop are exclusive", ErrInvalidStep)
	case !s.AddList && s.Drop == nil:
		return fmt.Errorf("%w: empty step", ErrInvalidStep)
	case s.Drop != nil:
		return s.Drop.From.validate()
	}
	return nil
}

func (src Source) validate() error {
	set := 0
	if src.Catalog != nil {
		set++
	}
	if src.Template != "" {
		set++
	}
	if src.List != nil {
		set++
	}
	if set != 1 {
		return fmt.Errorf("%w: from needs exactly one of catalog, template, list", ErrInvalidStep)
	}
	return nil
}
