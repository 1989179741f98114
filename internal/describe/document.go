// Package describe loads rule descriptions: YAML documents that spell out the
// combinator calls building a rule's automaton, plus optional expected
// results used to check the rule.
//
// A description looks like:
//
//	name: Palatalization
//	package: rules
//	pattern:
//	  concat:
//	    - symbol: k
//	    - capture:
//	        union: [{symbol: i}, {symbol: e}]
//	cases:
//	  - input: [a, k, i, t]
//	    mode: scan
//	    matched: true
//	    consumed: [k, i]
//	    captured: [3, 2]
package describe

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/KromDaniel/soundnfa/pkg/nfa"
)

// Document is one rule description.
type Document struct {
	// Name identifies the rule; it becomes the Go identifier of generated code.
	Name string `yaml:"name" validate:"required,goident"`

	// Package is the Go package for generated code.
	Package string `yaml:"package,omitempty" validate:"omitempty,lowercase,alphanum"`

	Pattern Node   `yaml:"pattern"`
	Cases   []Case `yaml:"cases,omitempty" validate:"dive"`
}

// Node is one combinator call. Exactly one field must be set.
type Node struct {
	Symbol   *string `yaml:"symbol,omitempty" validate:"omitempty,min=1"`
	Epsilon  bool    `yaml:"epsilon,omitempty"`
	Concat   []Node  `yaml:"concat,omitempty" validate:"omitempty,min=1,dive"`
	Union    []Node  `yaml:"union,omitempty" validate:"omitempty,min=1,dive"`
	Star     *Repeat `yaml:"star,omitempty"`
	Optional *Repeat `yaml:"optional,omitempty"`
	Plus     *Repeat `yaml:"plus,omitempty"`
	Capture  *Node   `yaml:"capture,omitempty"`
}

// Repeat is the operand of star, optional and plus.
type Repeat struct {
	Of   Node `yaml:"of"`
	Lazy bool `yaml:"lazy,omitempty"`
}

var (
	validate = newValidator()
	goIdent  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
		return goIdent.MatchString(fl.Field().String())
	})
	v.RegisterStructValidation(validateNode, Node{})
	return v
}

// validateNode enforces that a node names exactly one combinator.
func validateNode(sl validator.StructLevel) {
	n := sl.Current().Interface().(Node)
	if c := n.operators(); c != 1 {
		sl.ReportError(n, "combinator", "Combinator", "oneop", fmt.Sprint(c))
	}
}

func (n Node) operators() int {
	count := 0
	for _, set := range []bool{
		n.Symbol != nil,
		n.Epsilon,
		len(n.Concat) > 0,
		len(n.Union) > 0,
		n.Star != nil,
		n.Optional != nil,
		n.Plus != nil,
		n.Capture != nil,
	} {
		if set {
			count++
		}
	}
	return count
}

// Load reads and validates a description file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read description: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a description. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty description")
		}
		return nil, fmt.Errorf("failed to parse description YAML: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, fmt.Errorf("invalid description: %w", err)
	}
	return &doc, nil
}

// Validate checks the document against its struct constraints.
func (d *Document) Validate() error {
	err := validate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describeFieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Document.")
	switch fe.Tag() {
	case "oneop":
		field = strings.TrimSuffix(field, ".combinator")
		return fmt.Sprintf("%s: node must set exactly one combinator, found %s", field, fe.Param())
	case "required":
		return fmt.Sprintf("%s: required", field)
	case "goident":
		return fmt.Sprintf("%s: %q is not a Go identifier", field, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s: must be one of [%s]", field, fe.Param())
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("%s: failed %s=%s", field, fe.Tag(), fe.Param())
		}
		return fmt.Sprintf("%s: failed %s", field, fe.Tag())
	}
}

// Compile builds the document's pattern into an automaton.
func (d *Document) Compile() (*nfa.Automaton, error) {
	b := nfa.NewBuilder()
	f, err := d.Pattern.Build(b)
	if err != nil {
		return nil, err
	}
	return b.Compile(f), nil
}
