package conf

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration document file inside a workspace.
const FileName = "config.yaml"

const modelNameKey = "model_name"

// ErrIncomplete marks a document that parses as YAML but does not contain
// a usable model configuration. Callers treat it like an absent document.
var ErrIncomplete = errors.New("incomplete configuration")

// Document is the persisted workspace configuration: the configured model
// kind, its config record, and one optional record of saved arguments per
// command. On disk it is a YAML mapping with the model config stored under
// the lowercased kind name:
//
//	model_name: Trainer
//	trainer:
//	  l1: {foo: 3}
//	  l2: {foo: 4}
//	  lr: 0.1
//	train:
//	  epochs: 10
type Document struct {
	ModelName string
	Config    Record

	sections map[string]Record
}

// NewDocument builds a document for a freshly configured model.
func NewDocument(modelName string, config Record) *Document {
	return &Document{ModelName: modelName, Config: config}
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is workspace-relative by construction
	if err != nil {
		return nil, fmt.Errorf("reading configuration: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a configuration document. Dotted keys inside the model
// section and the per-command sections are expanded, so hand-written
// shorthand like "l1.foo: 3" loads the same as the nested form. A document
// without a model name, or without the section named after it, fails with
// an error wrapping ErrIncomplete.
func Parse(data []byte) (*Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}

	name, _ := raw[modelNameKey].(string)
	if name == "" {
		return nil, fmt.Errorf("%w: missing %s", ErrIncomplete, modelNameKey)
	}
	section := strings.ToLower(name)
	body, ok := raw[section].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: missing %q section", ErrIncomplete, section)
	}

	config, err := sectionRecord(body)
	if err != nil {
		return nil, fmt.Errorf("section %q: %w", section, err)
	}
	doc := &Document{ModelName: name, Config: config}
	for key, value := range raw {
		if key == modelNameKey || key == section {
			continue
		}
		m, ok := value.(map[string]any)
		if !ok {
			continue
		}
		rec, err := sectionRecord(m)
		if err != nil {
			return nil, fmt.Errorf("section %q: %w", key, err)
		}
		doc.SetSection(key, rec)
	}
	return doc, nil
}

func sectionRecord(m map[string]any) (Record, error) {
	expanded, err := Unflatten(m)
	if err != nil {
		return Record{}, err
	}
	return New(expanded), nil
}

// Section returns the saved record for a command section.
func (d *Document) Section(name string) (Record, bool) {
	rec, ok := d.sections[name]
	return rec, ok
}

// SetSection stores a command section, replacing any previous one.
func (d *Document) SetSection(name string, rec Record) {
	if d.sections == nil {
		d.sections = make(map[string]Record)
	}
	d.sections[name] = rec
}

// SectionNames returns the stored section names in sorted order.
func (d *Document) SectionNames() []string {
	names := make([]string, 0, len(d.sections))
	for name := range d.sections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Save writes the document to path, replacing the whole file.
func (d *Document) Save(path string) error {
	if d.ModelName == "" {
		return fmt.Errorf("%w: no model configured", ErrIncomplete)
	}
	section := strings.ToLower(d.ModelName)
	out := map[string]any{
		modelNameKey: d.ModelName,
		section:      d.Config.Map(),
	}
	for name, rec := range d.sections {
		if name == modelNameKey || name == section {
			return fmt.Errorf("section %q collides with the model configuration", name)
		}
		out[name] = rec.Map()
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // configuration is not sensitive
		return fmt.Errorf("writing configuration: %w", err)
	}
	return nil
}
