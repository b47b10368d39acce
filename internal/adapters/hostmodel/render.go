package hostmodel

import (
	"io"
	"strconv"

	"go.trai.ch/multiapi/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

type projectView struct {
	Project             domain.Coordinates  `yaml:"project"`
	Plugins             []string            `yaml:"plugins,omitempty"`
	PublicationWarnings bool                `yaml:"publication_warnings"`
	Units               []unitView          `yaml:"units"`
	Features            []featureView       `yaml:"features,omitempty"`
	Configurations      []configurationView `yaml:"configurations"`
	Artifacts           []artifactView      `yaml:"artifacts,omitempty"`
	Tasks               []taskView          `yaml:"tasks"`
}

type unitView struct {
	Name  string `yaml:"name"`
	Kind  string `yaml:"kind"`
	Owner string `yaml:"owner"`
}

type featureView struct {
	Name         string              `yaml:"name"`
	Unit         string              `yaml:"unit"`
	Owner        string              `yaml:"owner"`
	Capabilities []domain.Capability `yaml:"capabilities"`
}

type configurationView struct {
	Name         string              `yaml:"name"`
	Extends      []string            `yaml:"extends,omitempty"`
	Attributes   map[string]string   `yaml:"attributes,omitempty"`
	Capabilities []domain.Capability `yaml:"capabilities,omitempty"`
	Dependencies []string            `yaml:"dependencies,omitempty"`
}

type artifactView struct {
	Name      string   `yaml:"name"`
	Feature   string   `yaml:"feature"`
	OutputDir string   `yaml:"output_dir"`
	Layers    []string `yaml:"layers"`
}

type taskView struct {
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type,omitempty"`
	Owner     string   `yaml:"owner,omitempty"`
	Disabled  bool     `yaml:"disabled,omitempty"`
	DependsOn []string `yaml:"depends_on,omitempty"`
	Classes   []string `yaml:"test_classes,omitempty"`
}

// Render writes the model as YAML. Configurations without any content are omitted.
// The task graph must be valid.
func (p *Project) Render(w io.Writer) error {
	if err := p.Validate(); err != nil {
		return err
	}

	p.mu.RLock()
	view := p.view()
	p.mu.RUnlock()

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return zerr.Wrap(err, "failed to render host project")
	}
	return zerr.Wrap(enc.Close(), "failed to render host project")
}

func (p *Project) view() projectView {
	v := projectView{
		Project:             p.spec.Coordinates,
		Plugins:             p.spec.Plugins,
		PublicationWarnings: p.pomWarnings,
	}

	for _, name := range p.unitOrder {
		u := p.units[name]
		v.Units = append(v.Units, unitView{Name: u.Name, Kind: string(u.Kind), Owner: u.Owner})
	}

	for _, name := range p.featureOrder {
		f := p.features[name]
		v.Features = append(v.Features, featureView{
			Name: f.Name, Unit: f.Unit, Owner: f.Owner, Capabilities: f.Capabilities(),
		})
	}

	for _, name := range p.configOrder {
		c := p.configurations[name]
		if len(c.Dependencies) == 0 && len(c.Extends) == 0 && len(c.Attributes) == 0 && len(c.Capabilities) == 0 {
			continue
		}
		cv := configurationView{
			Name:         c.Name,
			Extends:      c.Extends,
			Capabilities: c.Capabilities,
		}
		if len(c.Attributes) > 0 {
			cv.Attributes = c.Attributes
		}
		for _, dep := range c.Dependencies {
			cv.Dependencies = append(cv.Dependencies, describe(dep))
		}
		v.Configurations = append(v.Configurations, cv)
	}

	for _, name := range p.artifactOrder {
		a := p.artifacts[name]
		av := artifactView{Name: a.Name, Feature: a.Feature, OutputDir: a.OutputDir}
		for _, layer := range a.Layers {
			av.Layers = append(av.Layers, describe(layer))
		}
		v.Artifacts = append(v.Artifacts, av)
	}

	for t := range p.tasks.Walk() {
		v.Tasks = append(v.Tasks, taskView{
			Name: t.Name, Type: t.Type, Owner: t.Owner, Disabled: t.Disabled, DependsOn: t.Dependencies,
			Classes: t.TestClasses,
		})
	}
	return v
}

// describe renders a dependency, adding the file count once a collection is resolved.
func describe(dep domain.Dependency) string {
	if dep.Files == nil {
		return dep.Notation
	}
	if files, ok := dep.Files.Cached(); ok {
		return dep.Notation + " (" + strconv.Itoa(len(files)) + " files)"
	}
	return dep.Notation
}
