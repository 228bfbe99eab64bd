package convert

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Summary is a human-reviewable digest of one assembly run: which
// declarations were assembled, under which names they surface, and what the
// native-code generator was asked for.
type Summary struct {
	Declarations []DeclarationSummary `yaml:"declarations"`
	Needs        []string             `yaml:"additional_needs,omitempty"`
}

// DeclarationSummary describes one assembled declaration.
type DeclarationSummary struct {
	Namespace string `yaml:"namespace,omitempty"`
	Name      string `yaml:"name"`
	// ReExport is the name the declaration is re-exported under, empty
	// when it is not re-exported at all.
	ReExport string `yaml:"re_export,omitempty"`
	// External is the allow-list name when it differs from Name.
	External string `yaml:"external_name,omitempty"`
}

// ExportSummary marshals a YAML digest of the assembled records and results.
func ExportSummary(apis []*API, res Results) ([]byte, error) {
	var s Summary

	for _, api := range apis {
		d := DeclarationSummary{
			Namespace: api.Namespace.String(),
			Name:      api.ID,
		}

		switch api.Disposition.Kind {
		case DispositionUsed:
			d.ReExport = api.ID
		case DispositionUsedWithAlias:
			d.ReExport = api.Disposition.Alias
		case DispositionUnused:
		}

		if ext := api.AllowlistName().Name(); ext != api.ID {
			d.External = ext
		}

		s.Declarations = append(s.Declarations, d)
	}

	for _, need := range res.AdditionalNeeds {
		s.Needs = append(s.Needs, need.Description())
	}

	out, err := yaml.Marshal(&s)
	if err != nil {
		return nil, fmt.Errorf("marshaling assembly summary: %w", err)
	}

	return out, nil
}
