package state

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DocumentTag identifies a persisted GlobalState among the state documents
// that share a directory.
const DocumentTag = "!GlobalState"

const assetsKey = "assets"

// assetsDocument is the loosely-typed form of the assets grouping. Pointer
// fields distinguish an absent key from an empty value.
type assetsDocument struct {
	BuildPackages *[]string `yaml:"build-packages"`
	BuildSnaps    *[]string `yaml:"build-snaps"`
	RequiredGrade *string   `yaml:"required-grade"`
}

// persistedAssets is the fully-populated form written by Save. Every key is
// always present: sequences as [] and the grade as null when empty.
type persistedAssets struct {
	BuildPackages []string `yaml:"build-packages"`
	BuildSnaps    []string `yaml:"build-snaps"`
	RequiredGrade *string  `yaml:"required-grade"`
}

type persistedDocument struct {
	Assets persistedAssets `yaml:"assets"`
}

// encodeDocument renders s as a tagged YAML document.
func encodeDocument(s *GlobalState) ([]byte, error) {
	var root yaml.Node
	if err := root.Encode(persistedDocument{Assets: persistedAssets{
		BuildPackages: s.BuildPackages(),
		BuildSnaps:    s.BuildSnaps(),
		RequiredGrade: s.requiredGrade,
	}}); err != nil {
		return nil, err
	}
	root.Tag = DocumentTag

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeError carries the reason a document was rejected; the caller attaches
// the path and classification.
type decodeError struct {
	reason string
	cause  error
}

func (e *decodeError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.reason, e.cause)
	}
	return e.reason
}

func (e *decodeError) Unwrap() error { return e.cause }

// decodeDocument parses data into a GlobalState, defaulting every absent field.
func decodeDocument(data []byte) (*GlobalState, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &decodeError{reason: "invalid YAML", cause: err}
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, &decodeError{reason: "empty document"}
	}

	root := doc.Content[0]
	if root.Tag != DocumentTag {
		return nil, &decodeError{reason: fmt.Sprintf("unexpected document tag %q, want %q", root.Tag, DocumentTag)}
	}
	s := NewGlobalState()
	if root.Kind == yaml.ScalarNode && root.Value == "" {
		return s, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, &decodeError{reason: "document root is not a mapping"}
	}

	assets := mappingValue(root, assetsKey)
	if assets == nil || isNull(assets) {
		return s, nil
	}
	if assets.Kind != yaml.MappingNode {
		return nil, &decodeError{reason: assetsKey + " is not a mapping"}
	}

	var fields assetsDocument
	if err := assets.Decode(&fields); err != nil {
		return nil, &decodeError{reason: "malformed " + assetsKey, cause: err}
	}
	if fields.BuildPackages != nil {
		s.AppendBuildPackages(*fields.BuildPackages...)
	}
	if fields.BuildSnaps != nil {
		s.AppendBuildSnaps(*fields.BuildSnaps...)
	}
	s.SetRequiredGrade(fields.RequiredGrade)
	return s, nil
}

// mappingValue returns the value node for key in a mapping node, or nil.
// Aliases are resolved to the anchored node.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return resolveAlias(m.Content[i+1])
		}
	}
	return nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.Tag == "!!null"
}
