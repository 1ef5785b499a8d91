package provision

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseDocument decodes data into a document node whose single child is a
// mapping. Empty input yields an empty mapping; comments are kept.
func parseDocument(data []byte) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	if doc.Kind == 0 {
		doc.Kind = yaml.DocumentNode
	}
	if len(doc.Content) == 0 {
		doc.Content = []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}
		return &doc, nil
	}
	if doc.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("yaml root must be a mapping, got %s", kindName(doc.Content[0].Kind))
	}
	return &doc, nil
}

func renderDocument(doc *yaml.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// writeDocument replaces the file at path through a temporary sibling so a
// failed write never leaves it truncated. Nothing is written when the encoded
// document equals previous, keeping file watchers quiet.
func writeDocument(path string, doc *yaml.Node, previous []byte) error {
	data, err := renderDocument(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if bytes.Equal(data, previous) {
		return nil
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// lookupKey returns the index of key's value node in mapping, or -1.
func lookupKey(mapping *yaml.Node, key string) int {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return i + 1
		}
	}
	return -1
}

// setPath writes value at the dotted key below mapping, creating intermediate
// mappings. Comments attached to a replaced value are carried over.
func setPath(mapping *yaml.Node, dotted string, value *yaml.Node) error {
	keys := strings.Split(dotted, ".")
	for _, k := range keys {
		if k == "" {
			return fmt.Errorf("invalid key %q", dotted)
		}
	}

	node := mapping
	for i, k := range keys {
		idx := lookupKey(node, k)
		last := i == len(keys)-1
		if last {
			if idx < 0 {
				node.Content = append(node.Content, scalarKey(k), value)
				return nil
			}
			old := node.Content[idx]
			value.HeadComment = old.HeadComment
			value.LineComment = old.LineComment
			value.FootComment = old.FootComment
			node.Content[idx] = value
			return nil
		}
		if idx < 0 {
			child := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			node.Content = append(node.Content, scalarKey(k), child)
			node = child
			continue
		}
		if node.Content[idx].Kind != yaml.MappingNode {
			node.Content[idx] = &yaml.Node{
				Kind:        yaml.MappingNode,
				Tag:         "!!map",
				LineComment: node.Content[idx].LineComment,
			}
		}
		node = node.Content[idx]
	}
	return nil
}

// mergeMissing copies every key of src that dst lacks, recursing into mappings
// present in both. It reports whether dst changed.
func mergeMissing(dst, src *yaml.Node) bool {
	changed := false
	for i := 0; i+1 < len(src.Content); i += 2 {
		key, val := src.Content[i], src.Content[i+1]
		idx := lookupKey(dst, key.Value)
		if idx < 0 {
			dst.Content = append(dst.Content, key, val)
			changed = true
			continue
		}
		existing := dst.Content[idx]
		if existing.Kind == yaml.MappingNode && val.Kind == yaml.MappingNode {
			if mergeMissing(existing, val) {
				changed = true
			}
		}
	}
	return changed
}

func valueNode(value any) (*yaml.Node, error) {
	var n yaml.Node
	if err := n.Encode(value); err != nil {
		return nil, fmt.Errorf("encoding value: %w", err)
	}
	return &n, nil
}

func scalarKey(k string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
