package printer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/pathtree/pkg/tree"
)

func (p *Printer) printJSON(t *tree.Tree) error {
	data, err := t.MarshalJSON()
	if err != nil {
		return err
	}
	if p.opts.Pretty {
		var out bytes.Buffer
		if err := json.Indent(&out, data, "", strings.Repeat(" ", p.opts.IndentSize)); err != nil {
			return err
		}
		data = out.Bytes()
	}
	data = append(data, '\n')
	_, err = p.writer.Write(data)
	return err
}

func (p *Printer) printYAML(t *tree.Tree) error {
	node, err := yamlNode(t)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(p.writer)
	enc.SetIndent(p.opts.IndentSize)
	if err := enc.Encode(node); err != nil {
		return err
	}
	return enc.Close()
}

// printLeaf writes a single scalar in the configured format.
func (p *Printer) printLeaf(v any) error {
	switch p.opts.Format {
	case FormatJSON:
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(p.writer, "%s\n", data)
		return err
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = p.writer.Write(data)
		return err
	}
	_, err := fmt.Fprintln(p.writer, formatLeaf(v))
	return err
}

// yamlNode converts t into a yaml.Node so key order survives encoding.
// List-shaped trees become sequences.
func yamlNode(t *tree.Tree) (*yaml.Node, error) {
	keys := t.Keys()
	list := true
	for i, k := range keys {
		if idx, ok := k.Index(); !ok || idx != i {
			list = false
			break
		}
	}

	n := &yaml.Node{Kind: yaml.MappingNode}
	if list {
		n.Kind = yaml.SequenceNode
	}
	for k, v := range t.All() {
		var child *yaml.Node
		if sub, ok := v.(*tree.Tree); ok {
			c, err := yamlNode(sub)
			if err != nil {
				return nil, err
			}
			child = c
		} else {
			child = &yaml.Node{}
			if err := child.Encode(v); err != nil {
				return nil, fmt.Errorf("printer: key %s: %w", k, err)
			}
		}
		if !list {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k.String()}
			if k.IsIndex() {
				key.Tag = "!!int"
			}
			n.Content = append(n.Content, key)
		}
		n.Content = append(n.Content, child)
	}
	if len(keys) == 0 {
		n.Style = yaml.FlowStyle
	}
	return n, nil
}
