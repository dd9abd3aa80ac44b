/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: input.go
Description: Request input for the CLI. Reads YAML or JSON request files and parses
repeated --result flags.
*/

package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/kleascm/mechid/pkg/interfaces"
	"gopkg.in/yaml.v3"
)

type requestFile struct {
	Requests []interfaces.Request `yaml:"requests"`
}

// LoadRequests reads requests from a YAML or JSON file. The document may be a single
// request, a list of requests or a mapping with a "requests" list.
func LoadRequests(path string) ([]interfaces.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	reqs, err := ParseRequests(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reqs, nil
}

// ParseRequests decodes request documents. JSON is accepted as YAML.
func ParseRequests(data []byte) ([]interfaces.Request, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("input is empty")
	}
	doc := root.Content[0]

	var reqs []interfaces.Request
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&reqs); err != nil {
			return nil, fmt.Errorf("invalid request list: %w", err)
		}
	case yaml.MappingNode:
		if hasKey(doc, "requests") {
			var f requestFile
			if err := doc.Decode(&f); err != nil {
				return nil, fmt.Errorf("invalid request list: %w", err)
			}
			reqs = f.Requests
		} else {
			var req interfaces.Request
			if err := doc.Decode(&req); err != nil {
				return nil, fmt.Errorf("invalid request: %w", err)
			}
			reqs = []interfaces.Request{req}
		}
	default:
		return nil, fmt.Errorf("input must be a request or a list of requests")
	}

	if len(reqs) == 0 {
		return nil, fmt.Errorf("input holds no requests")
	}
	return reqs, nil
}

func hasKey(node *yaml.Node, key string) bool {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}

// ParseResultFlags turns "Antibiotic=Call" pairs into a results map. The last '='
// separates the antibiotic from the call.
func ParseResultFlags(pairs []string) (map[string]string, error) {
	results := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		i := strings.LastIndex(pair, "=")
		if i <= 0 {
			return nil, fmt.Errorf("invalid result %q: expected Antibiotic=Call", pair)
		}
		name := strings.TrimSpace(pair[:i])
		if name == "" {
			return nil, fmt.Errorf("invalid result %q: empty antibiotic", pair)
		}
		results[name] = strings.TrimSpace(pair[i+1:])
	}
	return results, nil
}
