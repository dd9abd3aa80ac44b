/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: validate.go
Description: Knowledge base linting. Malformed rules are errors. References outside the
organism's panel and reference cycles are warnings: such rules are legal but may never
fire, which is easy to miss when authoring a rule set.
*/

package knowledge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kleascm/mechid/pkg/analysis"
)

// IssueLevel grades a validation issue
type IssueLevel string

const (
	LevelError   IssueLevel = "error"
	LevelWarning IssueLevel = "warning"
)

// Issue is one validation finding
type Issue struct {
	Organism string     `json:"organism"`
	Level    IssueLevel `json:"level"`
	Message  string     `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s: %s", i.Level, i.Organism, i.Message)
}

// HasErrors reports whether any issue is an error
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Level == LevelError {
			return true
		}
	}
	return false
}

// Validate lints every organism in declaration order
func (b *Base) Validate() []Issue {
	var issues []Issue
	for _, name := range b.order {
		issues = append(issues, validateOrganism(b.organisms[name])...)
	}
	for alias, canonical := range b.aliases {
		if _, ok := b.organisms[canonical]; !ok {
			issues = append(issues, Issue{
				Organism: canonical,
				Level:    LevelWarning,
				Message:  fmt.Sprintf("alias %q points at an organism that is not in the knowledge base", alias),
			})
		}
	}
	sortAliasIssues(issues)
	return issues
}

func validateOrganism(org *Organism) []Issue {
	var issues []Issue
	add := func(level IssueLevel, format string, args ...interface{}) {
		issues = append(issues, Issue{Organism: org.Name, Level: level, Message: fmt.Sprintf(format, args...)})
	}

	if len(org.Panel) == 0 {
		add(LevelWarning, "empty antibiotic panel")
	}
	if org.Template == analysis.TemplateNone {
		add(LevelWarning, "no profile template; mechanism and therapy output will be empty")
	} else if analysis.ForTemplate(org.Template) == nil {
		add(LevelError, "template %d has no evaluator", org.Template)
	}

	panel := make(map[string]bool, len(org.Panel))
	for _, ab := range org.Panel {
		panel[ab] = true
	}

	for i, rule := range org.Cascade {
		if err := rule.Check(); err != nil {
			add(LevelError, "rule %d: %v", i+1, err)
			continue
		}
		if len(panel) == 0 {
			continue
		}
		for _, ref := range rule.References() {
			if !panel[ref] {
				add(LevelWarning, "rule %d (%s): reference %s is not on the panel and can only be supplied as an extra result", i+1, rule.Target, ref)
			}
		}
	}

	for _, cycle := range ruleCycles(org.Cascade) {
		add(LevelWarning, "cascade cycle %s: these targets infer nothing unless one of them is tested", strings.Join(cycle, " -> "))
	}

	return issues
}

// ruleCycles finds reference cycles between cascade targets. Each cycle is reported
// once, rotated so its lexically smallest member comes first.
func ruleCycles(rules []CascadeRule) [][]string {
	graph := make(map[string][]string)
	for _, r := range rules {
		if r.Check() != nil {
			continue
		}
		graph[r.Target] = append(graph[r.Target], r.References()...)
	}

	nodes := make([]string, 0, len(graph))
	for n := range graph {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)

	const (
		unvisited = iota
		active
		done
	)
	state := make(map[string]int, len(graph))
	seen := make(map[string]bool)
	var cycles [][]string
	var stack []string

	var visit func(n string)
	visit = func(n string) {
		state[n] = active
		stack = append(stack, n)
		for _, next := range graph[n] {
			if _, isTarget := graph[next]; !isTarget {
				continue
			}
			switch state[next] {
			case active:
				cycle := closeCycle(stack, next)
				key := strings.Join(cycle, "|")
				if !seen[key] {
					seen[key] = true
					cycles = append(cycles, append(cycle, cycle[0]))
				}
			case unvisited:
				visit(next)
			}
		}
		stack = stack[:len(stack)-1]
		state[n] = done
	}

	for _, n := range nodes {
		if state[n] == unvisited {
			visit(n)
		}
	}
	return cycles
}

// closeCycle extracts the cycle ending at start from the DFS stack and rotates it
func closeCycle(stack []string, start string) []string {
	idx := 0
	for i, n := range stack {
		if n == start {
			idx = i
			break
		}
	}
	cycle := append([]string(nil), stack[idx:]...)
	lo := 0
	for i := range cycle {
		if cycle[i] < cycle[lo] {
			lo = i
		}
	}
	return append(cycle[lo:], cycle[:lo]...)
}

// sortAliasIssues keeps organism issues in declaration order and sorts alias issues after them
func sortAliasIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		ai := strings.HasPrefix(issues[i].Message, "alias ")
		aj := strings.HasPrefix(issues[j].Message, "alias ")
		if ai != aj {
			return !ai
		}
		if ai {
			return issues[i].Message < issues[j].Message
		}
		return false
	})
}
