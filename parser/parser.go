// Package parser tokenises textual NC program lines into engine.CommandNode
// values. It performs no semantic interpretation — variable resolution,
// modal state, and control-flow jumps are the engine's job; the parser only
// recognises the shape of a line.
package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cncplot/gcodego/engine"
)

// Parser turns one line of source text into a CommandNode.
type Parser interface {
	Parse(line string) (engine.CommandNode, error)
}

// ParseProgram parses every line of text (newline-separated) into an
// ordered node list, skipping blank and comment-only lines.
func ParseProgram(p Parser, text string) ([]engine.CommandNode, error) {
	var nodes []engine.CommandNode
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(stripComment(raw))
		if line == "" {
			continue
		}
		node, err := p.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		node.Line = len(nodes)
		nodes = append(nodes, node)
	}
	return nodes, nil
}

var (
	parenCommentRe = regexp.MustCompile(`\([^)]*\)`)
	labelRe        = regexp.MustCompile(`^N(\d+)\s*`)
	ifGotoRe       = regexp.MustCompile(`(?i)IF\s*\[(.+?)\]\s*GOTO\s*(\d+)`)
	gotoRe         = regexp.MustCompile(`(?i)\bGOTO\s*(\d+)`)
	doRe           = regexp.MustCompile(`(?i)\bDO(\d+)(?:\s+(\d+))?\b`)
	endRe          = regexp.MustCompile(`(?i)\bEND(\d+)\b`)
	varAssignRe    = regexp.MustCompile(`^(#[A-Za-z0-9_]+|R[0-9]+)=(.+)$`)
	cycleCallRe    = regexp.MustCompile(`^([A-Z]+[0-9]*)\((.*)\)$`)
	gmCodeRe       = regexp.MustCompile(`^([GM])(\d+(?:\.\d+)?)$`)
	paramRe        = regexp.MustCompile(`^([A-Z])=?(.+)$`)
)

func stripComment(line string) string {
	line = parenCommentRe.ReplaceAllString(line, " ")
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	return line
}

// genericParser implements Parser with the grammar shared by the ISO and
// Siemens dialects: labels, `#name=expr`/`Rname=expr` assignments, `X=R1`
// substitution syntax, `IF [...] GOTO n` / `GOTO n`, `DO<tag>`/`END<tag>`
// loop markers, `NAME(args...)` cycle calls, and plain letter/value
// parameters. Dialect-specific behaviour (tool range, cycle names) lives in
// package dialect, not here.
type genericParser struct{}

// Parse implements Parser.
func (genericParser) Parse(line string) (engine.CommandNode, error) {
	node := engine.CommandNode{Params: map[string]string{}}

	text := strings.ToUpper(strings.TrimSpace(stripComment(line)))
	if text == "" {
		return node, nil
	}

	if m := labelRe.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return node, fmt.Errorf("invalid label %q", m[0])
		}
		node.Label = &n
		text = strings.TrimSpace(text[len(m[0]):])
	}

	if m := ifGotoRe.FindStringSubmatch(text); m != nil {
		target, err := strconv.Atoi(m[2])
		if err != nil {
			return node, fmt.Errorf("invalid GOTO target %q", m[2])
		}
		node.IfExpr = strings.TrimSpace(m[1])
		node.Goto = &target
		text = strings.TrimSpace(strings.Replace(text, m[0], "", 1))
	} else if m := gotoRe.FindStringSubmatch(text); m != nil {
		target, err := strconv.Atoi(m[1])
		if err != nil {
			return node, fmt.Errorf("invalid GOTO target %q", m[1])
		}
		node.Goto = &target
		text = strings.TrimSpace(strings.Replace(text, m[0], "", 1))
	}

	if m := doRe.FindStringSubmatch(text); m != nil {
		node.LoopCommand = "DO" + m[1]
		if m[2] != "" {
			count, err := strconv.Atoi(m[2])
			if err == nil {
				node.LoopCount = &count
			}
		}
		text = strings.TrimSpace(strings.Replace(text, m[0], "", 1))
	} else if m := endRe.FindStringSubmatch(text); m != nil {
		node.LoopCommand = "END" + m[1]
		text = strings.TrimSpace(strings.Replace(text, m[0], "", 1))
	}

	if text == "" {
		return node, nil
	}

	if m := cycleCallRe.FindStringSubmatch(text); m != nil {
		node.CycleName = m[1]
		if strings.TrimSpace(m[2]) != "" {
			for _, a := range strings.Split(m[2], ",") {
				node.CycleArgs = append(node.CycleArgs, strings.TrimSpace(a))
			}
		}
		return node, nil
	}

	for _, tok := range strings.Fields(text) {
		if m := varAssignRe.FindStringSubmatch(tok); m != nil {
			node.AssignName = m[1]
			node.AssignExpr = m[2]
			continue
		}
		if m := gmCodeRe.FindStringSubmatch(tok); m != nil {
			if m[1] == "G" {
				node.GCode = append(node.GCode, "G"+m[2])
			} else {
				node.MCode = append(node.MCode, "M"+m[2])
			}
			continue
		}
		if m := paramRe.FindStringSubmatch(tok); m != nil {
			node.Params[m[1]] = m[2]
			continue
		}
	}

	return node, nil
}
