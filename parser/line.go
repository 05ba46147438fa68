package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mirelin/fitchproof/logic"
)

var numberedLineRE = regexp.MustCompile(`^(\d+)\.\s*(.*)$`)

// Parse converts Fitch proof text into a []logic.ProofNode, one node per
// physical line, ready for normalize.Normalize.
func Parse(text string) ([]logic.ProofNode, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	nodes := make([]logic.ProofNode, 0, len(lines))

	for lineIdx, raw := range lines {
		node, err := parseLine(raw)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineIdx+1, err)
		}
		if node != nil {
			nodes = append(nodes, node)
		}
	}

	return nodes, nil
}

func parseLine(raw string) (logic.ProofNode, error) {
	depth, rest := stripDepthPrefix(raw)
	rest = strings.TrimSpace(rest)

	switch {
	case rest == "":
		return logic.Empty{NodeDepth: depth}, nil
	case rest == "---" || rest == "===":
		return logic.FitchBar{NodeDepth: depth}, nil
	}

	m := numberedLineRE.FindStringSubmatch(rest)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrBadLineSyntax, raw)
	}
	lineNum, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadLineSyntax, err)
	}
	body := strings.TrimSpace(m[2])

	if strings.HasPrefix(body, "[") {
		return parseBoxedPremise(lineNum, depth, body)
	}

	sentenceText, justText, hasJust := splitSentenceAndJustification(body)

	sentence, err := ParseFormula(sentenceText)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	line := logic.NumberedLine{LineNum: lineNum, NodeDepth: depth, Sentence: sentence}
	if hasJust && justText != "" && justText != "premise" && justText != "Premise" {
		just, err := ParseJustification(justText)
		if err != nil {
			return nil, err
		}
		line.Justification = just
	}
	return line, nil
}

func parseBoxedPremise(lineNum, depth int, body string) (logic.ProofNode, error) {
	end := strings.Index(body, "]")
	if !strings.HasPrefix(body, "[") || end < 0 {
		return nil, fmt.Errorf("%w: malformed boxed constant %q", ErrBadLineSyntax, body)
	}
	name := strings.TrimSpace(body[1:end])
	if name == "" {
		return nil, fmt.Errorf("%w: empty boxed constant", ErrBadLineSyntax)
	}
	return logic.NumberedLine{
		LineNum:       lineNum,
		NodeDepth:     depth,
		BoxedConstant: logic.Atomic{Name: name},
	}, nil
}

// splitSentenceAndJustification splits "sentence : justification" on the
// first top-level ":" (one not nested inside parentheses).
func splitSentenceAndJustification(body string) (sentence, justification string, hasJust bool) {
	paren := 0
	for i, c := range body {
		switch c {
		case '(':
			paren++
		case ')':
			paren--
		case ':':
			if paren == 0 {
				return strings.TrimSpace(body[:i]), strings.TrimSpace(body[i+1:]), true
			}
		}
	}
	return body, "", false
}

// stripDepthPrefix counts leading "| " (or "|") groups, returning depth
// 1 + count and the remaining text.
func stripDepthPrefix(raw string) (int, string) {
	depth := 1
	i := 0
	r := []rune(raw)
	for i < len(r) {
		j := i
		for j < len(r) && r[j] == ' ' {
			j++
		}
		if j < len(r) && r[j] == '|' {
			depth++
			i = j + 1
			continue
		}
		break
	}
	return depth, string(r[i:])
}
