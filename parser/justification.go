package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mirelin/fitchproof/logic"
)

var ruleNames = []string{
	"AndIntro", "AndElim", "OrIntro", "OrElim",
	"NotIntro", "NotElim", "BottomIntro", "BottomElim",
	"ImpliesIntro", "ImpliesElim", "BicondIntro", "BicondElim",
	"EqualsIntro", "EqualsElim",
	"ForallIntro", "ForallElim", "ExistsIntro", "ExistsElim",
	"Reit", "Premise",
}

// ParseJustification parses the text following ":" on a numbered line,
// e.g. "AndElim 1" or "ImpliesIntro 2-3" or "OrElim 1 (2-3, 4-5)".
func ParseJustification(src string) (logic.Justification, error) {
	fields := strings.Fields(src)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty justification", ErrBadLineSyntax)
	}
	keyword := fields[0]
	args := strings.TrimSpace(strings.TrimPrefix(src, keyword))

	if !containsRule(keyword) {
		suggestion := suggestRule(keyword)
		if suggestion != "" {
			return nil, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownRule, keyword, suggestion)
		}
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, keyword)
	}

	switch keyword {
	case "AndIntro":
		ns, err := parseIntList(args)
		if err != nil {
			return nil, err
		}
		return logic.AndIntro{Lines: ns}, nil
	case "AndElim":
		n, err := parseOneInt(args)
		if err != nil {
			return nil, err
		}
		return logic.AndElim{Line: n}, nil
	case "OrIntro":
		n, err := parseOneInt(args)
		if err != nil {
			return nil, err
		}
		return logic.OrIntro{Line: n}, nil
	case "OrElim":
		n, ranges, err := parseIntThenRanges(args)
		if err != nil {
			return nil, err
		}
		return logic.OrElim{DisjLine: n, Cases: ranges}, nil
	case "NotIntro":
		r, err := parseOneRange(args)
		if err != nil {
			return nil, err
		}
		return logic.NotIntro{Sub: r}, nil
	case "NotElim":
		n, err := parseOneInt(args)
		if err != nil {
			return nil, err
		}
		return logic.NotElim{Line: n}, nil
	case "BottomIntro":
		a, b, err := parseTwoInts(args)
		if err != nil {
			return nil, err
		}
		return logic.BottomIntro{PhiLine: a, NotPhiLine: b}, nil
	case "BottomElim":
		n, err := parseOneInt(args)
		if err != nil {
			return nil, err
		}
		return logic.BottomElim{Line: n}, nil
	case "ImpliesIntro":
		r, err := parseOneRange(args)
		if err != nil {
			return nil, err
		}
		return logic.ImpliesIntro{Sub: r}, nil
	case "ImpliesElim":
		a, b, err := parseTwoInts(args)
		if err != nil {
			return nil, err
		}
		return logic.ImpliesElim{ImplLine: a, AntLine: b}, nil
	case "BicondIntro":
		r1, r2, err := parseTwoRanges(args)
		if err != nil {
			return nil, err
		}
		return logic.BicondIntro{Sub1: r1, Sub2: r2}, nil
	case "BicondElim":
		a, b, err := parseTwoInts(args)
		if err != nil {
			return nil, err
		}
		return logic.BicondElim{BicondLine: a, OperandLine: b}, nil
	case "EqualsIntro":
		return logic.EqualsIntro{}, nil
	case "EqualsElim":
		a, b, err := parseTwoInts(args)
		if err != nil {
			return nil, err
		}
		return logic.EqualsElim{EqLine: a, TargetLine: b}, nil
	case "ForallIntro":
		r, err := parseOneRange(args)
		if err != nil {
			return nil, err
		}
		return logic.ForallIntro{Sub: r}, nil
	case "ForallElim":
		n, err := parseOneInt(args)
		if err != nil {
			return nil, err
		}
		return logic.ForallElim{Line: n}, nil
	case "ExistsIntro":
		n, err := parseOneInt(args)
		if err != nil {
			return nil, err
		}
		return logic.ExistsIntro{Line: n}, nil
	case "ExistsElim":
		n, r, err := parseIntThenRange(args)
		if err != nil {
			return nil, err
		}
		return logic.ExistsElim{ExistsLine: n, Sub: r}, nil
	case "Reit":
		n, err := parseOneInt(args)
		if err != nil {
			return nil, err
		}
		return logic.Reit{Line: n}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, keyword)
	}
}

func containsRule(name string) bool {
	for _, r := range ruleNames {
		if r == name {
			return true
		}
	}
	return false
}

// suggestRule finds the closest known rule name to a misspelled
// keyword, using a fuzzy-match ranking over ruleNames. Only rule names
// that contain the keyword's letters in order (case-insensitively) are
// candidates, so a keyword with an extra or wrong letter gets no
// suggestion.
func suggestRule(typo string) string {
	ranks := fuzzy.RankFindFold(typo, ruleNames)
	if len(ranks) == 0 {
		return ""
	}
	return ranks[0].Target
}

func cleanArgs(s string) string {
	s = strings.ReplaceAll(s, "(", " ")
	s = strings.ReplaceAll(s, ")", " ")
	s = strings.ReplaceAll(s, ",", " ")
	return strings.TrimSpace(s)
}

func parseOneInt(s string) (int, error) {
	fields := strings.Fields(cleanArgs(s))
	if len(fields) != 1 {
		return 0, fmt.Errorf("%w: expected one line number, got %q", ErrBadCitation, s)
	}
	return strconv.Atoi(fields[0])
}

func parseTwoInts(s string) (int, int, error) {
	fields := strings.Fields(cleanArgs(s))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("%w: expected two line numbers, got %q", ErrBadCitation, s)
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrBadCitation, err)
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrBadCitation, err)
	}
	return a, b, nil
}

func parseIntList(s string) ([]int, error) {
	fields := strings.Fields(cleanArgs(s))
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: expected one or more line numbers, got %q", ErrBadCitation, s)
	}
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadCitation, err)
		}
		out[i] = n
	}
	return out, nil
}

func parseOneRange(s string) (logic.SubproofRange, error) {
	s = cleanArgs(s)
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return logic.SubproofRange{}, fmt.Errorf("%w: expected a subproof range m-n, got %q", ErrBadCitation, s)
	}
	a, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return logic.SubproofRange{}, fmt.Errorf("%w: %v", ErrBadCitation, err)
	}
	b, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return logic.SubproofRange{}, fmt.Errorf("%w: %v", ErrBadCitation, err)
	}
	return logic.SubproofRange{Begin: a, End: b}, nil
}

func parseTwoRanges(s string) (logic.SubproofRange, logic.SubproofRange, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return logic.SubproofRange{}, logic.SubproofRange{}, fmt.Errorf("%w: expected two subproof ranges, got %q", ErrBadCitation, s)
	}
	r1, err := parseOneRange(fields[0])
	if err != nil {
		return logic.SubproofRange{}, logic.SubproofRange{}, err
	}
	r2, err := parseOneRange(fields[1])
	if err != nil {
		return logic.SubproofRange{}, logic.SubproofRange{}, err
	}
	return r1, r2, nil
}

func parseIntThenRanges(s string) (int, []logic.SubproofRange, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 {
		return 0, nil, fmt.Errorf("%w: expected a line number followed by one or more subproof ranges, got %q", ErrBadCitation, s)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrBadCitation, err)
	}
	ranges := make([]logic.SubproofRange, len(fields)-1)
	for i, f := range fields[1:] {
		r, err := parseOneRange(f)
		if err != nil {
			return 0, nil, err
		}
		ranges[i] = r
	}
	return n, ranges, nil
}

func parseIntThenRange(s string) (int, logic.SubproofRange, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, logic.SubproofRange{}, fmt.Errorf("%w: expected a line number followed by a subproof range, got %q", ErrBadCitation, s)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, logic.SubproofRange{}, fmt.Errorf("%w: %v", ErrBadCitation, err)
	}
	r, err := parseOneRange(fields[1])
	if err != nil {
		return 0, logic.SubproofRange{}, err
	}
	return n, r, nil
}
