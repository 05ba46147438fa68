package main

import (
	"fmt"
	"strings"

	"github.com/mirelin/fitchproof/logic"
)

func renderRange(r logic.SubproofRange) string {
	return fmt.Sprintf("%d-%d", r.Begin, r.End)
}

func renderInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, " ")
}

// renderJustification is the inverse of parser.ParseJustification.
func renderJustification(just logic.Justification) string {
	switch j := just.(type) {
	case logic.AndIntro:
		return "AndIntro " + renderInts(j.Lines)
	case logic.AndElim:
		return fmt.Sprintf("AndElim %d", j.Line)
	case logic.OrIntro:
		return fmt.Sprintf("OrIntro %d", j.Line)
	case logic.OrElim:
		parts := make([]string, len(j.Cases))
		for i, r := range j.Cases {
			parts[i] = renderRange(r)
		}
		return fmt.Sprintf("OrElim %d %s", j.DisjLine, strings.Join(parts, " "))
	case logic.NotIntro:
		return "NotIntro " + renderRange(j.Sub)
	case logic.NotElim:
		return fmt.Sprintf("NotElim %d", j.Line)
	case logic.BottomIntro:
		return fmt.Sprintf("BottomIntro %d %d", j.PhiLine, j.NotPhiLine)
	case logic.BottomElim:
		return fmt.Sprintf("BottomElim %d", j.Line)
	case logic.ImpliesIntro:
		return "ImpliesIntro " + renderRange(j.Sub)
	case logic.ImpliesElim:
		return fmt.Sprintf("ImpliesElim %d %d", j.ImplLine, j.AntLine)
	case logic.BicondIntro:
		return fmt.Sprintf("BicondIntro %s %s", renderRange(j.Sub1), renderRange(j.Sub2))
	case logic.BicondElim:
		return fmt.Sprintf("BicondElim %d %d", j.BicondLine, j.OperandLine)
	case logic.EqualsIntro:
		return "EqualsIntro"
	case logic.EqualsElim:
		return fmt.Sprintf("EqualsElim %d %d", j.EqLine, j.TargetLine)
	case logic.ForallIntro:
		return "ForallIntro " + renderRange(j.Sub)
	case logic.ForallElim:
		return fmt.Sprintf("ForallElim %d", j.Line)
	case logic.ExistsIntro:
		return fmt.Sprintf("ExistsIntro %d", j.Line)
	case logic.ExistsElim:
		return fmt.Sprintf("ExistsElim %d %s", j.ExistsLine, renderRange(j.Sub))
	case logic.Reit:
		return fmt.Sprintf("Reit %d", j.Line)
	default:
		return ""
	}
}
