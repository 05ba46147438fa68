package verifier

import "github.com/mirelin/fitchproof/logic"

// FixLineNumbers renumbers every NumberedLine in nodes to run 1, 2, 3, ...
// in document order, rewriting every citation inside every Justification
// to follow its cited line. A citation to a line number that no longer
// belongs to any numbered line (because it was deleted, or never existed)
// is rewritten to 0 rather than rejected — the rule checker reports it as
// an ordinary out-of-scope citation.
//
// This lets a caller delete or insert a line anywhere in a proof (by
// giving a new line any unused number) and then call FixLineNumbers to
// restore the 1,2,3,... invariant structure.CheckHalfWellStructured
// requires, without hand-editing every downstream citation.
func FixLineNumbers(nodes []logic.ProofNode) {
	remap := make(map[int]int)
	next := 1

	for i, node := range nodes {
		line, ok := logic.AsNumbered(node)
		if !ok {
			continue
		}
		remap[line.LineNum] = next
		line.LineNum = next
		nodes[i] = line
		next++
	}

	get := func(n int) int {
		if m, ok := remap[n]; ok {
			return m
		}
		return 0
	}
	getRange := func(r logic.SubproofRange) logic.SubproofRange {
		return logic.SubproofRange{Begin: get(r.Begin), End: get(r.End)}
	}

	for i, node := range nodes {
		line, ok := logic.AsNumbered(node)
		if !ok || line.Justification == nil {
			continue
		}
		line.Justification = remapJustification(line.Justification, get, getRange)
		nodes[i] = line
	}
}

func remapJustification(just logic.Justification, get func(int) int, getRange func(logic.SubproofRange) logic.SubproofRange) logic.Justification {
	switch j := just.(type) {
	case logic.Reit:
		return logic.Reit{Line: get(j.Line)}
	case logic.AndIntro:
		lines := make([]int, len(j.Lines))
		for i, n := range j.Lines {
			lines[i] = get(n)
		}
		return logic.AndIntro{Lines: lines}
	case logic.AndElim:
		return logic.AndElim{Line: get(j.Line)}
	case logic.OrIntro:
		return logic.OrIntro{Line: get(j.Line)}
	case logic.OrElim:
		cases := make([]logic.SubproofRange, len(j.Cases))
		for i, r := range j.Cases {
			cases[i] = getRange(r)
		}
		return logic.OrElim{DisjLine: get(j.DisjLine), Cases: cases}
	case logic.EqualsIntro:
		return j
	case logic.EqualsElim:
		return logic.EqualsElim{EqLine: get(j.EqLine), TargetLine: get(j.TargetLine)}
	case logic.NotIntro:
		return logic.NotIntro{Sub: getRange(j.Sub)}
	case logic.NotElim:
		return logic.NotElim{Line: get(j.Line)}
	case logic.BottomIntro:
		return logic.BottomIntro{PhiLine: get(j.PhiLine), NotPhiLine: get(j.NotPhiLine)}
	case logic.BottomElim:
		return logic.BottomElim{Line: get(j.Line)}
	case logic.BicondIntro:
		return logic.BicondIntro{Sub1: getRange(j.Sub1), Sub2: getRange(j.Sub2)}
	case logic.BicondElim:
		return logic.BicondElim{BicondLine: get(j.BicondLine), OperandLine: get(j.OperandLine)}
	case logic.ForallIntro:
		return logic.ForallIntro{Sub: getRange(j.Sub)}
	case logic.ForallElim:
		return logic.ForallElim{Line: get(j.Line)}
	case logic.ExistsIntro:
		return logic.ExistsIntro{Line: get(j.Line)}
	case logic.ExistsElim:
		return logic.ExistsElim{ExistsLine: get(j.ExistsLine), Sub: getRange(j.Sub)}
	case logic.ImpliesIntro:
		return logic.ImpliesIntro{Sub: getRange(j.Sub)}
	case logic.ImpliesElim:
		return logic.ImpliesElim{ImplLine: get(j.ImplLine), AntLine: get(j.AntLine)}
	default:
		return just
	}
}
