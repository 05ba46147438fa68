package parser

import (
	"fmt"

	"github.com/mirelin/fitchproof/logic"
)

// ParseFormula parses a single formula from src using precedence
// ¬ > ∧ > ∨ > → > ↔. Chains of ∧ or ∨ become one n-ary And/Or, → is
// right-associative, and ↔ is left-associative. A quantifier binds as
// tightly as ¬: its body is the single negation, atom, or parenthesized
// group that follows it.
func ParseFormula(src string) (logic.Formula, error) {
	toks, err := lexFormula(src)
	if err != nil {
		return nil, err
	}
	p := &formulaParser{toks: toks}
	f, err := p.parseBicond()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokEOF {
		return nil, fmt.Errorf("%w: trailing input after formula", ErrUnexpectedToken)
	}
	return f, nil
}

type formulaParser struct {
	toks []token
	pos  int
}

func (p *formulaParser) peek() token { return p.toks[p.pos] }

func (p *formulaParser) next() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *formulaParser) expect(k tokenKind) (token, error) {
	if p.peek().kind != k {
		return token{}, fmt.Errorf("%w: got %q", ErrUnexpectedToken, p.peek().text)
	}
	return p.next(), nil
}

func (p *formulaParser) parseBicond() (logic.Formula, error) {
	left, err := p.parseImplies()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokBicond {
		p.next()
		right, err := p.parseImplies()
		if err != nil {
			return nil, err
		}
		left = logic.Bicond{Left: left, Right: right}
	}
	return left, nil
}

func (p *formulaParser) parseImplies() (logic.Formula, error) {
	left, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tokImplies {
		p.next()
		right, err := p.parseImplies() // right-associative
		if err != nil {
			return nil, err
		}
		return logic.Implies{Antecedent: left, Consequent: right}, nil
	}
	return left, nil
}

func (p *formulaParser) parseOr() (logic.Formula, error) {
	disjuncts := []logic.Formula{}
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	disjuncts = append(disjuncts, first)
	for p.peek().kind == tokOr {
		p.next()
		next, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		disjuncts = append(disjuncts, next)
	}
	if len(disjuncts) == 1 {
		return disjuncts[0], nil
	}
	return logic.Or{Disjuncts: disjuncts}, nil
}

func (p *formulaParser) parseAnd() (logic.Formula, error) {
	conjuncts := []logic.Formula{}
	first, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	conjuncts = append(conjuncts, first)
	for p.peek().kind == tokAnd {
		p.next()
		next, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		conjuncts = append(conjuncts, next)
	}
	if len(conjuncts) == 1 {
		return conjuncts[0], nil
	}
	return logic.And{Conjuncts: conjuncts}, nil
}

func (p *formulaParser) parseNot() (logic.Formula, error) {
	if p.peek().kind == tokNot {
		p.next()
		inner, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return logic.Not{Inner: inner}, nil
	}
	return p.parseAtom()
}

func (p *formulaParser) parseAtom() (logic.Formula, error) {
	switch p.peek().kind {
	case tokBottom:
		p.next()
		return logic.Bottom{}, nil
	case tokLParen:
		p.next()
		f, err := p.parseBicond()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, fmt.Errorf("%w", ErrUnterminatedGroup)
		}
		return f, nil
	case tokForall, tokExists:
		isForall := p.peek().kind == tokForall
		p.next()
		v, err := p.expect(tokIdent)
		if err != nil {
			return nil, err
		}
		if p.peek().kind == tokDot {
			p.next()
		}
		body, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		if isForall {
			return logic.Forall{Var: v.text, Body: body}, nil
		}
		return logic.Exists{Var: v.text, Body: body}, nil
	case tokIdent:
		name := p.next().text
		var args []logic.Term
		if p.peek().kind == tokLParen {
			p.next()
			args, err := p.parseTermList()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tokRParen); err != nil {
				return nil, fmt.Errorf("%w", ErrUnterminatedGroup)
			}
			return p.finishAtomOrEquals(name, args)
		}
		return p.finishAtomOrEquals(name, args)
	default:
		return nil, fmt.Errorf("%w: got %q", ErrUnexpectedToken, p.peek().text)
	}
}

// finishAtomOrEquals decides, having parsed an identifier (and possibly
// its argument list) whether it names a term now compared for equality,
// a predicate application, or a nullary atomic proposition.
func (p *formulaParser) finishAtomOrEquals(name string, args []logic.Term) (logic.Formula, error) {
	left := termFor(name, args)
	if p.peek().kind == tokEquals {
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return logic.Equals{Left: left, Right: right}, nil
	}
	if len(args) == 0 {
		return logic.AtomicProp{Name: name}, nil
	}
	return logic.PredApp{Pred: name, Args: args}, nil
}

func termFor(name string, args []logic.Term) logic.Term {
	if len(args) == 0 {
		return logic.Atomic{Name: name}
	}
	return logic.FuncApp{Func: name, Args: args}
}

func (p *formulaParser) parseTerm() (logic.Term, error) {
	t, err := p.expect(tokIdent)
	if err != nil {
		return nil, err
	}
	var args []logic.Term
	if p.peek().kind == tokLParen {
		p.next()
		args, err = p.parseTermList()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, fmt.Errorf("%w", ErrUnterminatedGroup)
		}
	}
	return termFor(t.text, args), nil
}

func (p *formulaParser) parseTermList() ([]logic.Term, error) {
	var terms []logic.Term
	if p.peek().kind == tokRParen {
		return terms, nil
	}
	for {
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms = append(terms, t)
		if p.peek().kind != tokComma {
			break
		}
		p.next()
	}
	return terms, nil
}
