package pathedit

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
)

// EmptyPathCode is the code emitted for a path without segments.
const EmptyPathCode = "gg.NewPath()"

const (
	codePrelude  = "func() *gg.Path {\n\tp := gg.NewPath()\n"
	codeEpilogue = "\treturn p\n}()"
)

// ErrBadCode is returned by ParseCode for source it did not emit.
var ErrBadCode = errors.New("pathedit: unrecognized path code")

// Code returns a Go expression that rebuilds the path with the
// github.com/gogpu/gg API, one call per segment.
//
// Example output:
//
//	func() *gg.Path {
//		p := gg.NewPath()
//		p.MoveTo(10, 20)
//		p.CubicTo(30, 0, 50, 0, 70, 20)
//		return p
//	}()
func (p *Path) Code() string {
	if p.IsEmpty() {
		return EmptyPathCode
	}
	var sb strings.Builder
	sb.WriteString(codePrelude)
	for _, seg := range p.segments {
		sb.WriteByte('\t')
		sb.WriteString(segmentCode(seg))
		sb.WriteByte('\n')
	}
	sb.WriteString(codeEpilogue)
	return sb.String()
}

func segmentCode(seg Segment) string {
	switch s := seg.(type) {
	case MoveTo:
		return call("MoveTo", s.Point)
	case LineTo:
		return call("LineTo", s.Point)
	case QuadTo:
		return call("QuadraticTo", s.Control, s.Point)
	case CubicTo:
		return call("CubicTo", s.Control1, s.Control2, s.Point)
	case Close:
		return "p.Close()"
	}
	panic(fmt.Sprintf("pathedit: unknown segment %T", seg))
}

func call(method string, pts ...Point) string {
	args := make([]string, 0, 2*len(pts))
	for _, pt := range pts {
		args = append(args, formatCoord(pt.X), formatCoord(pt.Y))
	}
	return "p." + method + "(" + strings.Join(args, ", ") + ")"
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// segmentArity maps emitted method names to their argument count.
var segmentArity = map[string]int{
	"MoveTo":      2,
	"LineTo":      2,
	"QuadraticTo": 4,
	"CubicTo":     6,
	"Close":       0,
}

// ParseCode reads source produced by Path.Code back into a path.
// Statements other than the builder calls Code emits are rejected with an
// error wrapping ErrBadCode.
func ParseCode(src string) (*Path, error) {
	src = strings.TrimSpace(src)
	if src == EmptyPathCode {
		return NewPath(), nil
	}

	expr, err := parser.ParseExpr(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCode, err)
	}
	outer, ok := expr.(*ast.CallExpr)
	if !ok || len(outer.Args) != 0 {
		return nil, fmt.Errorf("%w: want an immediately called func literal", ErrBadCode)
	}
	lit, ok := outer.Fun.(*ast.FuncLit)
	if !ok {
		return nil, fmt.Errorf("%w: want an immediately called func literal", ErrBadCode)
	}

	stmts := lit.Body.List
	if len(stmts) < 2 {
		return nil, fmt.Errorf("%w: body too short", ErrBadCode)
	}
	if _, ok := stmts[0].(*ast.AssignStmt); !ok {
		return nil, fmt.Errorf("%w: missing path declaration", ErrBadCode)
	}
	if _, ok := stmts[len(stmts)-1].(*ast.ReturnStmt); !ok {
		return nil, fmt.Errorf("%w: missing return", ErrBadCode)
	}

	p := NewPath()
	for _, stmt := range stmts[1 : len(stmts)-1] {
		if err := parseSegment(p, stmt); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func parseSegment(p *Path, stmt ast.Stmt) error {
	es, ok := stmt.(*ast.ExprStmt)
	if !ok {
		return fmt.Errorf("%w: unexpected statement", ErrBadCode)
	}
	c, ok := es.X.(*ast.CallExpr)
	if !ok {
		return fmt.Errorf("%w: unexpected expression", ErrBadCode)
	}
	sel, ok := c.Fun.(*ast.SelectorExpr)
	if !ok {
		return fmt.Errorf("%w: unexpected call", ErrBadCode)
	}
	method := sel.Sel.Name
	arity, ok := segmentArity[method]
	if !ok {
		return fmt.Errorf("%w: unknown method %s", ErrBadCode, method)
	}
	if len(c.Args) != arity {
		return fmt.Errorf("%w: %s takes %d arguments, got %d", ErrBadCode, method, arity, len(c.Args))
	}

	v := make([]float64, arity)
	for i, arg := range c.Args {
		f, err := parseNumber(arg)
		if err != nil {
			return fmt.Errorf("%w: %s argument %d: %v", ErrBadCode, method, i, err)
		}
		v[i] = f
	}

	switch method {
	case "MoveTo":
		p.MoveTo(v[0], v[1])
	case "LineTo":
		p.LineTo(v[0], v[1])
	case "QuadraticTo":
		p.QuadraticTo(v[0], v[1], v[2], v[3])
	case "CubicTo":
		p.CubicTo(v[0], v[1], v[2], v[3], v[4], v[5])
	case "Close":
		p.Close()
	}
	return nil
}

// parseNumber accepts a numeric literal with an optional leading minus.
func parseNumber(e ast.Expr) (float64, error) {
	neg := false
	if u, ok := e.(*ast.UnaryExpr); ok && u.Op == token.SUB {
		neg = true
		e = u.X
	}
	lit, ok := e.(*ast.BasicLit)
	if !ok || (lit.Kind != token.INT && lit.Kind != token.FLOAT) {
		return 0, errors.New("not a number")
	}
	f, err := strconv.ParseFloat(lit.Value, 64)
	if err != nil {
		return 0, err
	}
	if neg {
		f = -f
	}
	return f, nil
}
