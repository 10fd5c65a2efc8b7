// Copyright 2021-2026 ShadeKit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

var (
	_ Stmt = (*Compound)(nil)
	_ Stmt = (*DeclaratorList)(nil)
	_ Stmt = (*ExpressionStatement)(nil)
	_ Stmt = (*If)(nil)
	_ Stmt = (*Switch)(nil)
	_ Stmt = (*Case)(nil)
	_ Stmt = (*For)(nil)
	_ Stmt = (*While)(nil)
	_ Stmt = (*Return)(nil)
	_ Stmt = (*Jump)(nil)
)

// Compound is a braced block of statements; it is also how function
// bodies are represented.
type Compound struct {
	stmt

	Statements []Stmt
}

// Kind implements [Node].
func (*Compound) Kind() Kind { return KindCompound }

// DeclaratorList is one declaration statement that introduces one or
// more variables, like "float a = 1, b = 2;".
type DeclaratorList struct {
	stmt

	Declarators []*Variable
}

// Kind implements [Node].
func (*DeclaratorList) Kind() Kind { return KindDeclaratorList }

// ExpressionStatement evaluates an expression for its side effects.
type ExpressionStatement struct {
	stmt

	Expression Expr
}

// Kind implements [Node].
func (*ExpressionStatement) Kind() Kind { return KindExpressionStatement }

// If is a conditional branch. OnFalse is nil when there is no else
// clause.
type If struct {
	stmt

	Condition Expr
	OnTrue    Stmt
	OnFalse   Stmt
}

// Kind implements [Node].
func (*If) Kind() Kind { return KindIf }

// Switch dispatches on the value of Test.
type Switch struct {
	stmt

	Test  Expr
	Cases []*Case
}

// Kind implements [Node].
func (*Switch) Kind() Kind { return KindSwitch }

// Case is one arm of a [Switch]. A default arm has no labels.
type Case struct {
	stmt

	Labels []*Literal
	Body   Stmt
}

// Kind implements [Node].
func (*Case) Kind() Kind { return KindCase }

// For is a counted loop. Init is a statement so that it can be either
// a [DeclaratorList] or an [ExpressionStatement]; any of the three
// header slots may be nil.
type For struct {
	stmt

	Init      Stmt
	Condition Expr
	Increment Expr
	Body      Stmt
}

// Kind implements [Node].
func (*For) Kind() Kind { return KindFor }

// While is a condition-driven loop, covering both while and do-while
// spellings.
type While struct {
	stmt

	// DoWhile marks a do { } while (...) loop, whose body runs before
	// the first condition check.
	DoWhile   bool
	Condition Expr
	Body      Stmt
}

// Kind implements [Node].
func (*While) Kind() Kind { return KindWhile }

// Return exits the enclosing function, optionally yielding Value.
type Return struct {
	stmt

	// Discard marks the fragment-shader discard form, which abandons
	// the fragment instead of returning a value.
	Discard bool
	Value   Expr
}

// Kind implements [Node].
func (*Return) Kind() Kind { return KindReturn }

const (
	JumpBreak JumpMode = iota
	JumpContinue
)

// JumpMode distinguishes the loop-control forms of a [Jump].
type JumpMode byte

// String implements [fmt.Stringer].
func (m JumpMode) String() string {
	if m == JumpContinue {
		return "continue"
	}
	return "break"
}

// Jump is a break or continue statement.
type Jump struct {
	stmt

	Mode JumpMode
}

// Kind implements [Node].
func (*Jump) Kind() Kind { return KindJump }
