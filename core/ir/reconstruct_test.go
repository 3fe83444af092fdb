// Copyright 2024 by the Authors
// This file is part of the go-uplc library.
//
// The go-uplc library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-uplc library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-uplc library. If not, see <http://www.gnu.org/licenses/>.

package ir

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// lazy let x = E in if cond then (x, x) else y should float x into the Then
// branch: it is unused on the Else path, so pushing it there does not
// duplicate work on a path that never needed it.
func TestFloatIntoThenBranch(t *testing.T) {
	tree := &Let{
		Flag: Lazy,
		Bindings: []Binding{
			{Name: "x", Rhs: &Builtin{Name: "someExpensiveThing"}},
		},
		Body: &IfThenElse{
			Cond: &ExternalVar{Name: "cond"},
			Then: &Apply{
				Function:  &Apply{Function: &Builtin{Name: "mkPair"}, Argument: &Var{Name: "x"}},
				Argument: &Var{Name: "x"},
			},
			Else: &ExternalVar{Name: "y"},
		},
	}

	indexed := BuildIndex(tree)
	rebuilt := Reconstruct(indexed)

	top, ok := rebuilt.(*IfThenElse)
	require.True(t, ok, "expected the top-level shape to remain an IfThenElse")

	// The Else branch must be untouched: no Let wrapping it.
	_, elseIsLet := top.Else.(*Let)
	require.False(t, elseIsLet, "x must not be floated onto the Else branch, which never uses it")

	// The Then branch must now be wrapped in a fresh Let binding x.
	thenLet, ok := top.Then.(*Let)
	require.True(t, ok, "expected x to be floated directly onto the Then branch")
	require.Equal(t, Plain, thenLet.Flag)
	require.Len(t, thenLet.Bindings, 1)
	require.Equal(t, "x", thenLet.Bindings[0].Name)
}

// A lazy binding never referenced anywhere is dropped entirely.
func TestUnusedLazyLetIsDropped(t *testing.T) {
	tree := &Let{
		Flag: Lazy,
		Bindings: []Binding{
			{Name: "unused", Rhs: &Builtin{Name: "wasted"}},
		},
		Body: &ExternalVar{Name: "y"},
	}

	rebuilt := Reconstruct(BuildIndex(tree))

	_, isLet := rebuilt.(*Let)
	require.False(t, isLet, "an unused lazy binding must vanish, not reappear as an empty Let")
	ext, ok := rebuilt.(*ExternalVar)
	require.True(t, ok)
	require.Equal(t, "y", ext.Name)
}

// Plain and Recursive lets are never touched by the float pass.
func TestPlainAndRecursiveLetsAreUntouched(t *testing.T) {
	plain := &Let{
		Flag:     Plain,
		Bindings: []Binding{{Name: "a", Rhs: &Const{Value: 1}}},
		Body:     &Var{Name: "a"},
	}
	rebuilt := Reconstruct(BuildIndex(plain))
	out, ok := rebuilt.(*Let)
	require.True(t, ok)
	require.Equal(t, Plain, out.Flag)
	require.Len(t, out.Bindings, 1)

	rec := &Let{
		Flag:     Recursive,
		Bindings: []Binding{{Name: "loop", Rhs: &Apply{Function: &Var{Name: "loop"}, Argument: &Const{Value: 1}}}},
		Body:     &Var{Name: "loop"},
	}
	rebuiltRec := Reconstruct(BuildIndex(rec))
	outRec, ok := rebuiltRec.(*Let)
	require.True(t, ok)
	require.Equal(t, Recursive, outRec.Flag)
}

// b's RHS references a, so a's only recorded use site is textually where
// b's RHS sits (at the inner Let's declaration point), not wherever b itself
// later gets used. The pass floats each binding independently rather than
// chasing transitive uses to a fixpoint, so a only rises as far as that use
// site requires, while b (whose own use is inside Then) floats further in.
// Reconstruction must still let b's relocated RHS resolve a by name.
func TestFloatedBindingsPreserveInterDependency(t *testing.T) {
	tree := &Let{
		Flag:     Lazy,
		Bindings: []Binding{{Name: "a", Rhs: &Const{Value: 1}}},
		Body: &Let{
			Flag:     Lazy,
			Bindings: []Binding{{Name: "b", Rhs: &Var{Name: "a"}}},
			Body: &IfThenElse{
				Cond: &ExternalVar{Name: "cond"},
				Then: &Var{Name: "b"},
				Else: &Const{Value: 0},
			},
		},
	}

	rebuilt := Reconstruct(BuildIndex(tree))

	outerLet, ok := rebuilt.(*Let)
	require.True(t, ok, "a stays where b's RHS used to sit, ahead of the conditional")
	require.Equal(t, Plain, outerLet.Flag)
	require.Equal(t, "a", outerLet.Bindings[0].Name)

	top, ok := outerLet.Body.(*IfThenElse)
	require.True(t, ok)

	_, elseIsLet := top.Else.(*Let)
	require.False(t, elseIsLet, "b must not be floated onto the Else branch, which never uses it")

	innerLet, ok := top.Then.(*Let)
	require.True(t, ok, "b floats onto the Then branch, its sole use site")
	require.Equal(t, "b", innerLet.Bindings[0].Name)

	bRhs, ok := innerLet.Bindings[0].Rhs.(*Var)
	require.True(t, ok)
	require.Equal(t, "a", bRhs.Name, "b's relocated RHS must still resolve a by name")
}

// A name bound twice at different scopes (shadowing) must not let a use in
// the inner scope be attributed to the outer binding's BindingId.
func TestShadowingKeepsBindingsDistinct(t *testing.T) {
	tree := &Let{
		Flag:     Lazy,
		Bindings: []Binding{{Name: "x", Rhs: &Const{Value: "outer"}}},
		Body: &Lambda{
			Param: "x", // shadows the outer lazy let
			Body:  &Var{Name: "x"},
		},
	}

	indexed := BuildIndex(tree)
	// The outer x has zero recorded uses: the only Var named "x" resolves to
	// the lambda parameter, not the lazy let.
	require.Empty(t, indexed.Uses, "the inner Var(x) must resolve to the lambda param, not the outer lazy let")

	rebuilt := Reconstruct(indexed)
	_, isLet := rebuilt.(*Let)
	require.False(t, isLet, "the shadowed, now-unused outer binding must be dropped")
}
