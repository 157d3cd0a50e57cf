// Package comb is a parser-combinator engine.
//
// Grammars are written as ordinary Go values: small parsers such as Is,
// InRange or Tag are combined with And, Or, Many, Some, Filter, Map, Not,
// Lazy, All, Between, SeparatedList, SeparatedPair, Position and TakeUntil
// into larger ones. There is no grammar compiler and no tokenizer pass; a
// parser reads elements straight from a Cursor.
//
// # Cursors
//
// A Cursor is an immutable value holding the source slice and an index.
// Advancing returns a new cursor, so a combinator that backtracks simply
// keeps the cursor it started with:
//
//	c := comb.NewByteCursor([]byte("a,b"))
//	v, next, err := comb.IsByte('a').Parse(c)
//	// c is still at 0, next is at 1
//
// # Errors
//
// Every failure is an error value; parsers never panic on bad input. Leaf
// errors (*Error) carry a location and a message. Combinators wrap the
// errors of their children in node errors such as *AndError and *OrError,
// which remember which child failed. Resolve walks that tree and picks the
// leaf that got furthest into the input: at an Or node the alternative with
// the larger position wins, and the first alternative wins ties. Report
// renders the chosen leaf with a few lines of context:
//
//	Syntax error at line 1, byte offset 4: expected byte 0x5D (']'), found byte 0x3B (';')
//
//	  > 1 | [1,2;3]
//	            ^--- here
//
// Child errors are stored as plain error values, so the size of a
// combinator's error does not grow with the depth of the grammar.
//
// # Recursion
//
// Lazy and Ref defer building a parser until parse time, which is how a
// rule refers to itself. The engine has no recursion limit: a left
// recursive grammar exhausts the goroutine stack.
package comb
