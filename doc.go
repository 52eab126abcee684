// Package sparsemat is a sparse-matrix algebra engine built on a
// cursor-based doubly linked list.
//
// What is in the box?
//
//	• list/      generic cursor list List[T]: one movable cursor, O(1)
//	             insert/delete at the cursor, arena-backed nodes
//	• sparse/    n×n row-sparse Matrix: Set/At, Equal, Copy, Transpose,
//	             Add/Sub/ScalarMult and Mult as merges over sorted lists
//	• problem/   problem-file codec (n a b header + row col value triplets)
//	• report/    the labeled A/B operation report
//	• lex/       lexicographic line ordering by cursor-list insertion
//	• config/    YAML configuration for the command
//	• cmd/sparse  CLI: run, lex, stats
//
// Storage model:
//
//	rows:  [1] ──► [3] ──► [7]              (only non-empty rows, ascending)
//	        │       │       │
//	        ▼       ▼       ▼
//	      (1,2.0) (2,3.0) (4,-1.5)          (entries, ascending column)
//	      (3,1.0)
//
// Values are never stored as exactly zero: Set(i, j, 0) deletes, and every
// algebra operation drops cancelled entries and empty rows.
//
// Quick example:
//
//	a, _ := sparse.New(3)
//	_ = a.Set(1, 1, 2)
//	_ = a.Set(3, 2, 3)
//	p, _ := a.Mult(a.Transpose())
//	fmt.Print(p)
//
// None of the types are safe for concurrent use.
package sparsemat
