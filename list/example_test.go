// SPDX-License-Identifier: MIT

package list_test

import (
	"fmt"

	"github.com/katalvlaran/sparsemat/list"
)

// ExampleList_InsertBefore keeps a list sorted by scanning with the cursor
// and inserting before the first larger element.
func ExampleList_InsertBefore() {
	l := list.New[int]()
	for _, v := range []int{5, 1, 4, 2, 3} {
		for l.MoveFront(); l.Index() != -1; l.MoveNext() {
			if cur, _ := l.Get(); cur > v {
				break
			}
		}
		if l.Index() == -1 {
			l.Append(v)
		} else {
			_ = l.InsertBefore(v) // cursor is defined here
		}
	}
	fmt.Println(l)
	// Output:
	// 1 2 3 4 5
}

func ExampleList_All() {
	l := list.New("a", "b", "c")
	l.MoveBack()
	for v := range l.All() {
		fmt.Print(v)
	}
	fmt.Println(" cursor:", l.Index())
	// Output:
	// abc cursor: 2
}
