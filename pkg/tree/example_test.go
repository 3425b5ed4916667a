package tree_test

import (
	"fmt"

	"github.com/joshuapare/pathtree/pkg/tree"
)

func ExampleTree_Set() {
	t := tree.New()
	t.Set([]string{"8", "this-array", "onemore"}, "X")
	t.Set("list/[ ]", "first")
	t.Set("list/[ ]", "second")

	js, _ := t.ToJSON()
	fmt.Println(js)
	// Output: {"8":{"this-array":{"onemore":"X"}},"list":["first","second"]}
}

func ExampleTree_Get() {
	t := tree.Of("a", "b", "c")
	fmt.Println(t.Get(0), t.Get("2"), t.Has(5))
	// Output: a c false
}

func ExampleTree_Lookup() {
	t := tree.New().Set("a/b", 1)

	v, ok := t.Lookup("a/b")
	fmt.Println(v, ok)
	_, ok = t.Lookup("x/y")
	fmt.Println(ok, t.Len())
	// Output:
	// 1 true
	// false 1
}

func ExampleNewFactory() {
	f, err := tree.NewFactory(tree.WithDelimiter("."))
	if err != nil {
		panic(err)
	}
	t := f.New().Set("db.host", "localhost")
	fmt.Println(t.Get("db.host"))
	// Output: localhost
}
