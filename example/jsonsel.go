package main

import (
	"fmt"

	"github.com/ericchiang/jsonsel"
	"github.com/ericchiang/jsonsel/internal/domnode"
)

var data = `{
  "headers": [
    {"id": "foo", "text": "a header"},
    {"id": "bar", "text": "another header"}
  ]
}`

func main() {
	plan, err := jsonsel.Compile(`object:has(.id:val("foo"))`)
	if err != nil {
		panic(err)
	}
	root := domnode.Parse(data)
	matches, err := plan.All(root)
	if err != nil {
		panic(err)
	}
	for _, n := range matches {
		fmt.Println(n.Raw())
	}
}
