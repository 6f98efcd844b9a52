package code39_test

import (
	"errors"
	"fmt"

	"github.com/ericlevine/code39"
)

func ExampleEncode() {
	seq := code39.Encode("a")
	fmt.Println(len(seq), seq.Bars(), seq.Units())
	// Output: 29 15 47
}

func ExampleLayout() {
	plan, err := code39.Layout(code39.Encode(""), 2, 40)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(plan.Rects), plan.Width, plan.Height)
	fmt.Printf("%+v\n", plan.Rects[0])
	// Output:
	// 10 62 40
	// {X:0 Width:2 Height:40 Filled:true}
}

func ExampleEncoder_Encode() {
	_, err := code39.NewEncoder(code39.Strict).Encode("user@host")
	fmt.Println(errors.Is(err, code39.ErrUnsupportedCharacter))
	fmt.Println(err)
	// Output:
	// true
	// unsupported character: '@' at index 4
}
