package lang_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/ardnew/yaf/lang"
)

func ExampleParse() {
	tmpl, err := lang.Parse(context.Background(), `{@bold}user:{@reset} {$USER} on {uname -n} \{ok\}`)
	if err != nil {
		fmt.Println(err)

		return
	}

	for seg := range tmpl.All() {
		fmt.Printf("%-7s %q\n", seg.Kind, seg.Body())
	}
	// Output:
	// style   "bold"
	// literal "user:"
	// style   "reset"
	// literal " "
	// env     "USER"
	// literal " on "
	// command "uname -n"
	// literal " {ok}"
}

func ExampleParse_error() {
	_, err := lang.Parse(context.Background(), "kernel: {uname -r")

	fmt.Println(errors.Is(err, lang.ErrUnterminatedDirective))
	fmt.Println(err)
	// Output:
	// true
	// unterminated directive at line 1, column 9
}
