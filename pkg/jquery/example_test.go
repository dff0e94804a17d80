package jquery_test

import (
	"fmt"

	"github.com/aretw0/jsquery/pkg/jquery"
)

func ExampleIDRef() {
	code, err := jquery.IDRef("menu").AddClass("open").FadeIn(200).JSCode()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(code)
	// Output: $('#menu').addClass('open').fadeIn(200)
}

// Calls that match no documented signature are reported when rendering.
func ExampleInvocation_Err() {
	_, err := jquery.IDRef("menu").AddClass(true).JSCode()
	fmt.Println(err != nil)
	// Output: true
}
