package a

import "github.com/aretw0/jsquery/pkg/jquery"

const trim = "trim"

func handlers(name string) {
	jquery.Document().Bind("click") // want `jquery method bind is deprecated since jQuery 3.0`
	jquery.Document().On("click").Show()
	jquery.Document().Show().Size() // want `jquery method size is deprecated since jQuery 1.8, removed in jQuery 3.0`
	_ = jquery.Document().Context() // want `jquery method context is deprecated since jQuery 1.10, removed in jQuery 3.0`
	jquery.Document().Enable()
	jquery.Document().Call("bind")

	jquery.ParseJSON(`{}`) // want `jquery method jQuery.parseJSON is deprecated since jQuery 3.0`
	jquery.GetJSON("/api")

	jquery.Static(trim, " x ") // want `jquery method jQuery.trim is deprecated since jQuery 3.5`
	jquery.Static("ajax")
	jquery.Static(name)

	var b jquery.Builder
	b.Static("isArray", nil) // want `jquery method jQuery.isArray is deprecated since jQuery 3.2`
}
