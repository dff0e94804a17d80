// Package jquery is a minimal stand-in of the builder package for analyzer tests.
package jquery

type Arg = any

type Invocation struct{}

type Builder struct{}

func Document() *Invocation { return &Invocation{} }

func (inv *Invocation) Bind(args ...Arg) *Invocation     { return inv }
func (inv *Invocation) On(args ...Arg) *Invocation       { return inv }
func (inv *Invocation) Show(args ...Arg) *Invocation     { return inv }
func (inv *Invocation) Size(args ...Arg) *Invocation     { return inv }
func (inv *Invocation) Enable() *Invocation              { return inv }
func (inv *Invocation) Context() string                  { return "" }
func (inv *Invocation) Call(name string, a ...Arg) *Invocation { return inv }

func Static(name string, args ...Arg) *Invocation { return &Invocation{} }

func (b *Builder) Static(name string, args ...Arg) *Invocation { return &Invocation{} }

func ParseJSON(json Arg) *Invocation { return &Invocation{} }

func GetJSON(url string, args ...Arg) *Invocation { return &Invocation{} }
