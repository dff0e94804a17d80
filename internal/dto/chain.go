package dto

// ChainSpec is the YAML/JSON layout of a declarative jQuery chain:
//
//	root: {kind: id, value: main}
//	calls:
//	  - method: addClass
//	    args: [{string: active}]
type ChainSpec struct {
	// Version restricts the catalog to a jQuery version, e.g. "1.8". Empty means the latest.
	Version string      `json:"version,omitempty" mapstructure:"version"`
	Root    ChainRoot   `json:"root" mapstructure:"root"`
	Calls   []ChainCall `json:"calls,omitempty" mapstructure:"calls"`
}

// ChainRoot is the start of a chain. Kind is one of id, class, element,
// selector, html, document, window, this, expr or static.
type ChainRoot struct {
	Kind  string     `json:"kind" mapstructure:"kind"`
	Value string     `json:"value,omitempty" mapstructure:"value"`
	Args  []ChainArg `json:"args,omitempty" mapstructure:"args"`
}

// ChainCall is one method call. Plugin calls skip the catalog check.
type ChainCall struct {
	Method string     `json:"method" mapstructure:"method"`
	Args   []ChainArg `json:"args,omitempty" mapstructure:"args"`
	Plugin bool       `json:"plugin,omitempty" mapstructure:"plugin"`
}

// ChainArg is a typed argument. Exactly one field must be set.
type ChainArg struct {
	String   *string        `json:"string,omitempty" mapstructure:"string"`
	Int      *int64         `json:"int,omitempty" mapstructure:"int"`
	Float    *float64       `json:"float,omitempty" mapstructure:"float"`
	Bool     *bool          `json:"bool,omitempty" mapstructure:"bool"`
	Strings  []string       `json:"strings,omitempty" mapstructure:"strings"`
	Selector *string        `json:"selector,omitempty" mapstructure:"selector"`
	Class    *string        `json:"class,omitempty" mapstructure:"class"`
	Element  *string        `json:"element,omitempty" mapstructure:"element"`
	HTML     *string        `json:"html,omitempty" mapstructure:"html"`
	JSON     any            `json:"json,omitempty" mapstructure:"json"`
	Raw      *string        `json:"raw,omitempty" mapstructure:"raw"`
	Function *ChainFunction `json:"function,omitempty" mapstructure:"function"`
	Chain    *ChainSpec     `json:"chain,omitempty" mapstructure:"chain"`
}

// ChainFunction is an anonymous function argument. Body lines are raw
// JavaScript statements and keep their own semicolons.
type ChainFunction struct {
	Params []string `json:"params,omitempty" mapstructure:"params"`
	Body   []string `json:"body,omitempty" mapstructure:"body"`
}
