package jscode

// Global values and functions of every JavaScript environment.
var (
	Infinity Expression = NewRef("Infinity")
	NaN      Expression = NewRef("NaN")
)

// DecodeURI creates decodeURI(v).
func DecodeURI(v any) *Invocation { return InvokeFunc("decodeURI").Arg(v) }

// DecodeURIComponent creates decodeURIComponent(v).
func DecodeURIComponent(v any) *Invocation { return InvokeFunc("decodeURIComponent").Arg(v) }

// EncodeURI creates encodeURI(v).
func EncodeURI(v any) *Invocation { return InvokeFunc("encodeURI").Arg(v) }

// EncodeURIComponent creates encodeURIComponent(v).
func EncodeURIComponent(v any) *Invocation { return InvokeFunc("encodeURIComponent").Arg(v) }

// Escape creates escape(v).
func Escape(v any) *Invocation { return InvokeFunc("escape").Arg(v) }

// Unescape creates unescape(v).
func Unescape(v any) *Invocation { return InvokeFunc("unescape").Arg(v) }

// Eval creates eval(v).
func Eval(v any) *Invocation { return InvokeFunc("eval").Arg(v) }

// IsFinite creates isFinite(v).
func IsFinite(v any) *Invocation { return InvokeFunc("isFinite").Arg(v) }

// IsNaN creates isNaN(v).
func IsNaN(v any) *Invocation { return InvokeFunc("isNaN").Arg(v) }

// Number creates Number(v).
func Number(v any) *Invocation { return InvokeFunc("Number").Arg(v) }

// String creates String(v).
func String(v any) *Invocation { return InvokeFunc("String").Arg(v) }

// ParseFloat creates parseFloat(v).
func ParseFloat(v any) *Invocation { return InvokeFunc("parseFloat").Arg(v) }

// ParseInt creates parseInt(v) or parseInt(v,radix).
func ParseInt(v any, radix ...int) *Invocation {
	inv := InvokeFunc("parseInt").Arg(v)
	if len(radix) > 0 {
		inv.Arg(radix[0])
	}
	return inv
}

// JSONParse creates JSON.parse(v).
func JSONParse(v any) *Invocation { return InvokeMethod(NewRef("JSON"), "parse").Arg(v) }

// JSONStringify creates JSON.stringify(v).
func JSONStringify(v any) *Invocation { return InvokeMethod(NewRef("JSON"), "stringify").Arg(v) }

// Browser host objects.

// Document references the global document object.
func Document() *Ref { return NewRef("document") }

// Window references the global window object.
func Window() *Ref { return NewRef("window") }

// Console references the global console object.
func Console() *Ref { return NewRef("console") }

// ConsoleLog creates console.log(args...).
func ConsoleLog(args ...any) *Invocation { return Console().Invoke("log").Args(args...) }

// Alert creates window.alert(v).
func Alert(v any) *Invocation { return Window().Invoke("alert").Arg(v) }
