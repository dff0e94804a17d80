package jquery

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Masterminds/semver/v3"
	"github.com/aretw0/jsquery/internal/dto"
	"github.com/aretw0/jsquery/pkg/jscode"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidChainSpec is returned for chain documents that cannot be built.
var ErrInvalidChainSpec = errors.New("invalid chain spec")

// Chain spec document types. See ParseChainSpec for the layout.
type (
	ChainSpec     = dto.ChainSpec
	ChainRoot     = dto.ChainRoot
	ChainCall     = dto.ChainCall
	ChainArg      = dto.ChainArg
	ChainFunction = dto.ChainFunction
)

// ParseChainSpec decodes a YAML or JSON chain document:
//
//	version: "3.7"
//	root: {kind: id, value: main}
//	calls:
//	  - method: on
//	    args:
//	      - string: click
//	      - function: {params: [e], body: ["e.preventDefault();"]}
//
// Unknown keys are rejected.
func ParseChainSpec(data []byte) (ChainSpec, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return ChainSpec{}, fmt.Errorf("failed to parse chain spec: %w", err)
	}

	var spec ChainSpec
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &spec,
	})
	if err != nil {
		return ChainSpec{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return ChainSpec{}, fmt.Errorf("%w: %v", ErrInvalidChainSpec, err)
	}
	return spec, nil
}

// ReadChainSpec reads and decodes a chain document.
func ReadChainSpec(r io.Reader) (ChainSpec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ChainSpec{}, fmt.Errorf("failed to read chain spec: %w", err)
	}
	return ParseChainSpec(data)
}

// Fingerprint returns the hex SHA-256 of the canonical JSON form of spec.
// Equal documents have equal fingerprints regardless of their source format.
func Fingerprint(spec ChainSpec) (string, error) {
	data, err := json.Marshal(spec)
	if err != nil {
		return "", fmt.Errorf("failed to encode chain spec: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// BuildChain builds the chain described by spec against the default catalog.
func BuildChain(spec ChainSpec) (*Invocation, error) {
	return defaultBuilder().BuildChain(spec)
}

// BuildChain builds the chain described by spec. When spec names a version
// the catalog is restricted to it first. The returned error is the first
// problem found; the invocation is nil in that case.
func (b *Builder) BuildChain(spec ChainSpec) (*Invocation, error) {
	if spec.Version != "" {
		v, err := semver.NewVersion(spec.Version)
		if err != nil {
			return nil, fmt.Errorf("%w: version %q: %v", ErrInvalidChainSpec, spec.Version, err)
		}
		b = NewBuilder(b.catalog.ForVersion(v))
	}

	inv, err := b.buildRoot(spec.Root)
	if err != nil {
		return nil, err
	}
	for i, c := range spec.Calls {
		args, err := b.buildArgs(c.Args)
		if err != nil {
			return nil, fmt.Errorf("%w: call %d (%s): %v", ErrInvalidChainSpec, i+1, c.Method, err)
		}
		if c.Plugin {
			inv.Call(c.Method, args...)
		} else {
			inv.call(c.Method, args)
		}
		if inv.err != nil {
			return nil, fmt.Errorf("call %d: %w", i+1, inv.err)
		}
	}
	return inv, nil
}

func (b *Builder) buildRoot(root ChainRoot) (*Invocation, error) {
	var inv *Invocation
	switch root.Kind {
	case "id":
		inv = b.JQuery(ID(root.Value))
	case "class":
		inv = b.JQuery(Class(CSSClass(root.Value)))
	case "element":
		inv = b.JQuery(elementSelector(root.Value))
	case "selector":
		inv = b.JQuery(Raw(root.Value))
	case "html":
		inv = b.JQuery(HTML(root.Value))
	case "document":
		inv = b.JQuery(jscode.Document())
	case "window":
		inv = b.JQuery(jscode.Window())
	case "this":
		inv = b.JQuery(jscode.This)
	case "expr":
		inv = b.Wrap(jscode.NewDirect(root.Value))
	case "static":
		args, err := b.buildArgs(root.Args)
		if err != nil {
			return nil, fmt.Errorf("%w: root: %v", ErrInvalidChainSpec, err)
		}
		inv = b.Static(root.Value, args...)
	default:
		return nil, fmt.Errorf("%w: unknown root kind %q", ErrInvalidChainSpec, root.Kind)
	}
	if root.Kind != "static" && len(root.Args) > 0 {
		return nil, fmt.Errorf("%w: root kind %q takes no args", ErrInvalidChainSpec, root.Kind)
	}
	if inv.err != nil {
		return nil, fmt.Errorf("root: %w", inv.err)
	}
	return inv, nil
}

func elementSelector(name string) Selector {
	if el, ok := ElementOf(name); ok {
		return Tag(el)
	}
	return TagName(name)
}

func (b *Builder) buildArgs(specs []ChainArg) ([]Arg, error) {
	args := make([]Arg, len(specs))
	for i, a := range specs {
		v, err := b.buildArg(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		args[i] = v
	}
	return args, nil
}

func (b *Builder) buildArg(a ChainArg) (Arg, error) {
	var out []Arg
	if a.String != nil {
		out = append(out, *a.String)
	}
	if a.Int != nil {
		out = append(out, *a.Int)
	}
	if a.Float != nil {
		out = append(out, *a.Float)
	}
	if a.Bool != nil {
		out = append(out, *a.Bool)
	}
	if a.Strings != nil {
		out = append(out, a.Strings)
	}
	if a.Selector != nil {
		out = append(out, Raw(*a.Selector))
	}
	if a.Class != nil {
		out = append(out, CSSClass(*a.Class))
	}
	if a.Element != nil {
		el, ok := ElementOf(*a.Element)
		if !ok {
			return nil, fmt.Errorf("unknown element %q", *a.Element)
		}
		out = append(out, el)
	}
	if a.HTML != nil {
		out = append(out, HTML(*a.HTML))
	}
	if a.JSON != nil {
		out = append(out, JSON{Value: a.JSON})
	}
	if a.Raw != nil {
		out = append(out, jscode.NewDirect(*a.Raw))
	}
	if a.Function != nil {
		out = append(out, buildFunction(*a.Function))
	}
	if a.Chain != nil {
		inv, err := b.BuildChain(*a.Chain)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}

	if len(out) != 1 {
		return nil, fmt.Errorf("exactly one value must be set, got %d", len(out))
	}
	return out[0], nil
}

func buildFunction(spec ChainFunction) *jscode.AnonymousFunction {
	fn := jscode.NewAnonymousFunction()
	for _, p := range spec.Params {
		fn.Param(p)
	}
	for _, line := range spec.Body {
		fn.Body().Direct(line)
	}
	return fn
}
