package segpath

import (
	"fmt"
	"log/slog"

	"kcl-lang.io/kcl-go/pkg/plugin"

	"github.com/macropower/pathlex/pkg/kclplugin/plugins"
	sp "github.com/macropower/pathlex/pkg/segpath"
)

// Register registers the segpath [Plugin] with the KCL plugin system.
func Register() {
	plugin.RegisterPlugin(Plugin)
}

// Plugin is the KCL plugin that exposes [sp.Path] operations. Paths are
// passed to and returned from KCL as canonical strings.
var Plugin = plugin.Plugin{
	Name: "segpath",
	MethodMap: map[string]plugin.MethodSpec{
		"dedot": unary("dedot", "str", func(p *sp.Path) (any, error) {
			return p.Dedot().String(), nil
		}),
		"pop": unary("pop", "str", func(p *sp.Path) (any, error) {
			p.Pop()

			return p.String(), nil
		}),
		"platform": unary("platform", "str", func(p *sp.Path) (any, error) {
			return p.Platform(), nil
		}),
		"extension": unary("extension", "str", func(p *sp.Path) (any, error) {
			ext, ok := p.Extension()
			if !ok {
				return nil, nil
			}

			return ext, nil
		}),
		"segments": unary("segments", "[{str:str}]", func(p *sp.Path) (any, error) {
			segs := p.Segments()
			out := make([]map[string]string, 0, len(segs))
			for _, seg := range segs {
				out = append(out, map[string]string{
					"kind": seg.Kind.String(),
					"text": seg.String(),
				})
			}

			return out, nil
		}),
		"append": binary("append", func(p *sp.Path, other string) (any, error) {
			o, err := sp.Parse(other)
			if err != nil {
				return nil, err
			}

			return p.Append(o).String(), nil
		}),
		"relative_to": binary("relative_to", func(p *sp.Path, base string) (any, error) {
			b, err := sp.Parse(base)
			if err != nil {
				return nil, err
			}

			return p.RelativeTo(b).String(), nil
		}),
		"relative_from": binary("relative_from", func(p *sp.Path, base string) (any, error) {
			b, err := sp.Parse(base)
			if err != nil {
				return nil, err
			}

			return p.RelativeFrom(b).String(), nil
		}),
		"push": binary("push", func(p *sp.Path, name string) (any, error) {
			p.Push(name)

			return p.String(), nil
		}),
	},
}

func unary(method, resultType string, fn func(p *sp.Path) (any, error)) plugin.MethodSpec {
	return plugin.MethodSpec{
		Type: &plugin.MethodType{
			ArgsType:   []string{"str"},
			ResultType: resultType,
		},
		Body: func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
			logger := slog.With(
				slog.String("plugin", "segpath"),
				slog.String("method", method),
			)
			logger.Debug("invoking kcl plugin")

			safeArgs := plugins.SafeMethodArgs{Args: args}

			pathStr, err := safeArgs.StrArg(0)
			if err != nil {
				return nil, fmt.Errorf("invalid argument: %w", err)
			}

			p, err := sp.Parse(pathStr)
			if err != nil {
				return nil, fmt.Errorf("parse %q: %w", pathStr, err)
			}

			result, err := fn(p)
			if err != nil {
				return nil, err
			}

			logger.Debug("returning results")

			return &plugin.MethodResult{V: result}, nil
		},
	}
}

func binary(method string, fn func(p *sp.Path, arg string) (any, error)) plugin.MethodSpec {
	return plugin.MethodSpec{
		Type: &plugin.MethodType{
			ArgsType:   []string{"str", "str"},
			ResultType: "str",
		},
		Body: func(args *plugin.MethodArgs) (*plugin.MethodResult, error) {
			logger := slog.With(
				slog.String("plugin", "segpath"),
				slog.String("method", method),
			)
			logger.Debug("invoking kcl plugin")

			safeArgs := plugins.SafeMethodArgs{Args: args}

			pathStr, err := safeArgs.StrArg(0)
			if err != nil {
				return nil, fmt.Errorf("invalid argument: %w", err)
			}

			arg, err := safeArgs.StrArg(1)
			if err != nil {
				return nil, fmt.Errorf("invalid argument: %w", err)
			}

			p, err := sp.Parse(pathStr)
			if err != nil {
				return nil, fmt.Errorf("parse %q: %w", pathStr, err)
			}

			result, err := fn(p, arg)
			if err != nil {
				return nil, fmt.Errorf("parse %q: %w", arg, err)
			}

			logger.Debug("returning results")

			return &plugin.MethodResult{V: result}, nil
		},
	}
}
