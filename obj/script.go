package obj

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/platformer/prefabs"
)

// messageDuration is how long a script message stays on the HUD, in
// seconds.
const messageDuration = 2.5

// triggerDispatchScript is appended to every trigger script. Scripts must
// define onEnter(engine).
const triggerDispatchScript = `
if __phase == "enter" {
	onEnter(__engine)
}
`

// ScriptRuntime is a compiled trigger script.
type ScriptRuntime struct {
	name     string
	compiled *tengo.Compiled
}

// CompileScript loads name from the prefabs scripts and compiles it with
// the dispatch glue and the full tengo stdlib.
func CompileScript(name string) (*ScriptRuntime, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}
	return compileScriptSource(name, src)
}

func compileScriptSource(name string, src []byte) (*ScriptRuntime, error) {
	full := string(src) + "\n" + triggerDispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__phase", "")
	_ = script.Add("__engine", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("obj: compile script %s: %w", name, err)
	}
	return &ScriptRuntime{name: name, compiled: compiled}, nil
}

func (rt *ScriptRuntime) Name() string { return rt.name }

// RunEnter runs the script's onEnter against ctx.
func (rt *ScriptRuntime) RunEnter(ctx Context) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("nil script runtime")
	}
	if err := rt.compiled.Set("__phase", "enter"); err != nil {
		return err
	}
	if err := rt.compiled.Set("__engine", buildScriptEngine(ctx)); err != nil {
		return err
	}
	if err := rt.compiled.Run(); err != nil {
		return fmt.Errorf("obj: run script %s: %w", rt.name, err)
	}
	return nil
}

// buildScriptEngine exposes a snapshot of the run stats plus the
// functions a script may call to change them.
func buildScriptEngine(ctx Context) *tengo.ImmutableMap {
	stats := ctx.Stats()
	values := map[string]tengo.Object{
		"score": &tengo.Int{Value: int64(stats.Score)},
		"lives": &tengo.Int{Value: int64(stats.Lives)},
		"coins": &tengo.Int{Value: int64(stats.Coins)},
		"level": &tengo.String{Value: stats.Level},
	}

	values["add_score"] = &tengo.UserFunction{Name: "add_score", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		n, ok := tengo.ToInt(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		stats.AddScore(n)
		return tengo.TrueValue, nil
	}}

	values["add_life"] = &tengo.UserFunction{Name: "add_life", Value: func(args ...tengo.Object) (tengo.Object, error) {
		n := 1
		if len(args) > 0 {
			if v, ok := tengo.ToInt(args[0]); ok {
				n = v
			}
		}
		stats.Lives += n
		if n > 0 {
			ctx.Events().Push(Event{Kind: EventOneUp})
		}
		return tengo.TrueValue, nil
	}}

	values["message"] = &tengo.UserFunction{Name: "message", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		text := objectAsString(args[0])
		stats.ShowMessage(text, messageDuration)
		ctx.Events().Push(Event{Kind: EventMessage, Text: text})
		return tengo.TrueValue, nil
	}}

	values["clear"] = &tengo.UserFunction{Name: "clear", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if stats.Cleared {
			return tengo.FalseValue, nil
		}
		stats.Cleared = true
		ctx.Events().Push(Event{Kind: EventClear})
		return tengo.TrueValue, nil
	}}

	values["checkpoint"] = &tengo.UserFunction{Name: "checkpoint", Value: func(args ...tengo.Object) (tengo.Object, error) {
		p := ctx.Player()
		if p == nil {
			return tengo.FalseValue, nil
		}
		stats.SetCheckpoint(p.Position())
		ctx.Events().Push(Event{Kind: EventCheckpoint, Position: p.Position()})
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if s, ok := obj.(*tengo.String); ok {
		return s.Value
	}
	if s, ok := tengo.ToString(obj); ok {
		return s
	}
	return ""
}
