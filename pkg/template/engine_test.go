package template

import (
	"errors"
	"strings"
	"testing"
)

func TestRenderPlainText(t *testing.T) {
	engine := New()

	tests := []struct {
		name     string
		template string
	}{
		{"empty", ""},
		{"no placeholders", `{"key": "value"}`},
		{"stray closing braces", `{"a": 1}}`},
		{"single braces", `{ "nested": { "x": 1 } }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Render(tt.template, nil)
			if err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if result != tt.template {
				t.Errorf("Render() = %q, want input unchanged %q", result, tt.template)
			}
		})
	}
}

func TestRenderFunctionCall(t *testing.T) {
	engine := New()
	engine.RegisterFunction("greet", func(args Args) (string, error) {
		return "hello", nil
	})

	t.Run("substitutes call result", func(t *testing.T) {
		result, err := engine.Render(`{"msg": "{{greet()}}"}`, nil)
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if result != `{"msg": "hello"}` {
			t.Errorf("Render() = %q", result)
		}
	})

	t.Run("whitespace inside braces", func(t *testing.T) {
		result, err := engine.Render("{{  greet()  }}", nil)
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if result != "hello" {
			t.Errorf("Render() = %q", result)
		}
	})

	t.Run("multiple placeholders", func(t *testing.T) {
		result, err := engine.Render("{{greet()}}-{{greet()}}", nil)
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if result != "hello-hello" {
			t.Errorf("Render() = %q", result)
		}
	})
}

func TestRenderArguments(t *testing.T) {
	engine := New()

	var got Args
	engine.RegisterFunction("capture", func(args Args) (string, error) {
		got = args
		return "", nil
	})

	t.Run("integer argument", func(t *testing.T) {
		if _, err := engine.Render("{{capture(range=5)}}", nil); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		n, ok := got.Int("range")
		if !ok || n != 5 {
			t.Errorf("Int(range) = %d, %v; want 5, true", n, ok)
		}
	})

	t.Run("negative integer argument", func(t *testing.T) {
		if _, err := engine.Render("{{capture(range=-3)}}", nil); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		n, ok := got.Int("range")
		if !ok || n != -3 {
			t.Errorf("Int(range) = %d, %v; want -3, true", n, ok)
		}
	})

	t.Run("double-quoted string argument", func(t *testing.T) {
		if _, err := engine.Render(`{{capture(options="a|b|c")}}`, nil); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		s, ok := got.String("options")
		if !ok || s != "a|b|c" {
			t.Errorf("String(options) = %q, %v; want \"a|b|c\", true", s, ok)
		}
	})

	t.Run("single-quoted string argument", func(t *testing.T) {
		if _, err := engine.Render(`{{capture(options='x|y')}}`, nil); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		s, ok := got.String("options")
		if !ok || s != "x|y" {
			t.Errorf("String(options) = %q, %v", s, ok)
		}
	})

	t.Run("quoted number stays a string", func(t *testing.T) {
		if _, err := engine.Render(`{{capture(range="5")}}`, nil); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if _, ok := got.Int("range"); ok {
			t.Error("quoted \"5\" should not be an integer")
		}
		s, ok := got.String("range")
		if !ok || s != "5" {
			t.Errorf("String(range) = %q, %v", s, ok)
		}
	})

	t.Run("unquoted non-number is a string", func(t *testing.T) {
		if _, err := engine.Render("{{capture(options=a|b)}}", nil); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		s, ok := got.String("options")
		if !ok || s != "a|b" {
			t.Errorf("String(options) = %q, %v", s, ok)
		}
	})

	t.Run("multiple arguments", func(t *testing.T) {
		if _, err := engine.Render(`{{capture(range=2, options="yes|no")}}`, nil); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if n, ok := got.Int("range"); !ok || n != 2 {
			t.Errorf("Int(range) = %d, %v", n, ok)
		}
		if s, ok := got.String("options"); !ok || s != "yes|no" {
			t.Errorf("String(options) = %q, %v", s, ok)
		}
	})

	t.Run("comma inside quotes", func(t *testing.T) {
		if _, err := engine.Render(`{{capture(options="a,b|c", range=1)}}`, nil); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if s, _ := got.String("options"); s != "a,b|c" {
			t.Errorf("String(options) = %q", s)
		}
		if n, _ := got.Int("range"); n != 1 {
			t.Errorf("Int(range) = %d", n)
		}
	})

	t.Run("no arguments", func(t *testing.T) {
		if _, err := engine.Render("{{capture()}}", nil); err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("Args = %v, want empty", got)
		}
	})
}

func TestRenderVariables(t *testing.T) {
	engine := New()

	t.Run("resolves from vars map", func(t *testing.T) {
		result, err := engine.Render("{{name}}", map[string]string{"name": "alice"})
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}
		if result != "alice" {
			t.Errorf("Render() = %q", result)
		}
	})

	t.Run("undefined variable fails", func(t *testing.T) {
		_, err := engine.Render("{{name}}", nil)
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Fatalf("Render() error = %v, want *SyntaxError", err)
		}
		if !strings.Contains(syntaxErr.Msg, "undefined variable") {
			t.Errorf("unexpected message %q", syntaxErr.Msg)
		}
	})
}

func TestRenderSyntaxErrors(t *testing.T) {
	engine := New()
	engine.RegisterFunction("ok", func(Args) (string, error) { return "ok", nil })

	tests := []struct {
		name     string
		template string
		wantMsg  string
	}{
		{"unmatched braces", `{"a": "{{ok()"}`, "unmatched {{"},
		{"unknown function", "{{nope()}}", "unknown function"},
		{"malformed expression", "{{1 + 2}}", "malformed expression"},
		{"malformed argument", "{{ok(not an arg)}}", "malformed argument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Render(tt.template, nil)
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Fatalf("Render() error = %v, want *SyntaxError", err)
			}
			if !strings.Contains(syntaxErr.Msg, tt.wantMsg) {
				t.Errorf("error %q does not mention %q", syntaxErr.Msg, tt.wantMsg)
			}
			if result != "" {
				t.Errorf("failed render returned partial output %q", result)
			}
		})
	}
}

func TestRenderFunctionFailure(t *testing.T) {
	engine := New()
	boom := errors.New("boom")
	engine.RegisterFunction("fail", func(Args) (string, error) { return "", boom })
	engine.RegisterFunction("ok", func(Args) (string, error) { return "fine", nil })

	t.Run("wraps the function error", func(t *testing.T) {
		_, err := engine.Render("{{fail()}}", nil)
		var funcErr *FuncError
		if !errors.As(err, &funcErr) {
			t.Fatalf("Render() error = %v, want *FuncError", err)
		}
		if funcErr.Name != "fail" {
			t.Errorf("FuncError.Name = %q", funcErr.Name)
		}
		if !errors.Is(err, boom) {
			t.Error("FuncError should unwrap to the original error")
		}
	})

	t.Run("aborts with no partial output", func(t *testing.T) {
		result, err := engine.Render("{{ok()}} then {{fail()}}", nil)
		if err == nil {
			t.Fatal("Render() should fail")
		}
		if result != "" {
			t.Errorf("failed render returned partial output %q", result)
		}
	})
}

func TestRegisterFunctionOverwrites(t *testing.T) {
	engine := New()
	engine.RegisterFunction("v", func(Args) (string, error) { return "first", nil })
	engine.RegisterFunction("v", func(Args) (string, error) { return "second", nil })

	result, err := engine.Render("{{v()}}", nil)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if result != "second" {
		t.Errorf("Render() = %q, want last registration to win", result)
	}
}
