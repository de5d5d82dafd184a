package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/huepick/huepick/color"
	"github.com/huepick/huepick/constant"
	"github.com/huepick/huepick/key"
	"github.com/huepick/huepick/style"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string

	// Allowed restricts string fields to a fixed set. Empty means any value.
	Allowed []string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Huepick + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Parse converts a raw command-line value into the field's type.
func (f *Field) Parse(raw string) (any, error) {
	switch f.Value.(type) {
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", raw)
		}
		if n <= 0 {
			return nil, fmt.Errorf("%s must be positive, got %d", f.Key, n)
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", raw)
		}
		return b, nil
	default:
		if len(f.Allowed) > 0 && !lo.Contains(f.Allowed, raw) {
			closest := lo.MinBy(f.Allowed, func(a, b string) bool {
				return levenshtein.Distance(raw, a) < levenshtein.Distance(raw, b)
			})
			return nil, fmt.Errorf("invalid value %q for %s, did you mean %q?", raw, f.Key, closest)
		}
		return raw, nil
	}
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string   `json:"key"`
		Value       any      `json:"value"`
		Default     any      `json:"default"`
		Description string   `json:"description"`
		Type        string   `json:"type"`
		Allowed     []string `json:"allowed,omitempty"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
		Allowed:     f.Allowed,
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	default:
		return "unknown"
	}
}

// Default holds every registered configuration field, keyed by its viper key.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string, allowed ...string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc, Allowed: allowed}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.StorageBackend, "file", "Where the picked color is persisted", "file", "keyring")
	register(key.IconsVariant, "plain", "Icons variant.\nnerd requires a nerd font", "emoji", "nerd", "plain", "kaomoji", "squares")
	register(key.TUIMouse, true, "Toggle the menu and pick colors with mouse clicks")
	register(key.TUISwatchWidth, 32, "Width of the color swatch, in cells")
	register(key.TUISwatchHeight, 8, "Height of the color swatch, in cells")
	register(key.TUIShowHelp, true, "Show key bindings under the swatch")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Log level, from less to most verbose", "panic", "fatal", "error", "warn", "info", "debug", "trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"join":     strings.Join,
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}{{ if .Allowed }}
{{ blue "Allowed:" }} {{ join .Allowed ", " }}{{ end }}`))
