package theme

// Styling for the detection filter window: a light and a dark palette plus
// the handful of ttk styles the views refer to by name.

import (
	tk "modernc.org/tk9.0"
)

// Palette is the resolved set of colors for one mode.
type Palette struct {
	Window  string
	Panel   string
	Action  string
	Alert   string
	Heading string
	Muted   string
}

var palettes = map[bool]Palette{
	false: {Window: "#f4f6f8", Panel: "#fbfcfd", Action: "#1d4ed8", Alert: "#b91c1c", Heading: "#0f766e", Muted: "#6b7280"},
	true:  {Window: "#111827", Panel: "#1f2937", Action: "#60a5fa", Alert: "#f87171", Heading: "#2dd4bf", Muted: "#9ca3af"},
}

// Style names used with Style(...).
const (
	StylePrimaryButton = "action.TButton"
	StyleDangerButton  = "alert.TButton"
	StyleAccentLabel   = "heading.TLabel"
	StyleMutedLabel    = "muted.TLabel"
)

var dark bool

// For returns the palette of the requested mode.
func For(isDark bool) Palette { return palettes[isDark] }

// Current returns the palette of the active mode.
func Current() Palette { return For(dark) }

// SetDark switches mode, restyles and returns the new mode.
func SetDark(d bool) bool {
	dark = d
	apply(Current())
	return dark
}

// ToggleDark flips the mode.
func ToggleDark() bool { return SetDark(!dark) }

// IsDark reports the active mode.
func IsDark() bool { return dark }

type styleDef struct {
	name string
	opts func(p Palette) []any
}

var styles = []styleDef{
	{StylePrimaryButton, func(p Palette) []any { return buttonOpts(p.Action) }},
	{StyleDangerButton, func(p Palette) []any { return buttonOpts(p.Alert) }},
	{StyleAccentLabel, func(p Palette) []any {
		return []any{tk.Foreground(p.Heading), tk.Background(p.Panel), tk.Padding("2p 1p")}
	}},
	{StyleMutedLabel, func(p Palette) []any {
		return []any{tk.Foreground(p.Muted), tk.Background(p.Window), tk.Padding("2p 1p")}
	}},
}

func buttonOpts(bg string) []any {
	return []any{tk.Background(bg), tk.Foreground("white"), tk.Padding("4p 3p"), tk.Borderwidth(1), tk.Relief("ridge")}
}

func apply(p Palette) {
	_ = tk.ActivateTheme("azure light")
	tk.App.Configure(tk.Background(p.Window))
	for _, s := range styles {
		tk.StyleConfigure(s.name, s.opts(p)...)
	}
}
