package motion

import (
	"fmt"
	"io"
	"text/template"
)

// Class names shared between the generated stylesheet and the page templates.
const (
	ClassScripted = "js"
	ClassRevealed = "is-revealed"
	ClassItem     = "reveal-item"
	ClassTimeline = "reveal-timeline"
	ClassSkill    = "skill-fill"
	ClassNav      = "nav-enter"
	ClassHeroText = "hero-text-enter"
	ClassHeroImg  = "hero-image-enter"
)

// LoopClass is the class that runs the named loop.
func LoopClass(name string) string { return "loop-" + name }

// FXClass is the class that applies the named interaction.
func FXClass(name string) string { return "fx-" + name }

var cssTemplate = template.Must(template.New("motion.css").Funcs(template.FuncMap{
	"sec":      Seconds,
	"pct":      keyframePercent,
	"loop":     LoopClass,
	"fx":       FXClass,
	"opacity":  func(p Pose) string { return num(p.Opacity) },
	"revealed": func() string { return ClassRevealed },
	"scripted": func() string { return ClassScripted },
	"variant":  newCSSEnter,
}).Parse(`/* generated from the motion theme */
{{define "enter"}}@keyframes {{.Name}} {
  from { opacity: {{opacity .V.Hidden}}; transform: {{.V.Hidden.Transform}}; }
  to { opacity: {{opacity .V.Visible}}; transform: {{.V.Visible.Transform}}; }
}
.{{.Class}} {
  animation: {{.Name}} {{sec .V.Transition.Duration}} {{.V.Transition.Ease}} backwards;
}
{{end -}}
{{define "reveal"}}.{{scripted}} .{{.Class}} {
  opacity: {{opacity .V.Hidden}};
  transform: {{.V.Hidden.Transform}};
  transition: opacity {{sec .V.Transition.Duration}} {{.V.Transition.Ease}}, transform {{sec .V.Transition.Duration}} {{.V.Transition.Ease}};
}
.{{scripted}} .{{revealed}} .{{.Class}}, .{{scripted}} .{{revealed}}.{{.Class}} {
  opacity: {{opacity .V.Visible}};
  transform: {{.V.Visible.Transform}};
}
{{end -}}
{{template "enter" (variant "nav-enter" .NavClass .Theme.NavItem)}}
{{template "enter" (variant "hero-text-enter" .HeroTextClass .Theme.HeroText)}}
{{template "enter" (variant "hero-image-enter" .HeroImgClass .Theme.HeroImage)}}
{{template "reveal" (variant "" .ItemClass .Theme.Item)}}
{{template "reveal" (variant "" .TimelineClass .Theme.TimelineItem)}}
.{{.SkillClass}} {
  transition: width {{sec .Theme.SkillBar.Duration}} {{.Theme.SkillBar.Ease}};
}
.{{scripted}} [data-reveal]:not(.{{revealed}}) .{{.SkillClass}} {
  width: 0% !important;
}
{{range .Theme.Loops}}{{$n := len .Keyframes}}
@keyframes {{.Name}} {
{{- range $i, $k := .Keyframes}}
  {{pct $i $n}} { opacity: {{opacity $k}}; transform: {{$k.Transform}}; }
{{- end}}
}
.{{loop .Name}} {
  animation: {{.Name}} {{sec .Period}} {{.Ease}} infinite;
}
{{end}}
{{range .Theme.Interactions}}
.{{fx .Name}} {
  transition: transform {{sec .Duration}} ease-out;
}
{{- if .Hover}}
.{{fx .Name}}:hover {
  transform: {{.Hover.Transform}};
}
{{- end}}
{{- if .Tap}}
.{{fx .Name}}:active {
  transform: {{.Tap.Transform}};
}
{{- end}}
{{end}}
@media (prefers-reduced-motion: reduce) {
  *, *::before, *::after {
    animation-duration: 0.01ms !important;
    animation-iteration-count: 1 !important;
    transition-duration: 0.01ms !important;
    transition-delay: 0s !important;
  }
}
`))

type cssEnter struct {
	Name  string
	Class string
	V     Variant
}

type cssData struct {
	Theme         Theme
	NavClass      string
	HeroTextClass string
	HeroImgClass  string
	ItemClass     string
	TimelineClass string
	SkillClass    string
}

func newCSSEnter(name, class string, v Variant) cssEnter {
	return cssEnter{Name: name, Class: class, V: v}
}

// WriteCSS writes the stylesheet for the theme: entrance keyframes, one-shot
// reveal transitions, infinite loops and pointer interactions. Hidden reveal
// poses only apply under the ClassScripted root class, so a page without
// scripts renders every section in its final state.
func (t Theme) WriteCSS(w io.Writer) error {
	data := cssData{
		Theme:         t,
		NavClass:      ClassNav,
		HeroTextClass: ClassHeroText,
		HeroImgClass:  ClassHeroImg,
		ItemClass:     ClassItem,
		TimelineClass: ClassTimeline,
		SkillClass:    ClassSkill,
	}
	if err := cssTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("writing motion css: %w", err)
	}
	return nil
}

func keyframePercent(i, n int) string {
	if n <= 1 {
		return "0%"
	}
	return fmt.Sprintf("%s%%", num(float64(i)*100/float64(n-1)))
}
