package cli

import (
	"github.com/dmitrijs2005/authpages/internal/client/view"
)

// terminalView renders page regions as lines of text. Field values are
// filled from prompts before each submit.
type terminalView struct {
	app           *App
	values        map[string]string
	errorVisible  bool
	submitEnabled bool
}

func newTerminalView(a *App) *terminalView {
	return &terminalView{app: a, values: map[string]string{}, submitEnabled: true}
}

func (v *terminalView) fill(values map[string]string) {
	v.values = values
}

func (v *terminalView) Navigate(path string) {
	v.app.navigate(path)
}

func (v *terminalView) SetHeader(content view.HTML) {
	v.app.println(view.PlainText(content))
}

func (v *terminalView) SetInfo(content view.HTML) {
	v.app.println(view.PlainText(content))
}

func (v *terminalView) Value(id string) string {
	return v.values[id]
}

func (v *terminalView) ShowError(content view.HTML) {
	v.errorVisible = true
	v.app.println("Error: " + view.PlainText(content))
}

func (v *terminalView) HideError() {
	v.errorVisible = false
}

func (v *terminalView) SetSubmitEnabled(enabled bool) {
	v.submitEnabled = enabled
}
