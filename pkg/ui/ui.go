// Package ui implements the terminal interface of hookctl.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/wabridge/hookctl/pkg/ui/common"
	"github.com/wabridge/hookctl/pkg/ui/components/confirm"
	"github.com/wabridge/hookctl/pkg/ui/components/footer"
	"github.com/wabridge/hookctl/pkg/ui/components/header"
	"github.com/wabridge/hookctl/pkg/ui/components/toast"
	"github.com/wabridge/hookctl/pkg/ui/pages/form"
	"github.com/wabridge/hookctl/pkg/ui/pages/list"
	"github.com/wabridge/hookctl/pkg/ui/pages/logs"
	"github.com/wabridge/hookctl/pkg/webhook"
)

type sessionState int

const (
	listState sessionState = iota
	formState
	logsState
)

// UI is the main UI model. It owns the webhook cache and reconciles it with
// the results of API calls before handing it to the views.
type UI struct {
	common    common.Common
	state     sessionState
	webhooks  []webhook.Webhook
	editingID int64
	header    *header.Header
	footer    *footer.Footer
	list      *list.List
	form      *form.Form
	logs      *logs.Logs
	confirm   *confirm.Model
	toast     *toast.Model
}

// New returns a new UI model.
func New(c common.Common) *UI {
	ui := &UI{
		common:   c,
		state:    listState,
		webhooks: []webhook.Webhook{},
		header:   header.New(c, "hookctl"),
		list:     list.New(c),
		form:     form.New(c),
		logs:     logs.New(c),
		confirm:  confirm.New(c),
	}
	d := toast.DefaultDuration
	if cfg := c.Config(); cfg != nil {
		d = cfg.UI.ToastDuration
	}
	ui.toast = toast.New(c, d)
	if cl := c.Client(); cl != nil {
		ui.header.SetInfo(cl.BaseURL())
	}
	ui.footer = footer.New(c, ui)
	ui.SetSize(c.Width, c.Height)
	return ui
}

func (ui *UI) getMargins() (wm, hm int) {
	wm = ui.common.Styles.App.GetHorizontalFrameSize()
	hm = ui.common.Styles.App.GetVerticalFrameSize() +
		ui.common.Styles.Header.GetHeight() +
		ui.common.Styles.Header.GetVerticalMargins() +
		ui.footer.Height() +
		1 // toast
	return
}

// ShortHelp implements help.KeyMap.
func (ui *UI) ShortHelp() []key.Binding {
	b := make([]key.Binding, 0)
	switch {
	case ui.confirm.Active():
		return ui.confirm.ShortHelp()
	case ui.state == formState:
		b = append(b, ui.form.ShortHelp()...)
	case ui.state == logsState:
		b = append(b, ui.logs.ShortHelp()...)
	default:
		b = append(b, ui.list.ShortHelp()...)
		b = append(b, ui.common.KeyMap.Help, ui.common.KeyMap.Quit)
	}
	return b
}

// FullHelp implements help.KeyMap.
func (ui *UI) FullHelp() [][]key.Binding {
	b := make([][]key.Binding, 0)
	switch {
	case ui.confirm.Active():
		return ui.confirm.FullHelp()
	case ui.state == formState:
		b = append(b, ui.form.FullHelp()...)
	case ui.state == logsState:
		b = append(b, ui.logs.FullHelp()...)
	default:
		b = append(b, ui.list.FullHelp()...)
	}
	b = append(b, []key.Binding{ui.common.KeyMap.Dismiss, ui.common.KeyMap.Help, ui.common.KeyMap.Quit})
	return b
}

// SetSize implements common.Component.
func (ui *UI) SetSize(width, height int) {
	ui.common.SetSize(width, height)
	wm, hm := ui.getMargins()
	w, h := width-wm, height-hm
	ui.header.SetSize(w, 1)
	ui.footer.SetSize(w, 1)
	ui.toast.SetSize(w, 1)
	ui.confirm.SetSize(w, h)
	ui.list.SetSize(w, h)
	ui.form.SetSize(w, h)
	ui.logs.SetSize(w, h)
}

// Webhooks returns the cached webhooks.
func (ui *UI) Webhooks() []webhook.Webhook {
	return ui.webhooks
}

// Init implements tea.Model. It probes the API and then loads the list.
func (ui *UI) Init() tea.Cmd {
	ui.list.SetLoading(true)
	return probeCmd(ui.common.Context(), ui.common.Client())
}

// Update implements tea.Model.
func (ui *UI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ui.SetSize(msg.Width, msg.Height)
		return ui, nil
	case tea.KeyMsg:
		return ui, ui.handleKey(msg)

	case toast.ExpireMsg:
		ui.toast.Update(msg)
		return ui, nil

	case probeMsg:
		var cmd tea.Cmd
		if msg.err != nil {
			ui.common.Logger.Warn("bridge API unreachable", "err", msg.err)
			cmd = ui.notify(toast.Error, fmt.Sprintf("Cannot connect to bridge API at %s", ui.common.Client().BaseURL()))
		}
		return ui, tea.Batch(cmd, ui.loadWebhooks())

	case webhooksMsg:
		if msg.err != nil {
			ui.setWebhooks(nil)
			return ui, ui.notify(toast.Error, "Failed to load webhooks: "+msg.err.Error())
		}
		ui.setWebhooks(msg.webhooks)
		return ui, nil

	// List actions
	case list.NewMsg:
		ui.editingID = 0
		ui.form.Reset()
		ui.state = formState
		return ui, nil
	case list.EditMsg:
		ui.editingID = msg.Webhook.ID
		ui.form.Load(msg.Webhook)
		ui.state = formState
		return ui, nil
	case list.ToggleMsg:
		return ui, toggleWebhookCmd(ui.common.Context(), ui.common.Client(), msg.ID, msg.Enabled)
	case list.DeleteMsg:
		ui.confirm.Open(msg.ID, "Delete webhook", DeletePrompt(msg.Name))
		return ui, nil
	case confirm.ResultMsg:
		if !msg.Confirmed {
			return ui, nil
		}
		return ui, deleteWebhookCmd(ui.common.Context(), ui.common.Client(), msg.ID)
	case list.TestMsg:
		return ui, tea.Batch(
			ui.notify(toast.Info, "Sending test delivery..."),
			testWebhookCmd(ui.common.Context(), ui.common.Client(), msg.ID),
		)
	case list.LogsMsg:
		return ui, ui.viewLogs(msg.ID)
	case list.RefreshMsg:
		return ui, ui.loadWebhooks()

	// Form
	case form.SubmitMsg:
		w, err := msg.Draft.Submission()
		if err != nil {
			return ui, ui.notify(toast.Error, common.Sentence(err.Error()))
		}
		return ui, saveWebhookCmd(ui.common.Context(), ui.common.Client(), ui.editingID, w)
	case form.CancelMsg:
		ui.closeForm()
		return ui, nil

	// Logs
	case logs.RefreshMsg:
		if msg.ID != ui.logs.ID() {
			return ui, nil
		}
		ui.logs.SetLoading(true)
		return ui, loadLogsCmd(ui.common.Context(), ui.common.Client(), msg.ID)
	case logs.CloseMsg:
		ui.logs.Close()
		ui.state = listState
		return ui, nil

	// API results
	case savedMsg:
		verb, done := "create", "Webhook created successfully"
		if msg.update {
			verb, done = "update", "Webhook updated successfully"
		}
		if msg.err != nil {
			return ui, ui.notify(toast.Error, fmt.Sprintf("Failed to %s webhook: %s", verb, msg.err))
		}
		ui.closeForm()
		return ui, tea.Batch(ui.notify(toast.Success, done), ui.loadWebhooks())
	case toggledMsg:
		if msg.err != nil {
			return ui, ui.notify(toast.Error, "Failed to toggle webhook: "+msg.err.Error())
		}
		action := "disabled"
		if msg.enabled {
			action = "enabled"
		}
		return ui, tea.Batch(ui.notify(toast.Success, fmt.Sprintf("Webhook %s successfully", action)), ui.loadWebhooks())
	case deletedMsg:
		if msg.err != nil {
			return ui, ui.notify(toast.Error, "Failed to delete webhook: "+msg.err.Error())
		}
		return ui, tea.Batch(ui.notify(toast.Success, "Webhook deleted successfully"), ui.loadWebhooks())
	case testedMsg:
		if msg.err != nil {
			return ui, ui.notify(toast.Error, "Webhook test failed: "+msg.err.Error())
		}
		return ui, ui.notify(toast.Success, "Webhook test successful")
	case logsMsg:
		if msg.id != ui.logs.ID() {
			return ui, nil
		}
		if msg.err != nil {
			ui.logs.SetLogs(nil)
			return ui, ui.notify(toast.Error, "Failed to get webhook logs: "+msg.err.Error())
		}
		ui.logs.SetLogs(msg.logs)
		return ui, nil
	}

	// Anything else, like cursor blinks, goes to the active view.
	var cmd tea.Cmd
	switch ui.state {
	case formState:
		_, cmd = ui.form.Update(msg)
	case logsState:
		_, cmd = ui.logs.Update(msg)
	}
	return ui, cmd
}

func (ui *UI) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := ui.common.KeyMap
	switch {
	case msg.Type == tea.KeyCtrlC:
		return tea.Quit
	case key.Matches(msg, k.Dismiss):
		ui.toast.Dismiss()
		return nil
	case ui.confirm.Active():
		_, cmd := ui.confirm.Update(msg)
		return cmd
	}

	var cmd tea.Cmd
	switch ui.state {
	case formState:
		_, cmd = ui.form.Update(msg)
	case logsState:
		_, cmd = ui.logs.Update(msg)
	default:
		switch {
		case key.Matches(msg, k.Quit):
			return tea.Quit
		case key.Matches(msg, k.Help):
			ui.footer.SetShowAll(!ui.footer.ShowAll())
			ui.SetSize(ui.common.Width, ui.common.Height)
			return nil
		}
		_, cmd = ui.list.Update(msg)
	}
	return cmd
}

func (ui *UI) loadWebhooks() tea.Cmd {
	ui.list.SetLoading(true)
	return loadWebhooksCmd(ui.common.Context(), ui.common.Client())
}

func (ui *UI) setWebhooks(hooks []webhook.Webhook) {
	if hooks == nil {
		hooks = []webhook.Webhook{}
	}
	ui.webhooks = hooks
	ui.list.SetWebhooks(hooks)
}

func (ui *UI) viewLogs(id int64) tea.Cmd {
	ui.logs.Open(id, logs.Title(ui.webhooks, id))
	ui.state = logsState
	return loadLogsCmd(ui.common.Context(), ui.common.Client(), id)
}

func (ui *UI) closeForm() {
	ui.editingID = 0
	ui.state = listState
}

func (ui *UI) notify(kind toast.Kind, text string) tea.Cmd {
	switch kind {
	case toast.Error:
		ui.common.Logger.Error(text)
	default:
		ui.common.Logger.Info(text)
	}
	return ui.toast.Show(kind, text)
}

// DeletePrompt is the confirmation shown before deleting a webhook.
func DeletePrompt(name string) string {
	return fmt.Sprintf("Are you sure you want to delete webhook \"%s\"?\n\nThis will also delete all webhook logs and cannot be undone.", name)
}

// View implements tea.Model.
func (ui *UI) View() string {
	var body string
	switch {
	case ui.confirm.Active():
		body = ui.confirm.View()
	case ui.state == formState:
		body = ui.form.View()
	case ui.state == logsState:
		body = ui.logs.View()
	default:
		body = ui.list.View()
	}

	_, hm := ui.getMargins()
	body = lipgloss.NewStyle().Height(ui.common.Height - hm).MaxHeight(ui.common.Height - hm).Render(body)

	return ui.common.Styles.App.Render(lipgloss.JoinVertical(lipgloss.Left,
		ui.header.View(),
		body,
		ui.toast.View(),
		ui.footer.View(),
	))
}
