package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RBEGamer/OnRobot3FG15/internal/config"
	"github.com/RBEGamer/OnRobot3FG15/internal/control"
	"github.com/RBEGamer/OnRobot3FG15/internal/gripper"
)

// StateMsg carries a fresh display-state copy from the session into the
// panel. The session's notify hook sends one per state write.
type StateMsg control.DisplayState

// Parameter input indices
const (
	inputForce = iota
	inputDiameter
	inputGripType
	inputCount
)

// panelKeyMap defines key bindings for the control panel
type panelKeyMap struct {
	Open  key.Binding
	Close key.Binding
	Move  key.Binding
	Flex  key.Binding
	Stop  key.Binding
	Edit  key.Binding
	Apply key.Binding
	Back  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k panelKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Close, k.Stop, k.Edit, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k panelKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Open, k.Close, k.Move, k.Flex, k.Stop},
		{k.Edit, k.Apply, k.Back, k.Help, k.Quit},
	}
}

func defaultPanelKeyMap() panelKeyMap {
	return panelKeyMap{
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open"),
		),
		Close: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "close"),
		),
		Move: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "move"),
		),
		Flex: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "flex grip"),
		),
		Stop: key.NewBinding(
			key.WithKeys("s", " "),
			key.WithHelp("s/space", "stop"),
		),
		Edit: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "edit params"),
		),
		Apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply param"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop editing"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PanelModel is the interactive control panel for one gripper session.
//
// The model never talks to the network itself: actuation keys enqueue
// command events on the session, and every state change arrives back as a
// StateMsg. View is a pure projection of the last received state.
type PanelModel struct {
	// Session drives the synchronization loop
	Session *control.Session

	// DeviceLabel is shown in the header (e.g. "192.168.1.40:8080")
	DeviceLabel string

	// Last received display state
	state control.DisplayState

	// Parameter inputs (force, diameter, grip type)
	inputs [inputCount]textinput.Model
	focus  int // index of focused input, -1 when not editing

	// UI state
	width  int
	height int

	// Help
	help help.Model
	keys panelKeyMap
}

// NewPanelModel creates a control panel bound to a running session.
// Parameter inputs are prefilled from the configured defaults.
func NewPanelModel(session *control.Session, deviceLabel string, params config.ParamsConfig) PanelModel {
	force := textinput.New()
	force.Placeholder = "0-1000"
	force.CharLimit = 5
	force.Width = 8
	force.SetValue(strconv.Itoa(params.Force))

	diameter := textinput.New()
	diameter.Placeholder = "0.1mm units"
	diameter.CharLimit = 5
	diameter.Width = 8
	diameter.SetValue(strconv.Itoa(params.Diameter01MM))

	gripType := textinput.New()
	gripType.Placeholder = "0=ext 1=int"
	gripType.CharLimit = 1
	gripType.Width = 8
	if gt, err := gripper.ParseGripType(params.GripType); err == nil {
		gripType.SetValue(strconv.Itoa(int(gt)))
	}

	return PanelModel{
		Session:     session,
		DeviceLabel: deviceLabel,
		inputs:      [inputCount]textinput.Model{force, diameter, gripType},
		focus:       -1,
		help:        help.New(),
		keys:        defaultPanelKeyMap(),
	}
}

// Init implements tea.Model
func (m PanelModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m PanelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StateMsg:
		m.state = control.DisplayState(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if m.focus >= 0 {
			return m.updateEditing(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

// updateNormal handles keys while no parameter input is focused
func (m PanelModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Open):
		m.Session.Dispatch(control.Command{Action: control.ActionOpen})

	case key.Matches(msg, m.keys.Close):
		m.Session.Dispatch(control.Command{Action: control.ActionClose})

	case key.Matches(msg, m.keys.Move):
		m.Session.Dispatch(control.Command{Action: control.ActionMove})

	case key.Matches(msg, m.keys.Flex):
		m.Session.Dispatch(control.Command{Action: control.ActionFlex})

	case key.Matches(msg, m.keys.Stop):
		m.Session.Dispatch(control.Command{Action: control.ActionStop})

	case key.Matches(msg, m.keys.Edit):
		m.focus = inputForce
		return m, m.inputs[m.focus].Focus()
	}

	return m, nil
}

// updateEditing handles keys while a parameter input is focused
func (m PanelModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.inputs[m.focus].Blur()
		m.focus = -1
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		m.inputs[m.focus].Blur()
		m.focus = (m.focus + 1) % inputCount
		return m, m.inputs[m.focus].Focus()

	case key.Matches(msg, m.keys.Apply):
		m.applyFocusedInput()
		m.inputs[m.focus].Blur()
		m.focus = -1
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// applyFocusedInput dispatches the parameter command for the focused input.
// The command constructors coerce malformed text to 0.
func (m *PanelModel) applyFocusedInput() {
	text := m.inputs[m.focus].Value()
	switch m.focus {
	case inputForce:
		m.Session.Dispatch(control.SetForce(text))
	case inputDiameter:
		m.Session.Dispatch(control.SetDiameter(text))
	case inputGripType:
		m.Session.Dispatch(control.SetGripType(text))
	}
}

// View renders the panel as a pure projection of the last display state
func (m PanelModel) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(AppName))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Device: " + m.DeviceLabel))
	b.WriteString("\n\n")

	b.WriteString(StatusBoxStyle.Render(m.renderStatus()))
	b.WriteString("\n")

	if m.state.HasError() {
		b.WriteString(ErrorStyle.Render("⚠ " + m.state.LastError))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderInputs())
	b.WriteString("\n")

	b.WriteString(HelpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderStatus projects the snapshot fields into the status box
func (m PanelModel) renderStatus() string {
	st := m.state.Status
	if st == nil {
		return SubtitleStyle.Render("Waiting for first status...")
	}

	ready := WarnValueStyle.Render("NOT READY")
	if st.Ready {
		ready = ActiveValueStyle.Render("READY")
	}

	motion := ValueStyle.Render(st.MotionState())
	if st.Gripped {
		motion = ActiveValueStyle.Render(st.MotionState())
	}

	rows := []string{
		LabelStyle.Render("State") + ready + "  " + motion,
		LabelStyle.Render("Width") + ValueStyle.Render(fmt.Sprintf("%.1f mm", st.WidthMM())),
		LabelStyle.Render("Force") + ValueStyle.Render(strconv.Itoa(st.Force)),
		LabelStyle.Render("Diameter") + ValueStyle.Render(fmt.Sprintf("%.1f mm", st.DiameterMM())),
		LabelStyle.Render("Grip type") + ValueStyle.Render(st.GripType().String()),
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderInputs renders the three parameter inputs with focus highlighting
func (m PanelModel) renderInputs() string {
	labels := [inputCount]string{"Force", "Diameter", "Grip type"}

	parts := make([]string, 0, inputCount)
	for i := range m.inputs {
		style := InputLabelStyle
		if m.focus == i {
			style = FocusedInputLabelStyle
		}
		parts = append(parts, style.Render(labels[i])+" "+m.inputs[i].View())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(parts, "   "))
}
