// Package tui is the terminal dashboard for pantry and delivery staff.
//
// It follows the bubbletea model/update/view loop. All order state lives in a
// lifecycle.Coordinator; the model only keeps what the screen needs (the table
// cursor, the filter being edited, the notes field) and redraws from the
// coordinator after every finished command.
package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"hospitalfood/internal/client/api"
	"hospitalfood/internal/client/lifecycle"
	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/order"
	"hospitalfood/internal/core/domain/model/staff"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Mode picks which actions the dashboard offers.
type Mode int

const (
	ModePantry Mode = iota
	ModeDelivery
	// ModeManager orders planned meals for patients instead of working on orders.
	ModeManager
)

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pantry":
		return ModePantry, nil
	case "delivery":
		return ModeDelivery, nil
	case "manager":
		return ModeManager, nil
	default:
		return 0, fmt.Errorf("unknown dashboard mode %q, want pantry, delivery or manager", s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeDelivery:
		return "delivery"
	case ModeManager:
		return "manager"
	default:
		return "pantry"
	}
}

// ModeFor returns the dashboard mode of a staff role.
func ModeFor(role staff.Role) Mode {
	switch role {
	case staff.RoleDelivery:
		return ModeDelivery
	case staff.RoleManager:
		return ModeManager
	default:
		return ModePantry
	}
}

// doneMsg reports that a coordinator call finished. The coordinator already notified the outcome.
type doneMsg struct{ err error }

// Model is the dashboard's bubbletea model.
type Model struct {
	coord *lifecycle.Coordinator
	board *NoticeBoard
	mode  Mode
	now   func() time.Time

	filter      api.Filter
	mealSession kernel.Session
	keys        keyMap
	help   help.Model
	table  table.Model
	notes  textinput.Model

	busy        int
	status      string
	statusLevel lifecycle.Level
	width       int
}

type Option func(*Model)

// WithClock replaces the time source used for the "today" filter.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// New builds the dashboard. board must be the Notifier the coordinator was built with.
func New(coord *lifecycle.Coordinator, board *NoticeBoard, mode Mode, opts ...Option) *Model {
	notes := textinput.New()
	notes.Placeholder = "delivery notes (optional)"
	notes.CharLimit = 1000
	notes.Width = 50

	m := &Model{
		coord: coord,
		board: board,
		mode:  mode,
		now:   time.Now,
		keys:  newKeyMap(mode),
		help:  help.New(),
		notes: notes,

		mealSession: kernel.SessionMorning,
		table: table.New(
			table.WithColumns(columnsFor(mode, 100)),
			table.WithFocused(true),
			table.WithHeight(15),
		),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.filter.Date = m.today()
	m.table.SetStyles(tableStyles())
	return m
}

// Run starts the dashboard in the alternate screen and blocks until the user quits.
func Run(m *Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	if m.mode == ModeManager {
		return tea.Batch(m.loadPatients(), m.run(func(ctx context.Context) error {
			_, err := m.coord.LoadLocations(ctx, staff.RolePantryStaff)
			return err
		}))
	}

	cmds := []tea.Cmd{m.fetch()}
	if m.mode == ModePantry {
		cmds = append(cmds, m.run(func(ctx context.Context) error {
			_, err := m.coord.LoadLocations(ctx, staff.RoleDelivery)
			return err
		}))
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.table.SetColumns(columnsFor(m.mode, msg.Width))
		m.table.SetHeight(max(5, msg.Height-10))
		return m, nil

	case doneMsg:
		m.busy--
		m.sync()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == ModeManager {
			return m, m.updateMeals(msg)
		}
		if m.coord.AssignOpen() {
			return m, m.updateDialog(msg)
		}
		return m, m.updateList(msg)
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		if o, ok := m.current(); ok {
			m.coord.Toggle(o.ID)
			m.sync()
		}
		return nil

	case key.Matches(msg, m.keys.Refresh):
		return m.fetch()

	case key.Matches(msg, m.keys.Session):
		m.filter.Session = nextSession(m.filter.Session)
		return m.fetch()

	case key.Matches(msg, m.keys.Date):
		if m.filter.Date == "" {
			m.filter.Date = m.today()
		} else {
			m.filter.Date = ""
		}
		return m.fetch()

	case key.Matches(msg, m.keys.Preparing):
		return m.advanceKitchen(order.OrderPreparing)

	case key.Matches(msg, m.keys.Completed):
		return m.advanceKitchen(order.OrderCompleted)

	case key.Matches(msg, m.keys.Progress):
		return m.advanceDelivery(order.DeliveryInProgress)

	case key.Matches(msg, m.keys.Delivered):
		return m.advanceDelivery(order.DeliveryDelivered)

	case key.Matches(msg, m.keys.Assign):
		m.coord.OpenAssign()
		m.notes.Reset()
		m.notes.Focus()
		return textinput.Blink
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd
}

func (m *Model) updateDialog(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.coord.CloseAssign()
		m.notes.Blur()
		return nil

	case key.Matches(msg, m.keys.NextLocation):
		state, _ := m.coord.Picker(staff.RoleDelivery)
		next := nextString(state.Locations, state.Location)
		if next == "" {
			return nil
		}
		return m.run(func(ctx context.Context) error {
			return m.coord.SelectLocation(ctx, staff.RoleDelivery, next)
		})

	case msg.Type == tea.KeyUp, msg.Type == tea.KeyDown:
		// Letters go to the notes field, so only the arrows pick a person here.
		state, _ := m.coord.Picker(staff.RoleDelivery)
		step := 1
		if msg.Type == tea.KeyUp {
			step = -1
		}
		if person, ok := stepPerson(state, step); ok {
			_ = m.coord.ChoosePerson(staff.RoleDelivery, person.ID)
			m.sync()
		}
		return nil

	case key.Matches(msg, m.keys.Submit):
		notes := strings.TrimSpace(m.notes.Value())
		return m.run(func(ctx context.Context) error {
			return m.coord.AssignDelivery(ctx, notes)
		})
	}

	var cmd tea.Cmd
	m.notes, cmd = m.notes.Update(msg)
	return cmd
}

func (m *Model) fetch() tea.Cmd {
	filter := m.filter
	return m.run(func(ctx context.Context) error {
		_, err := m.coord.Fetch(ctx, filter)
		return err
	})
}

func (m *Model) advanceKitchen(target order.OrderStatus) tea.Cmd {
	return m.run(func(ctx context.Context) error {
		return m.coord.AdvanceKitchen(ctx, target)
	})
}

func (m *Model) advanceDelivery(target order.DeliveryStatus) tea.Cmd {
	return m.run(func(ctx context.Context) error {
		return m.coord.AdvanceDelivery(ctx, target)
	})
}

// run wraps a coordinator call in a command that reports back with doneMsg.
func (m *Model) run(call func(ctx context.Context) error) tea.Cmd {
	m.busy++
	return func() tea.Msg {
		return doneMsg{err: call(context.Background())}
	}
}

// sync redraws the table from the coordinator and picks up the latest notice.
func (m *Model) sync() {
	var rows []table.Row
	if m.mode == ModeManager {
		rows = m.mealRows()
	} else {
		orders := m.coord.Orders()
		rows = make([]table.Row, len(orders))
		for i, o := range orders {
			rows[i] = m.row(o)
		}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) && len(rows) > 0 {
		m.table.SetCursor(len(rows) - 1)
	}

	if level, message, ok := m.board.Take(); ok {
		m.statusLevel, m.status = level, message
	}
	if !m.coord.AssignOpen() {
		m.notes.Blur()
	}
}

func (m *Model) current() (api.Order, bool) {
	orders := m.coord.Orders()
	i := m.table.Cursor()
	if i < 0 || i >= len(orders) {
		return api.Order{}, false
	}
	return orders[i], true
}

func (m *Model) today() string {
	return order.DateOf(m.now()).Format("2006-01-02")
}

func (m *Model) row(o api.Order) table.Row {
	mark := "[ ]"
	if m.coord.IsSelected(o.ID) {
		mark = "[x]"
	}
	person := "-"
	if o.DeliveryPerson != nil && o.DeliveryPerson.Name != "" {
		person = o.DeliveryPerson.Name
	}
	return table.Row{
		mark,
		o.Patient.Name,
		fmt.Sprintf("%s/%s", o.Patient.RoomNumber, o.Patient.BedNumber),
		o.Session.String(),
		o.OrderStatus.String(),
		o.DeliveryStatus.String(),
		person,
		describeItems(o.FoodItems),
	}
}

func columnsFor(mode Mode, width int) []table.Column {
	if mode == ModeManager {
		return mealColumns(width)
	}
	return columns(width)
}

func columns(width int) []table.Column {
	fixed := []table.Column{
		{Title: "", Width: 3},
		{Title: "Patient", Width: 18},
		{Title: "Room/Bed", Width: 9},
		{Title: "Session", Width: 9},
		{Title: "Kitchen", Width: 10},
		{Title: "Delivery", Width: 10},
		{Title: "Courier", Width: 14},
	}
	used := 0
	for _, c := range fixed {
		used += c.Width + 2
	}
	return append(fixed, table.Column{Title: "Items", Width: max(12, width-used-2)})
}

func describeItems(items []api.FoodItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = fmt.Sprintf("%d x %s", item.Quantity, item.Name)
	}
	return strings.Join(parts, ", ")
}

func nextSession(s kernel.Session) kernel.Session {
	sessions := kernel.Sessions()
	i := slices.Index(sessions, s)
	if i == len(sessions)-1 {
		return kernel.SessionUnknown
	}
	return sessions[i+1]
}

func nextString(values []string, current string) string {
	if len(values) == 0 {
		return ""
	}
	i := slices.Index(values, current)
	return values[(i+1)%len(values)]
}

func stepPerson(state lifecycle.PickerState, step int) (api.StaffMember, bool) {
	if len(state.People) == 0 {
		return api.StaffMember{}, false
	}
	i := -1
	if state.Chosen != nil {
		i = slices.IndexFunc(state.People, func(p api.StaffMember) bool { return p.ID.IsEqual(state.Chosen.ID) })
	}
	if i < 0 {
		return state.People[0], true
	}
	n := len(state.People)
	return state.People[((i+step)%n+n)%n], true
}
