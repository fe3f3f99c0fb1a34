package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/duartefontes/pedidozap/internal/display"
	"github.com/duartefontes/pedidozap/internal/parser"
)

const (
	minTUIWidth  = 60
	minTUIHeight = 16
)

var (
	tuiHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	tuiMetaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tuiHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	tuiValueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tuiLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
)

type tuiFocus int

const (
	tuiFocusList tuiFocus = iota
	tuiFocusDetail
)

type orderItemEntry struct {
	id          string
	title       string
	description string
	filterValue string
}

func (e orderItemEntry) FilterValue() string { return e.filterValue }
func (e orderItemEntry) Title() string       { return e.title }
func (e orderItemEntry) Description() string { return e.description }

type orderTUIModel struct {
	order     parser.Order
	confirmed bool

	list   list.Model
	detail viewport.Model

	focus     tuiFocus
	showNotes bool

	width, height int
	bodyHeight    int
	tooSmall      bool
}

func newOrderTUIModel(order parser.Order) orderTUIModel {
	delegate := list.NewDefaultDelegate()
	delegate.SetHeight(2)
	delegate.SetSpacing(1)

	lst := list.New(buildOrderListEntries(order), delegate, 0, 0)
	lst.Title = "Itens do pedido"
	lst.SetStatusBarItemName("item", "itens")
	lst.SetShowStatusBar(true)
	lst.SetFilteringEnabled(true)
	lst.SetShowHelp(false)
	lst.SetShowPagination(true)
	lst.DisableQuitKeybindings()

	detail := viewport.New(0, 0)
	detail.KeyMap.PageDown.SetKeys("f", "pgdown")
	detail.KeyMap.PageUp.SetKeys("b", "pgup")
	detail.KeyMap.HalfPageDown.SetKeys("d")
	detail.KeyMap.HalfPageUp.SetKeys("u")

	return orderTUIModel{
		order:  order,
		list:   lst,
		detail: detail,
		focus:  tuiFocusList,
	}
}

func buildOrderListEntries(order parser.Order) []list.Item {
	entries := make([]list.Item, 0, len(order.Items))
	for _, item := range order.Items {
		entries = append(entries, orderItemEntry{
			id:    item.ID,
			title: fmt.Sprintf("%sx %s", display.FormatQuantity(item.Quantity), item.Product.Name),
			description: fmt.Sprintf(
				"%s cada | %s",
				display.FormatPrice(item.UnitPrice),
				display.FormatPrice(item.TotalPrice),
			),
			filterValue: strings.ToLower(item.Product.Name),
		})
	}
	return entries
}

func (m orderTUIModel) Init() tea.Cmd {
	return nil
}

func (m orderTUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		filtering := m.list.FilterState() == list.Filtering
		key := keyMsg.String()

		switch key {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if !filtering {
				return m, tea.Quit
			}
		case "enter":
			if !filtering && m.focus == tuiFocusList {
				m.confirmed = true
				return m, tea.Quit
			}
		case "tab":
			if !filtering {
				if m.focus == tuiFocusList {
					m.focus = tuiFocusDetail
				} else {
					m.focus = tuiFocusList
				}
				return m, nil
			}
		case "esc":
			if m.focus == tuiFocusDetail && !filtering {
				m.focus = tuiFocusList
				return m, nil
			}
		case "x":
			if !filtering {
				m.removeSelectedItem()
				return m, nil
			}
		case "o":
			if !filtering {
				m.showNotes = !m.showNotes
				m.refreshDetail()
				return m, nil
			}
		}

		if m.focus == tuiFocusDetail && !filtering {
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.refreshDetail()
	return m, cmd
}

func (m orderTUIModel) View() string {
	if m.width == 0 || m.height == 0 {
		return tuiMetaStyle.Render("Carregando interface...")
	}
	if m.tooSmall {
		return lipgloss.NewStyle().
			Padding(1, 2).
			Render(
				fmt.Sprintf(
					"Terminal muito pequeno (%dx%d).\nRedimensione para pelo menos %dx%d.",
					m.width, m.height, minTUIWidth, minTUIHeight,
				),
			)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		m.bodyView(),
		m.footerView(),
	)
}

func (m *orderTUIModel) resize() {
	m.tooSmall = m.width < minTUIWidth || m.height < minTUIHeight
	if m.tooSmall {
		return
	}

	headerHeight := 2
	footerHeight := 2
	m.bodyHeight = m.height - headerHeight - footerHeight
	if m.bodyHeight < 4 {
		m.bodyHeight = 4
	}

	listWidth := m.width / 2
	detailWidth := m.width - listWidth - 3

	m.list.SetSize(listWidth-2, m.bodyHeight-2)
	m.detail.Width = detailWidth - 2
	m.detail.Height = m.bodyHeight - 2
	m.refreshDetail()
}

func (m orderTUIModel) headerView() string {
	client := m.order.ClientName
	if client == "" {
		client = "(sem nome)"
	}
	meta := fmt.Sprintf("cliente: %s | %d item(ns) | total %s",
		client, len(m.order.Items), display.FormatPrice(m.order.Total()))
	if m.order.ScheduledTime != nil {
		meta += " | retirada " + m.order.ScheduledTime.Format("15:04")
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		Render(tuiHeaderStyle.Render("pedidozap") + "  " + tuiMetaStyle.Render(meta))
}

func (m orderTUIModel) bodyView() string {
	listBorder := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Height(m.bodyHeight - 2)
	detailBorder := listBorder

	if m.focus == tuiFocusList {
		listBorder = listBorder.BorderForeground(lipgloss.Color("86"))
	} else {
		detailBorder = detailBorder.BorderForeground(lipgloss.Color("86"))
	}

	left := listBorder.Render(m.list.View())
	right := detailBorder.Render(m.detail.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

func (m orderTUIModel) footerView() string {
	base := "enter=confirmar | x=remover | o=observações | tab=painel | /=filtrar | q=sair"
	return lipgloss.NewStyle().
		Padding(0, 1).
		Render(tuiHintStyle.Render(base))
}

func (m *orderTUIModel) removeSelectedItem() {
	entry, ok := m.list.SelectedItem().(orderItemEntry)
	if !ok {
		return
	}

	kept := m.order.Items[:0:0]
	for _, item := range m.order.Items {
		if item.ID != entry.id {
			kept = append(kept, item)
		}
	}
	m.order.Items = kept
	m.list.SetItems(buildOrderListEntries(m.order))
	m.refreshDetail()
}

func (m *orderTUIModel) refreshDetail() {
	m.detail.SetContent(m.detailContent())
}

func (m orderTUIModel) detailContent() string {
	var b strings.Builder

	if m.showNotes {
		b.WriteString(tuiLabelStyle.Render("Observações") + "\n\n")
		if m.order.Notes == "" {
			b.WriteString(tuiMetaStyle.Render("(nenhuma)"))
		} else {
			b.WriteString(m.order.Notes)
		}
		return b.String()
	}

	entry, ok := m.list.SelectedItem().(orderItemEntry)
	if !ok {
		b.WriteString(tuiMetaStyle.Render("Nenhum item selecionado."))
		return b.String()
	}

	for _, item := range m.order.Items {
		if item.ID != entry.id {
			continue
		}
		b.WriteString(tuiLabelStyle.Render(item.Product.Name) + "\n\n")
		b.WriteString(fmt.Sprintf("quantidade:  %s\n", display.FormatQuantity(item.Quantity)))
		b.WriteString(fmt.Sprintf("preço un.:   %s\n", display.FormatPrice(item.UnitPrice)))
		b.WriteString("subtotal:    " + tuiValueStyle.Render(display.FormatPrice(item.TotalPrice)) + "\n")
		break
	}
	return b.String()
}
