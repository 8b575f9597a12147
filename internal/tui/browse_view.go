package tui

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer formats record counts with thousands separators.
var printer = message.NewPrinter(language.English)

// View renders the current state (Bubble Tea interface).
func (m *BrowseModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render("galleria — Art Institute of Chicago"))
	b.WriteString("\n")

	b.WriteString(m.table.View())
	b.WriteString("\n")

	if m.showPopover {
		b.WriteString(m.renderPopover())
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderFooter())
		b.WriteString("\n")
		b.WriteString(m.renderHelp())
	}

	return b.String()
}

// renderFooter shows pagination, selection and fetch status.
func (m *BrowseModel) renderFooter() string {
	var parts []string

	totalPages := m.browser.TotalPages()
	if totalPages > 0 {
		parts = append(parts, fmt.Sprintf("%s %s",
			LabelStyle.Render("Page"),
			ValueStyle.Render(fmt.Sprintf("%d/%d", m.browser.Page(), totalPages)),
		))
		parts = append(parts, fmt.Sprintf("%s %s",
			LabelStyle.Render("Records"),
			ValueStyle.Render(printer.Sprintf("%d", m.browser.Total())),
		))
	}

	sel := fmt.Sprintf("%d", m.browser.Selection().Len())
	if target := m.browser.Target(); target > 0 {
		sel = fmt.Sprintf("%d/%d", m.browser.Selection().Len(), target)
	}
	parts = append(parts, fmt.Sprintf("%s %s",
		LabelStyle.Render("Selected"),
		AccentStyle.Render(sel),
	))

	if m.browser.Busy() {
		parts = append(parts, m.spin.View()+LabelStyle.Render("fetching"))
	}

	return strings.Join(parts, LabelStyle.Render("  │  "))
}

// renderHelp shows the key bindings line.
func (m *BrowseModel) renderHelp() string {
	return HelpStyle.Render(
		"←/→ page · space select · a/A page select/clear · 1-5 sort · t target · q quit",
	)
}

// renderPopover shows the selection-target input, bounded by the current
// total record count.
func (m *BrowseModel) renderPopover() string {
	prompt := printer.Sprintf("Select how many rows (0–%d)", m.browser.Total())
	body := prompt + "\n" + m.targetInput.View() + "\n" + HelpStyle.Render("enter submit · esc cancel")
	return PopoverStyle.Render(body)
}
