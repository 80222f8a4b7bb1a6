package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"pokeroster/internal/catalog"
	"pokeroster/internal/domain"
)

// MessageKind selects the banner colour of a Message.
type MessageKind int

const (
	Success MessageKind = iota
	Failure
)

const cardsPerRow = 3

// View renders roster and catalog data for a terminal.
type View struct {
	r *lipgloss.Renderer

	card      lipgloss.Style
	emptyCard lipgloss.Style
	title     lipgloss.Style
	muted     lipgloss.Style
	heading   lipgloss.Style
}

// New returns a View writing for w. With color false every style is rendered
// without ANSI colour codes.
func New(w io.Writer, color bool) *View {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	card := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(26)
	return &View{
		r:         r,
		card:      card,
		emptyCard: card.BorderForeground(lipgloss.Color("240")).Foreground(lipgloss.Color("240")),
		title:     r.NewStyle().Bold(true),
		muted:     r.NewStyle().Foreground(lipgloss.Color("245")),
		heading:   r.NewStyle().Bold(true).Underline(true),
	}
}

// Team renders the six team cards in rows, followed by the sprite of each
// filled slot. The URLs sit below the grid since they are wider than a card.
func (v *View) Team(r domain.Roster) string {
	cards := TeamCards(r)
	rows := make([]string, 0, (len(cards)+cardsPerRow-1)/cardsPerRow+1)
	for i := 0; i < len(cards); i += cardsPerRow {
		end := min(i+cardsPerRow, len(cards))
		rendered := make([]string, 0, cardsPerRow)
		for _, c := range cards[i:end] {
			rendered = append(rendered, v.renderCard(c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}

	var sprites []string
	for _, c := range cards {
		if !c.Empty {
			sprites = append(sprites, v.muted.Render(fmt.Sprintf("slot %-8s sprite %s", c.Slot, c.SpriteURL)))
		}
	}
	if len(sprites) > 0 {
		rows = append(rows, "\n"+strings.Join(sprites, "\n"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (v *View) renderCard(c Card) string {
	if c.Empty {
		return v.emptyCard.Render(c.Title + "\n\n")
	}
	body := strings.Join([]string{
		v.title.Render(c.Title),
		c.Species,
		v.muted.Render(fmt.Sprintf("slot %s  #%d", c.Slot, c.ID)),
	}, "\n")
	return v.card.Render(body)
}

// Species renders a catalog lookup: name, type badges, height and weight.
func (v *View) Species(sp domain.Species) string {
	badges := make([]string, 0, len(sp.Types))
	for _, t := range sp.Types {
		badges = append(badges, v.typeBadge(t))
	}
	lines := []string{
		v.title.Render(domain.Capitalize(sp.Name)) + v.muted.Render(fmt.Sprintf("  #%d", sp.ID)),
		"Type: " + strings.Join(badges, " "),
		fmt.Sprintf("Height: %d'%d\"", sp.Feet, sp.Inches),
		fmt.Sprintf("Weight: %.1f lbs", sp.Pounds),
	}
	if sp.SpriteURL != "" {
		lines = append(lines, v.muted.Render("Sprite: "+sp.SpriteURL))
	}
	lines = append(lines, v.muted.Render("Cry: "+catalog.CryURL(sp.ID)))
	return v.card.Width(0).Render(strings.Join(lines, "\n"))
}

// Starters renders the starter list grouped by type, in the given type order.
func (v *View) Starters(groups map[string][]domain.Starter, order []string) string {
	sections := make([]string, 0, len(order))
	for _, typ := range order {
		names := make([]string, 0, len(groups[typ]))
		for _, st := range groups[typ] {
			names = append(names, fmt.Sprintf("%s (#%d)", st.Name, st.ID))
		}
		sections = append(sections,
			v.typeBadge(typ)+"\n"+strings.Join(names, ", "))
	}
	return v.heading.Render("Choose your starter") + "\n\n" + strings.Join(sections, "\n\n")
}

// Message renders a one-line success or error banner.
func (v *View) Message(kind MessageKind, text string) string {
	bg := successColor
	if kind == Failure {
		bg = errorColor
	}
	return v.r.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(text)
}

func (v *View) typeBadge(name string) string {
	return v.r.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(TypeColor(name))).
		Padding(0, 1).
		Render(domain.Capitalize(name))
}
