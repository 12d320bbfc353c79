package rendering

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nathanieltooley/dondozo/battle"
)

// Renderer prints the branches of a resolved turn.
// Without color the output is plain text with no borders.
type Renderer struct {
	Color bool
	Width int
}

func (r Renderer) render(style lipgloss.Style, text string) string {
	if !r.Color {
		return text
	}

	return style.Render(text)
}

func instructionStyle(instruction battle.Instruction) lipgloss.Style {
	switch i := instruction.(type) {
	case battle.Damage:
		return ItemStyle.Foreground(DamageColor)
	case battle.Heal:
		if i.Amount < 0 {
			return ItemStyle.Foreground(DamageColor)
		}
		return ItemStyle.Foreground(HealColor)
	case battle.ChangeWeather, battle.ChangeTerrain, battle.ChangeTrickRoom, battle.ChangeSideCondition:
		return ItemStyle.Foreground(FieldColor)
	}

	return ItemStyle
}

func (r Renderer) header(index int, result battle.StateInstructions, likeliest bool) string {
	style := PercentageStyle
	if likeliest {
		style = style.Background(HighlightedColor).Foreground(BestTextColor(HighlightedColor))
	}

	header := fmt.Sprintf("Branch %d  %s", index+1, r.render(style, fmt.Sprintf("%.3f%%", result.Percentage)))
	if result.EndOfTurnTriggered {
		header += r.render(EndOfTurnStyle, "  (end of turn)")
	}

	return header
}

// Branch describes every instruction of one branch in order.
// Instructions are applied to a copy so names follow switches.
func (r Renderer) Branch(state battle.State, index int, result battle.StateInstructions, likeliest bool) string {
	lines := make([]string, 0, len(result.Instructions)+1)
	lines = append(lines, r.header(index, result, likeliest))

	if len(result.Instructions) == 0 {
		lines = append(lines, r.render(ItemStyle, "  nothing happens"))
	}
	for _, instruction := range result.Instructions {
		text := Describe(&state, instruction)
		if r.Color {
			lines = append(lines, instructionStyle(instruction).Render(text))
		} else {
			lines = append(lines, "  "+text)
		}
		instruction.Apply(&state)
	}

	if !r.Color {
		return strings.Join(lines, "\n")
	}

	style := BranchStyle
	if r.Width > 4 {
		style = style.Width(r.Width - 4)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Branches renders every branch of a turn, highlighting the likeliest one
func (r Renderer) Branches(state battle.State, results []battle.StateInstructions) string {
	likeliest := 0
	for i, result := range results {
		if result.Percentage > results[likeliest].Percentage {
			likeliest = i
		}
	}

	blocks := make([]string, 0, len(results)+1)
	blocks = append(blocks, fmt.Sprintf("%d branches", len(results)))
	for i, result := range results {
		blocks = append(blocks, r.Branch(state, i, result, i == likeliest))
	}

	if !r.Color {
		return strings.Join(blocks, "\n\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}
