// Package console renders simulation results as terminal tables.
package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"rtb-pacing/internal/core/domain"
	"rtb-pacing/internal/core/port"
)

// pacing errors above this are highlighted
const pacingWarnThreshold = 0.1

// Renderer writes a human-readable report. The zero value renders the
// summary and aggregates only.
type Renderer struct {
	// ShowTicks appends the per-minute auction log.
	ShowTicks bool
}

// Render writes resp to w.
func (r Renderer) Render(w io.Writer, resp *port.SimulationResp) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s pacing, %d minutes", resp.Strategy, resp.Horizon)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("run %s  seed %d", resp.RunID, resp.Seed)))
	b.WriteString("\n")
	if resp.PID != nil {
		b.WriteString(mutedStyle.Render(fmt.Sprintf("kp=%g ki=%g kd=%g", resp.PID.Kp, resp.PID.Ki, resp.PID.Kd)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(summaryTable(resp).String())
	b.WriteString("\n\n")
	b.WriteString(aggregates(resp))
	b.WriteString("\n")

	if r.ShowTicks && len(resp.Ticks) > 0 {
		b.WriteString("\n")
		b.WriteString(tickTable(resp.Ticks).String())
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func summaryTable(resp *port.SimulationResp) *table.Table {
	rows := make([][]string, 0, len(resp.Report.Summary))
	pacing := make([]float64, 0, len(resp.Report.Summary))
	for _, s := range resp.Report.Summary {
		rows = append(rows, []string{
			s.Name,
			money(s.Budget),
			money(s.SettledSpend),
			strconv.Itoa(s.TickCount),
			fmt.Sprintf("%.1f", s.TotalClicks),
			money(s.TotalSpend),
			fmt.Sprintf("%.4f", s.MeanPrice),
			fmt.Sprintf("%.4f", s.MeanPCTR),
			fmt.Sprintf("%.4f", s.CostPerClick),
			fmt.Sprintf("%.4f", s.PacingError),
		})
		pacing = append(pacing, s.PacingError)
	}

	const pacingCol = 9
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		Headers("Campaign", "Budget", "Spend", "Ticks won", "Clicks", "Click spend", "Mean price", "Mean pCTR", "CPC", "Pacing error").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return cellStyle
			case col == pacingCol && row < len(pacing):
				if pacing[row] > pacingWarnThreshold {
					return numberStyle.Foreground(badColor)
				}
				return numberStyle.Foreground(goodColor)
			default:
				return numberStyle
			}
		})
}

func aggregates(resp *port.SimulationResp) string {
	rep := resp.Report
	lines := []string{
		labelStyle.Render("No-bid ticks") + strconv.Itoa(rep.NoBidTicks),
		labelStyle.Render("Inventory fill rate") + fmt.Sprintf("%.2f%%", rep.FillRate*100),
		labelStyle.Render("Pacing error") + fmt.Sprintf("%.4f", rep.PacingError),
		labelStyle.Render("Average cost per click") + fmt.Sprintf("%.4f", rep.AverageCostPerClick),
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func tickTable(ticks []domain.TickRecord) *table.Table {
	rows := make([][]string, 0, len(ticks))
	for _, t := range ticks {
		rows = append(rows, []string{
			strconv.Itoa(t.Minute),
			t.Winner,
			fmt.Sprintf("%.4f", t.PricePaid),
			fmt.Sprintf("%.4f", t.PCTR),
			strconv.Itoa(t.Bidders),
		})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(borderColor)).
		Headers("Minute", "Winner", "Price paid", "pCTR", "Bidders").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1 && row < len(ticks) && !ticks[row].Filled():
				return cellStyle.Foreground(mutedColor)
			case col == 1:
				return cellStyle
			default:
				return numberStyle
			}
		})
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
