package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leekchan/accounting"
)

const barWidth = 40

var money = accounting.Accounting{Symbol: "$", Precision: 2}

// FormatMoney formats v as dollars with thousands separators
func FormatMoney(v float64) string {
	return money.FormatMoney(v)
}

// Render writes a text report with bar charts to w
func Render(w io.Writer, r *Report) error {
	re := lipgloss.NewRenderer(w)
	title := re.NewStyle().Bold(true).Underline(true)
	label := re.NewStyle().Width(22)
	gain := re.NewStyle().Foreground(lipgloss.Color("42"))
	loss := re.NewStyle().Foreground(lipgloss.Color("196"))
	bar := re.NewStyle().Foreground(lipgloss.Color("39"))

	signed := func(v float64, s string) string {
		if v < 0 {
			return loss.Render(s)
		}
		return gain.Render(s)
	}

	var sb strings.Builder
	line := func(format string, args ...any) {
		sb.WriteString(fmt.Sprintf(format, args...))
		sb.WriteByte('\n')
	}

	// === Header ===
	line(title.Render(fmt.Sprintf("%s Monte Carlo (%d trials)", r.Ticker, r.Summary.Trials)))
	line("%s%s", label.Render("Run"), r.RunID)
	line("%s%d", label.Render("Seed"), r.Seed)
	line("%s%d @ %s", label.Render("Position"), r.Position.ShareCount, FormatMoney(r.Position.EntryPrice))
	line("%s%s", label.Render("Cost basis"), FormatMoney(r.Summary.CostBasis))
	line("%s%s", label.Render("Expected exit price"), FormatMoney(r.Summary.ExpectedExitPrice))
	line("%s%s", label.Render("Expected gain"),
		signed(r.Summary.DollarGain.Mean, fmt.Sprintf("%s (%.2f%%)", FormatMoney(r.Summary.DollarGain.Mean), r.Summary.PercentGain.Mean)))
	line("%s%s", label.Render("Median gain"),
		signed(r.Summary.DollarGain.Median, fmt.Sprintf("%s (%.2f%%)", FormatMoney(r.Summary.DollarGain.Median), r.Summary.PercentGain.Median)))
	line("%s%.2f%% .. %.2f%%", label.Render("P5 .. P95"), r.Summary.PercentGain.P5, r.Summary.PercentGain.P95)
	line("%s%.1f%%", label.Render("Probability of loss"), r.Summary.ProbabilityOfLoss*100)
	sb.WriteByte('\n')

	// === Scenarios ===
	line(title.Render("Scenario distribution"))
	for _, s := range r.Distribution {
		line("%-12s %s %5.1f%%  avg %s  %s",
			s.Scenario,
			bar.Render(blocks(s.Frequency, 1)),
			s.Frequency*100,
			FormatMoney(s.MeanPrice),
			signed(s.MeanDollarGain, FormatMoney(s.MeanDollarGain)))
	}
	sb.WriteByte('\n')

	// === Histogram ===
	line(title.Render("Percent ROI histogram"))
	var peak float64
	for _, b := range r.Histogram {
		if b.Frequency > peak {
			peak = b.Frequency
		}
	}
	for _, b := range r.Histogram {
		line("%9.2f%% .. %9.2f%% %s %d",
			b.Lower, b.Upper, signed(b.Upper, blocks(b.Frequency, peak)), b.Count)
	}

	// === CDF ===
	if len(r.CDF) > 0 {
		sb.WriteByte('\n')
		line(title.Render("Cumulative distribution of percent ROI"))
		for _, p := range r.CDF {
			line("  <= %7.1f%% %s %5.1f%%", p.Value, bar.Render(blocks(p.Fraction, 1)), p.Fraction*100)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// blocks renders v/peak as a bar of barWidth cells
func blocks(v, peak float64) string {
	if peak <= 0 {
		return strings.Repeat("░", barWidth)
	}
	n := int(v / peak * barWidth)
	if n > barWidth {
		n = barWidth
	}
	return strings.Repeat("█", n) + strings.Repeat("░", barWidth-n)
}
