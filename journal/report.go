package journal

import (
	"bytes"
	"os"
	"text/template"
)

// Report bundles everything needed to render a stored run as an
// org-mode research note.
type Report struct {
	Run       RunRecord
	Outcomes  []OutcomeRecord
	BreakEven float64 // break-even win rate percent for the run's R:R
}

var reportFuncs = template.FuncMap{
	"yesno": func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	},
}

// Org renders the report using RunOrgTemplate.
func (r *Report) Org() (string, error) {
	t, err := template.New("run").Funcs(reportFuncs).Parse(RunOrgTemplate)
	if err != nil {
		return "", err
	}

	buf := new(bytes.Buffer)
	if err := t.Execute(buf, r); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// WriteOrg renders the report and writes it to path.
func (r *Report) WriteOrg(path string) error {
	s, err := r.Org()
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(s), 0644)
}

const RunOrgTemplate = `
* SIMULATION: {{printf "%.2f" .Run.RiskPct}}% risk at {{printf "%.1f" .Run.RewardRisk}}:1
:PROPERTIES:
:RUN_ID:      {{.Run.RunID}}
:CREATED:     [{{.Run.Created.Format "2006-01-02 Mon 15:04"}}]
:SEED:        {{.Run.Seed}}
:TRADES:      {{.Run.Trades}}
:START_BAL:   {{printf "%.2f" .Run.StartBalance}}
:END_BAL:     {{printf "%.2f" .Run.FinalBalance}}
:NET_PL:      {{printf "%.2f" .Run.NetPL}}
:RETURN_PCT:  {{printf "%.2f" .Run.ReturnPct}}
:MAX_DD_PCT:  {{printf "%.2f" .Run.MaxDDPct}}
:WINS:        {{.Run.Wins}}
:LOSSES:      {{.Run.Losses}}
:RUINED:      {{yesno .Run.Ruined}}
:END:

** Parameters
| Parameter        | Value |
|------------------+-------|
| Risk per Trade % | {{printf "%.2f" .Run.RiskPct}} |
| Reward:Risk      | {{printf "%.2f" .Run.RewardRisk}} |
| Trades           | {{.Run.Trades}} |
| Assumed Win %    | {{printf "%.1f" .Run.WinRatePct}} |
| Break-even Win % | {{printf "%.2f" .BreakEven}} |

** Performance Summary
- Net P/L:        *{{printf "%.2f" .Run.NetPL}}*
- Return:         *{{printf "%.2f" .Run.ReturnPct}}%*
- Max Drawdown:   *{{printf "%.2f" .Run.MaxDDPct}}%*
- Ruined:         *{{yesno .Run.Ruined}}*

** Trade Distribution
| Outcome | Count |
|---------+-------|
| Wins    | {{.Run.Wins}} |
| Losses  | {{.Run.Losses}} |

{{- if .Outcomes }}

** Expected Outcomes by Win Rate
| Win % | Expected Balance | Above Break-even |
|-------+------------------+------------------|
{{- range .Outcomes }}
| {{.WinRatePct}} | {{printf "%.2f" .Expected}} | {{yesno .AboveBreakEven}} |
{{- end }}
{{- end }}
`
