package analysis

import (
	"fmt"
	"strings"
	"text/template"
)

const systemPrompt = `You coach players of the 2048 sliding tile puzzle.
You never play moves yourself; you explain options.
Reply with a JSON object with exactly two fields:
"analysis" (string, plain text, at most 120 words) and
"shouldShowAnalysis" (boolean).`

var userPrompt = template.Must(template.New("board").Parse(`Board ({{.Size}}x{{.Size}}, 0 = empty, top row first):
{{range .Rows}}{{.}}
{{end}}
Score: {{.Score}}

Point out merges that are available now, name the direction you would
move next and why, and mention another plan if the current layout is
weak. Set shouldShowAnalysis to true when the board is crowded, few
moves remain, or the score is still low; otherwise set it to false.`))

type promptData struct {
	Size  int
	Rows  []string
	Score int
}

// renderPrompt formats the board for the model.
func renderPrompt(req Request) (string, error) {
	data := promptData{Size: len(req.BoardState), Score: req.Score}
	for _, row := range req.BoardState {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = fmt.Sprintf("%5d", v)
		}
		data.Rows = append(data.Rows, strings.Join(cells, " "))
	}

	var sb strings.Builder
	if err := userPrompt.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
