package report

import (
	"html/template"
	"io"
)

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>genenet run report</title>
    <style>
        :root {
            --bg-color: #f8f9fa;
            --card-bg: #ffffff;
            --text-color: #333;
            --ok: #28a745;
            --fail: #dc3545;
            --border-color: #dee2e6;
        }
        body { font-family: 'Segoe UI', sans-serif; background: var(--bg-color); color: var(--text-color); margin: 0; padding: 20px; }
        .container { max-width: 960px; margin: 0 auto; }
        .header { text-align: center; margin-bottom: 30px; }
        .stats { display: flex; gap: 20px; margin-bottom: 20px; }
        .stat-card { flex: 1; background: var(--card-bg); padding: 20px; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); text-align: center; }
        .stat-num { font-size: 2em; font-weight: bold; }
        table { width: 100%; border-collapse: collapse; background: var(--card-bg); margin-bottom: 20px; }
        th, td { padding: 8px 12px; border-bottom: 1px solid var(--border-color); text-align: left; }
        .ok { color: var(--ok); }
        .fail { color: var(--fail); }
        code { background: #eee; padding: 2px 5px; border-radius: 3px; word-break: break-all; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>genenet run report</h1>
            <p>Generated: {{ .GeneratedAt.Format "2006-01-02 15:04:05" }}{{ with .Host }} on {{ .Hostname }} ({{ .Platform }} {{ .PlatformVersion }}){{ end }}</p>
        </div>

        <div class="stats">
            <div class="stat-card">
                <div class="stat-num">{{ .Graph.NumNodes }}</div>
                <div>nodes</div>
            </div>
            <div class="stat-card">
                <div class="stat-num">{{ .Graph.NumEdges }}</div>
                <div>edges</div>
            </div>
            <div class="stat-card">
                <div class="stat-num">{{ .RecordsRead }}</div>
                <div>records read</div>
            </div>
            <div class="stat-card">
                <div class="stat-num">{{ .SelfLoopsRemoved }}</div>
                <div>self-loops removed</div>
            </div>
        </div>

        <table>
            <tr><th>Input</th><td><code>{{ .Input }}</code></td></tr>
            {{ if .Output }}<tr><th>Output</th><td><code>{{ .Output }}</code></td></tr>{{ end }}
            <tr><th>Elapsed</th><td>{{ .Duration }}</td></tr>
        </table>

        <table>
            <tr><th>Stage</th><th>Duration</th><th>Status</th></tr>
            {{ range .Stages }}
            <tr>
                <td>{{ .Stage }}</td>
                <td>{{ .Duration }}</td>
                {{ if .Err }}<td class="fail">{{ .Err }}</td>{{ else }}<td class="ok">ok</td>{{ end }}
            </tr>
            {{ end }}
        </table>
    </div>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Parse(reportTemplate))

// WriteHTML renders the report as a standalone HTML page.
func WriteHTML(w io.Writer, r *Report) error {
	return htmlTemplate.Execute(w, r)
}
