/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: templates.go
Description: HTML templates for evaluation reports.
*/

package reporting

const reportStyles = `
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif;
            background: #f4f6fb;
            color: #2d3748;
        }
        .container { max-width: 1000px; margin: 0 auto; padding: 24px; }
        .header {
            background: #ffffff;
            border-radius: 16px;
            padding: 24px;
            margin-bottom: 24px;
            box-shadow: 0 4px 16px rgba(0, 0, 0, 0.06);
        }
        .header h1 { font-size: 1.8rem; color: #4a5568; margin-bottom: 6px; }
        .header p { color: #718096; }
        .card {
            background: #ffffff;
            border-radius: 12px;
            padding: 20px;
            margin-bottom: 20px;
            box-shadow: 0 4px 16px rgba(0, 0, 0, 0.06);
        }
        .card h2 { font-size: 1.2rem; margin-bottom: 12px; }
        table { width: 100%; border-collapse: collapse; }
        th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid #edf2f7; }
        th { color: #718096; font-weight: 600; }
        .res-s { color: #2f855a; font-weight: 600; }
        .res-i { color: #b7791f; font-weight: 600; }
        .res-r { color: #c53030; font-weight: 600; }
        .src-intrinsic { color: #6b46c1; }
        .src-cascade { color: #2b6cb0; }
        .src-user { color: #4a5568; }
        .panel { border-left: 6px solid; border-radius: 8px; padding: 14px 18px; margin-bottom: 16px; }
        .panel h3 { font-size: 1rem; margin-bottom: 8px; }
        .panel ul { padding-left: 18px; }
        .panel li { margin-bottom: 4px; }
        .mechanism { background: #fff5f5; border-color: #e53e3e; }
        .caution { background: #fffaf0; border-color: #dd6b20; }
        .favorable { background: #f0fff4; border-color: #38a169; }
        .therapy { background: #ebf8ff; border-color: #3182ce; }
        ol.refs { padding-left: 20px; font-size: 0.9rem; color: #4a5568; }
        ol.refs li { margin-bottom: 6px; }
        .empty { color: #a0aec0; font-style: italic; }
`

// reportTemplate renders one evaluation
const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>` + reportStyles + `</style>
</head>
<body>
<div class="container">
    <div class="header">
        <h1>{{.Title}}</h1>
        <p>Report {{.Report.ReportID}} &middot; {{timestamp .Report}} &middot; MechID {{.Report.Version}}</p>
        {{if .Context}}<p>{{.Context}}</p>{{end}}
    </div>
{{if and .Eval .Eval.Known}}
    <div class="card">
        <h2>Results</h2>
        {{if .HasRows}}
        <table>
            <thead><tr><th>Antibiotic</th><th>Result</th><th>Source</th></tr></thead>
            <tbody>
            {{range .Eval.Rows}}
                <tr>
                    <td>{{.Antibiotic}}</td>
                    <td class="{{resultClass .Result}}">{{.Result}}</td>
                    <td class="{{sourceClass .Source}}">{{.Source}}</td>
                </tr>
            {{end}}
            </tbody>
        </table>
        {{else}}
        <p class="empty">No results.</p>
        {{end}}
    </div>
    <div class="card">
        <h2>Interpretation</h2>
        {{range .Panels}}
        <div class="panel {{.Class}}">
            <h3>{{.Title}}</h3>
            <ul>{{range .Items}}<li>{{.}}</li>{{end}}</ul>
        </div>
        {{else}}
        <p class="empty">No findings for this profile.</p>
        {{end}}
    </div>
    {{if .HasCites}}
    <div class="card">
        <h2>References</h2>
        <ol class="refs">{{range .Eval.Citations}}<li>{{.}}</li>{{end}}</ol>
    </div>
    {{end}}
{{else}}
    <div class="card"><p class="empty">Organism not recognised; no inference was performed.</p></div>
{{end}}
</div>
</body>
</html>
`

// pageShellTemplate wraps a pre-rendered HTML fragment
const pageShellTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>` + reportStyles + `</style>
</head>
<body>
<div class="container"><div class="card">
{{.Body}}
</div></div>
</body>
</html>
`
