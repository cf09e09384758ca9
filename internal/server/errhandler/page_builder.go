package errhandler

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
)

var errorPage = template.Must(template.New("error").Parse(`<!DOCTYPE HTML>
<html lang="en">
<head>
	<meta charset="utf-8">
	<title>Error response</title>
</head>
<body>
	<h1>Error response</h1>
	<p>Error code: {{.Code}}</p>
	<p>Message: {{.Message}}.</p>
	<p>Error code explanation: {{.Code}} - {{.Explanation}}.</p>
	{{- if .Details}}
	<pre>{{.Details}}</pre>
	{{- end}}
</body>
</html>
`))

type page struct {
	Code        int
	Message     string
	Explanation string
	Details     string
}

// PageBuilder renders the HTML body of an error response.
func PageBuilder(code int, msg string, details string) []byte {
	return buildPage(errorPage, code, msg, details)
}

func buildPage(tmpl *template.Template, code int, msg string, details string) []byte {
	var buf bytes.Buffer
	err := tmpl.Execute(&buf, page{
		Code:        code,
		Message:     msg,
		Explanation: http.StatusText(code),
		Details:     details,
	})
	if err != nil {
		return []byte(fmt.Sprintf("Error code: %d\nMessage: %s.\n", code, template.HTMLEscapeString(msg)))
	}
	return buf.Bytes()
}
