package serverdebug

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/zestagio/static-server/internal/buildinfo"
	"github.com/zestagio/static-server/internal/logger"
)

var indexTmpl = template.Must(template.New("index").Parse(`<html>
<title>Static Server Debug</title>
<body>
	<h2>Static Server Debug <small>{{.Version}}</small></h2>
	<ul>
		{{range .Pages}}
		<li><a href="{{.Path}}">{{.Path}}</a> {{.Description}}</li>
		{{end}}
	</ul>

	<h2>Log Level</h2>
	<form onSubmit="putLogLevel(); return false;">
		<select id="log-level-select">
			{{range .Levels}}
			<option{{if eq . $.LogLevel}} selected{{end}}>{{.}}</option>
			{{end}}
		</select>
		<input type="submit" value="Change"></input>
	</form>

	<script>
		function putLogLevel() {
			const req = new XMLHttpRequest();
			req.open('PUT', '/log/level', false);
			req.setRequestHeader('Content-Type', 'application/json');
			req.onload = function() { window.location.reload(); };
			req.send(JSON.stringify({"level": document.getElementById('log-level-select').value.toLowerCase()}));
		};
	</script>
</body>
</html>
`))

type page struct {
	Path        string
	Description string
}

type indexPage struct {
	pages []page
}

func newIndexPage() *indexPage {
	return &indexPage{}
}

func (i *indexPage) addPage(path string, description string) {
	i.pages = append(i.pages, page{path, description})
}

func (i *indexPage) handler(eCtx echo.Context) error {
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, struct {
		Version  string
		Pages    []page
		Levels   []string
		LogLevel string
	}{
		Version:  buildinfo.Version(),
		Pages:    i.pages,
		Levels:   []string{"DEBUG", "INFO", "WARN", "ERROR"},
		LogLevel: logger.Level.Level().CapitalString(),
	}); err != nil {
		return err
	}
	return eCtx.HTMLBlob(http.StatusOK, buf.Bytes())
}
