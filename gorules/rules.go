//go:build ruleguard

package gorules

import (
	"github.com/quasilyte/go-ruleguard/dsl"
)

func requestPathJoin(m dsl.Matcher) {
	m.Match(
		`filepath.Join($*_, $req.URL.Path, $*_)`,
		`path.Join($*_, $req.URL.Path, $*_)`,
		`http.Dir($_)`,
	).
		Where(!m.File().PkgPath.Matches(`internal/fileserver`)).
		Report("resolve request paths with fileserver.Resolver, it rejects traversal outside of root")
}

func printOutsideConsole(m dsl.Matcher) {
	m.Match(`fmt.Println($*_)`, `fmt.Printf($*_)`, `fmt.Print($*_)`).
		Where(
			m.File().PkgPath.Matches(`internal/`) &&
				!m.File().PkgPath.Matches(`internal/console`),
		).
		Report("log through zap or print through the console package")
}
