package csv2slides

import (
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var indexTemplate = template.Must(template.New("index").Parse(`
<html>
<head>
<title>csv2read</title>
</head>
<body>
<ul>
{{range .}}<li><a href="{{.}}">{{.}}</a></li>
{{end}}</ul>
</body>
`))

// BuildIndex writes an index page into dir linking each of its
// subdirectories, skipping names starting with ".git".
func BuildIndex(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".git") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	f, err := os.Create(filepath.Join(dir, PageFileName))
	if err != nil {
		return err
	}
	if err := indexTemplate.Execute(f, names); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
