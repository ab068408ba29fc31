package api

import (
	"html/template"
	"net/http"

	"github.com/matzehuels/venngen/pkg/core/render/sink"
)

const formPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Venn diagram generator</title>
<style>
label { display: block; max-width: 300px; margin: auto; height: 2em; }
input { float: right; }
</style>
</head>
<body>
<form method="GET" action="/venn.svg">
<label>Left circle: <input required name="first" value="ducks"/></label>
<label>Right circle: <input required name="second" value="moles"/></label>
<label>Union of left &amp; right: <input name="one_two" value="platypuses"/></label>
<label>Top circle: <input name="third"/></label>
<label>Union of top &amp; left: <input name="one_three"/></label>
<label>Union of right &amp; top: <input name="two_three"/></label>
<label>Union of 3 circles: <input name="middle"/></label>
<label>Circle radius: <input type="number" step="any" value="{{num .Radius}}" name="radius"/></label>
<label>Image size: <input type="number" step="any" value="{{num .Size}}" name="size"/></label>
<label>Overlap size: <input type="number" step="any" value="{{num .Overlap}}" name="overlap"/></label>
<label><input type="submit" value="Show me!"/></label>
</form>
</body>
</html>
`

var formTemplate = template.Must(template.New("form").Funcs(template.FuncMap{
	"num": sink.FormatNumber,
}).Parse(formPage))

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := formTemplate.Execute(w, s.cfg.Diagram); err != nil {
		s.logger.Error("render form", "error", err)
	}
}
