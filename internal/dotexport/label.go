package dotexport

import (
	"html"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/ged2dot/internal/config"
	"github.com/specialistvlad/ged2dot/internal/genealogy"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".JPG", ".PNG"}

// imagePath finds the portrait of an individual, falling back to a
// placeholder picked by sex.
func (o Options) imagePath(ind *genealogy.Individual) string {
	images := o.images()
	base := filepath.Join(o.ImageDir, ind.Forename+" "+ind.Surname)

	if birth := ind.Attrs.Birth; birth != "" {
		for _, ext := range imageExtensions {
			if candidate := base + " " + birth + ext; images.Exists(candidate) {
				return o.relative(candidate)
			}
		}
	}
	if candidate := base + ".jpg"; images.Exists(candidate) {
		return o.relative(candidate)
	}

	sex := "u"
	switch strings.ToUpper(ind.Sex) {
	case "M":
		sex = "m"
	case "F":
		sex = "f"
	}
	return o.relative(filepath.Join(o.AssetDir, "placeholder-"+sex+".svg"))
}

// lifeSpan renders the birth and death years.
func (o Options) lifeSpan(ind *genealogy.Individual) string {
	birth, death := ind.Attrs.Birth, ind.Attrs.Death
	switch {
	case birth != "" && death == "":
		return strings.ReplaceAll(o.BirthFormat, "{}", birth)
	case birth == "" && death != "":
		return "† " + death
	default:
		return birth + "-" + death
	}
}

// individualLabel returns the HTML-like label of an individual, without the
// enclosing angle brackets.
func (o Options) individualLabel(ind *genealogy.Individual) string {
	var b strings.Builder
	b.WriteString(`<table border="0" cellborder="0"><tr><td>`)
	b.WriteString(`<img scale="true" src="` + html.EscapeString(o.imagePath(ind)) + `"/>`)
	// An explicit font face keeps the text centered.
	b.WriteString(`</td></tr><tr><td><font face="Times">`)
	forename, surname := html.EscapeString(ind.Forename), html.EscapeString(ind.Surname)
	if o.NameOrder == config.NameOrderBig {
		b.WriteString(surname + "<br/>" + forename + "<br/>")
	} else {
		b.WriteString(forename + "<br/>" + surname + "<br/>")
	}
	b.WriteString(html.EscapeString(o.lifeSpan(ind)))
	b.WriteString(`</font></td></tr></table>`)
	return b.String()
}

// familyLabel returns the marriage year, or a marriage icon when the year is
// unknown.
func (o Options) familyLabel(fam *genealogy.Family) string {
	if fam.Marriage != "" {
		return html.EscapeString(fam.Marriage)
	}
	icon := o.relative(filepath.Join(o.AssetDir, "marriage.svg"))
	// The explicit size keeps the icon centered in PNG output.
	return `<table border="0" cellborder="0" width="32px" height="23px"><tr><td><img src="` +
		html.EscapeString(icon) + `"/></td></tr></table>`
}
