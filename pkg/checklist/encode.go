package checklist

import (
	"encoding/xml"
	"io"
	"strings"
	"unicode/utf8"
)

// Encode writes c as a tab-indented XML document in the layout STIG Viewer
// writes. Character data escapes only &, < and > (plus carriage returns,
// which parsers would otherwise fold), so quotes and line breaks in free
// text are written literally and a load/save cycle leaves them unchanged.
func Encode(w io.Writer, c *Checklist) error {
	p := &printer{w: w}
	p.raw(xml.Header)
	for _, comment := range c.Preamble {
		p.raw("<!--" + comment + "-->\n")
	}

	p.open(0, "CHECKLIST")
	p.raw("\t<ASSET>")
	p.raw(string(c.Asset.Inner))
	p.raw("</ASSET>\n")
	p.open(1, "STIGS")
	for i := range c.Groups {
		p.group(&c.Groups[i])
	}
	p.close(1, "STIGS")
	p.close(0, "CHECKLIST")
	return p.err
}

// printer writes elements until the first error, which it keeps.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) group(g *Group) {
	p.open(2, "iSTIG")
	p.open(3, "STIG_INFO")
	for _, si := range g.Info {
		p.open(4, "SI_DATA")
		p.element(5, "SID_NAME", si.Name)
		p.text(5, "SID_DATA", si.Data)
		p.close(4, "SI_DATA")
	}
	p.close(3, "STIG_INFO")
	for i := range g.Vulns {
		p.vuln(&g.Vulns[i])
	}
	p.close(2, "iSTIG")
}

func (p *printer) vuln(v *Vuln) {
	p.open(3, "VULN")
	for _, d := range v.Data {
		p.open(4, "STIG_DATA")
		p.element(5, "VULN_ATTRIBUTE", d.Attribute)
		p.element(5, "ATTRIBUTE_DATA", d.Data)
		p.close(4, "STIG_DATA")
	}
	p.element(4, "STATUS", string(v.Status))
	p.text(4, "FINDING_DETAILS", v.FindingDetails)
	p.text(4, "COMMENTS", v.Comments)
	p.text(4, "SEVERITY_OVERRIDE", v.SeverityOverride)
	p.text(4, "SEVERITY_JUSTIFICATION", v.SeverityJustification)
	p.close(3, "VULN")
}

// text writes a Text field, omitting it when unset.
func (p *printer) text(depth int, name string, t Text) {
	if s, ok := t.Get(); ok {
		p.element(depth, name, s)
	}
}

func (p *printer) element(depth int, name, value string) {
	p.raw(strings.Repeat("\t", depth) + "<" + name + ">" + escape(value) + "</" + name + ">\n")
}

func (p *printer) open(depth int, name string) {
	p.raw(strings.Repeat("\t", depth) + "<" + name + ">\n")
}

func (p *printer) close(depth int, name string) {
	p.raw(strings.Repeat("\t", depth) + "</" + name + ">\n")
}

func (p *printer) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

// escape makes s safe as character data. Runes XML cannot carry are
// replaced with U+FFFD, as encoding/xml does.
func escape(s string) string {
	if !strings.ContainsAny(s, "&<>\r") && validChars(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 16)
	for _, r := range s {
		switch {
		case r == '&':
			b.WriteString("&amp;")
		case r == '<':
			b.WriteString("&lt;")
		case r == '>':
			b.WriteString("&gt;")
		case r == '\r':
			b.WriteString("&#xD;")
		case !xmlChar(r):
			b.WriteRune(utf8.RuneError)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func validChars(s string) bool {
	for _, r := range s {
		if !xmlChar(r) {
			return false
		}
	}
	return true
}

// xmlChar reports whether r is in the XML 1.0 Char production.
func xmlChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}
