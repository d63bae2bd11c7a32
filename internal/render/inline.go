package render

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
)

const xlinkNamespace = "http://www.w3.org/1999/xlink"

// imageRef is the byte range of the href value inside one <image> tag.
type imageRef struct {
	start, end int
	href       string
}

// InlineImages replaces the target of every <image xlink:href="..."> in svg
// with a base64 data URI, so the document no longer depends on files next to
// it. open reads the referenced file; it receives the unescaped href.
// References that already are data URIs are kept.
func InlineImages(svg []byte, open func(string) ([]byte, error)) ([]byte, error) {
	refs, err := findImages(svg)
	if err != nil {
		return nil, err
	}

	cache := make(map[string]string)
	var out bytes.Buffer
	last := 0
	for _, ref := range refs {
		uri, ok := cache[ref.href]
		if !ok {
			content, err := open(ref.href)
			if err != nil {
				return nil, fmt.Errorf("failed to inline image %q: %w", ref.href, err)
			}
			uri = dataURI(ref.href, content)
			cache[ref.href] = uri
		}
		out.Write(svg[last:ref.start])
		out.WriteString(uri)
		last = ref.end
	}
	out.Write(svg[last:])
	return out.Bytes(), nil
}

// findImages walks the document and records where each image href sits in
// the raw bytes.
func findImages(svg []byte) ([]imageRef, error) {
	d := xml.NewDecoder(bytes.NewReader(svg))
	d.Strict = false
	var refs []imageRef
	for {
		offset := int(d.InputOffset())
		tok, err := d.Token()
		if errors.Is(err, io.EOF) {
			return refs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse svg: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "image" {
			continue
		}
		href, ok := imageHref(start)
		if !ok || strings.HasPrefix(href, "data:") {
			continue
		}

		raw := svg[offset:int(d.InputOffset())]
		from, to, ok := hrefValueRange(raw)
		if !ok {
			return nil, fmt.Errorf("failed to locate href of image %q", href)
		}
		refs = append(refs, imageRef{start: offset + from, end: offset + to, href: href})
	}
}

func imageHref(start xml.StartElement) (string, bool) {
	var plain string
	var hasPlain bool
	for _, attr := range start.Attr {
		if attr.Name.Local != "href" {
			continue
		}
		if attr.Name.Space == xlinkNamespace || attr.Name.Space == "xlink" {
			return attr.Value, true
		}
		plain, hasPlain = attr.Value, true
	}
	return plain, hasPlain
}

// hrefValueRange returns the range of the quoted href value in a raw start tag.
func hrefValueRange(tag []byte) (int, int, bool) {
	i := bytes.Index(tag, []byte("href="))
	if i < 0 || i+len("href=") >= len(tag) {
		return 0, 0, false
	}
	quoteAt := i + len("href=")
	quote := tag[quoteAt]
	if quote != '"' && quote != '\'' {
		return 0, 0, false
	}
	end := bytes.IndexByte(tag[quoteAt+1:], quote)
	if end < 0 {
		return 0, 0, false
	}
	return quoteAt + 1, quoteAt + 1 + end, true
}

func dataURI(path string, content []byte) string {
	return "data:" + mimeType(path) + ";base64," + base64.StdEncoding.EncodeToString(content)
}

func mimeType(path string) string {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		return "image/svg+xml"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		if t := mime.TypeByExtension(ext); t != "" {
			return t
		}
		return "application/octet-stream"
	}
}
