package md2html_test

import (
	"fmt"
	"log"
	"strings"

	"github.com/alnah/go-md2html"
)

func ExampleConverter_ParseContent() {
	conv, err := md2html.NewConverter()
	if err != nil {
		log.Fatal(err)
	}

	body, err := conv.ParseContent("# Hello\n\nWorld")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(body)
	// Output:
	// <h1 id="hello">Hello</h1>
	// <p>World</p>
}

func ExampleConverter_Convert() {
	conv, err := md2html.NewConverter(
		md2html.WithoutExtensions(md2html.ExtMermaid, md2html.ExtMath),
	)
	if err != nil {
		log.Fatal(err)
	}

	result, err := conv.Convert("---\ntitle: Notes\n---\nBody text.", md2html.StreamOptions{})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(result.Meta["title"])
	fmt.Println(strings.Contains(result.HTML, "<title>Notes</title>"))
	// Output:
	// Notes
	// true
}

func ExampleWithExtensionConfig() {
	conv, err := md2html.NewConverter(
		md2html.WithExtensionConfig(md2html.ExtTOC, md2html.Options{"title": "Contents"}),
	)
	if err != nil {
		log.Fatal(err)
	}

	body, err := conv.ParseContent("[TOC]\n\n# Intro\n")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(strings.Contains(body, `<span class="toctitle">Contents</span>`))
	// Output:
	// true
}
