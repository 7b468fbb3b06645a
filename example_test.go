package md2docx_test

import (
	"context"
	"fmt"
	"os"

	"github.com/alnah/go-md2docx"
)

// Example converts a short article without the references appendix.
func Example() {
	conv, err := md2docx.NewConverter(md2docx.WithReferences(false))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), md2docx.Input{
		Markdown: "# Hello World\n\nThis is a test.",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Title)
	fmt.Printf("headings=%d paragraphs=%d\n", result.Stats.Headings, result.Stats.Paragraphs)
	// Output:
	// Hello World
	// headings=1 paragraphs=1
}

// Example_references shows the bibliography appended after the article.
func Example_references() {
	conv, err := md2docx.NewConverter()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), md2docx.Input{
		Markdown: "# Notes\n\nSee the sources below.",
		Title:    "Field Notes",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.Title)
	fmt.Println("references:", result.Stats.References)
	// Output:
	// Field Notes
	// references: 27
}

// Example_saveToFile writes the generated package to disk.
func Example_saveToFile() {
	conv, err := md2docx.NewConverter(md2docx.WithTheme("monochrome"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	result, err := conv.Convert(context.Background(), md2docx.Input{
		Markdown: "# Report\n\n- first\n- second",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	f, err := os.CreateTemp("", "example-*.docx")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if _, err := f.Write(result.DOCX); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("list items:", result.Stats.ListItems)
	// Output: list items: 2
}

// ExampleThemeNames lists the built-in themes.
func ExampleThemeNames() {
	for _, name := range md2docx.ThemeNames() {
		fmt.Println(name)
	}
	// Output:
	// default
	// monochrome
}
