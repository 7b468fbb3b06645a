// Package pipeline turns article text into a flat sequence of blocks ready
// for document assembly.
//
// The stages run in order:
//   - Preprocess: line ending and Unicode normalization, front matter
//   - Scanner: line-by-line classification into headings, lists, code,
//     metadata lines and the two fixed replacement points
//   - InlineParser: Markdown inline syntax to formatted spans via Goldmark
//   - Highlighter: fenced code to coloured tokens via Chroma
//
// Nothing here knows about the output format. The render package maps
// blocks, spans and tokens onto the word-processing document model.
package pipeline
