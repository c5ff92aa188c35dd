// Package layout classifies paragraphs of informal plain text into blocks.
//
// Authors write descriptions as one string with loose conventions: blank
// lines between paragraphs, "-" or "1." in front of list lines, a short
// upper-case or colon-terminated line as a heading. There is no grammar for
// this, so classification is heuristic and runs in a fixed decision order.
//
// # Classification
//
// The [Classifier] orchestrates all detection components:
//
//	classifier := layout.NewClassifier()
//	doc := classifier.ClassifyText("SKILLS:\n- Go\n- Rust")
//
// For a single paragraph that is already split into lines:
//
//	blocks := classifier.Classify([]string{"- one", "- two"})
//
// Decision order, first match wins:
//
//  1. every line carries a list marker - bullet or numbered list
//  2. a single line that looks like a heading - heading
//  3. an unmarked first line followed by marked lines - heading plus list
//  4. anything else - paragraph, line breaks preserved
//
// [Classifier.Analyze] also reports which rule fired for each paragraph,
// which helps when reviewing heading heuristics on real content.
//
// # Detectors
//
//   - [ParagraphDetector] - splits text on blank lines
//   - [ListDetector] - recognizes bullet and numbered markers, all-or-nothing
//   - [HeadingDetector] - all-caps, trailing colon and Title-Case heuristics
//
// # Configuration
//
// Each detector can be configured independently:
//
//	config := layout.DefaultClassifierConfig()
//	config.Heading.MaxAllCapsLength = 30
//	config.Heading.Level = 2
//	classifier := layout.NewClassifierWithConfig(config)
package layout
