// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize rewrites the journal's fixed macro vocabulary into
// pandoc-flavoured Markdown. It is a rule-based rewrite engine, not a
// parser: each rule is a local text substitution, unmatched text passes
// through unchanged, and begin/end block markers are rewritten
// independently without checking that pairs are balanced. Macro arguments
// are assumed to be single-level brace groups; an argument containing an
// unescaped closing brace is cut short at that brace.
package normalize

import (
	"regexp"
	"strings"
)

// Rule rewrites one macro (or one typographic character) into generic
// Markdown. Rules are applied to the whole document text, one after
// another, in table order.
type Rule struct {
	// Macro is the name authors write in the manuscript, shown by the
	// rules command. For typographic rules it names the character.
	Macro string

	// Summary is a one-line description of the rewrite.
	Summary string

	pattern *regexp.Regexp
	// expand builds the replacement from the captured argument. Rules
	// whose pattern captures nothing receive "".
	expand func(arg string) string
}

// Apply rewrites every match of the rule in text.
func (r Rule) Apply(text string) string {
	return r.pattern.ReplaceAllStringFunc(text, func(m string) string {
		sub := r.pattern.FindStringSubmatch(m)
		arg := ""
		if len(sub) > 1 {
			arg = sub[1]
		}
		return r.expand(arg)
	})
}

// Pattern returns the rule's match pattern, for display.
func (r Rule) Pattern() string {
	return r.pattern.String()
}

// Example returns the rewrite applied to a placeholder argument, for
// display by the rules command.
func (r Rule) Example() string {
	return r.expand("…")
}

// macro builds a rule matching \name{arg} and rewriting it to
// prefix+arg+suffix.
func macro(name, summary, prefix, suffix string) Rule {
	return macroFunc(name, summary, func(arg string) string {
		return prefix + arg + suffix
	})
}

// macroFunc builds a rule matching \name{arg} with a custom expansion.
func macroFunc(name, summary string, expand func(string) string) Rule {
	return Rule{
		Macro:   `\` + name,
		Summary: summary,
		pattern: regexp.MustCompile(`\\` + regexp.QuoteMeta(name) + `\{([^}]*)\}`),
		expand:  expand,
	}
}

// literal builds a rule replacing a fixed token with fixed text, used for
// argument-less macros and the dash normalization.
func literal(display, summary, from, to string) Rule {
	return Rule{
		Macro:   display,
		Summary: summary,
		pattern: regexp.MustCompile(regexp.QuoteMeta(from)),
		expand:  func(string) string { return to },
	}
}

// Rules is the fixed rewrite table, in application order. Macros whose
// names share a prefix (cite/citep/citet, section/subsection) are ordered
// longest first so a partial match can never shadow a longer macro name.
var Rules = []Rule{
	macroFunc("title", "manuscript title, upper-cased as the top-level heading",
		func(arg string) string { return "# " + strings.ToUpper(arg) }),
	macroFunc("shorttitle", "running head, dropped from the submission document",
		func(string) string { return "" }),
	macro("author", "author line in bold", "**", "**"),
	macro("affiliation", "author affiliation in italics", "*", "*"),
	macro("email", "contact address as an autolink", "<", ">"),
	macro("abstract", "abstract paragraph with a bold lead-in", "**Abstract.** ", ""),
	macro("keywords", "keyword list with a bold lead-in", "**Keywords:** ", ""),
	macro("funding", "funding statement with a bold lead-in", "**Funding statement:** ", ""),
	macro("acknowledgments", "acknowledgments under their own heading",
		"## Acknowledgments\n\n", ""),
	macro("citeas", "suggested-citation notice as a block quote",
		"> **Please cite this article as:** ", ""),
	macro("subsubsection", "third-level heading", "#### ", ""),
	macro("subsection", "second-level heading", "### ", ""),
	macro("section", "first-level body heading", "## ", ""),
	macro("paragraph", "run-in paragraph heading in bold", "**", ".**"),
	macro("textbf", "bold span", "**", "**"),
	macro("textit", "italic span", "*", "*"),
	macro("emph", "emphasized span", "*", "*"),
	macro("texttt", "monospace span", "`", "`"),
	macro("footnote", "inline footnote", "^[", "]"),
	macro("citep", "parenthetical citation", "[@", "]"),
	macro("citet", "in-text citation", "@", ""),
	macro("cite", "citation", "[@", "]"),
	macroFunc("doi", "DOI as a resolver autolink",
		func(arg string) string { return "<https://doi.org/" + arg + ">" }),
	macro("url", "bare URL as an autolink", "<", ">"),
	beginBibliography(),
	literal(`\end{thebibliography}`, "reference-list end marker, dropped",
		`\end{thebibliography}`, ""),
	bibItem(),
	literal(`\maketitle`, "title-assembly directive, dropped", `\maketitle`, ""),
	literal(`\noindent`, "indentation suppression, dropped", `\noindent`, ""),
	literal("— (em dash)", "em dash normalized to the triple-hyphen convention",
		"—", "---"),
	literal("– (en dash)", "en dash normalized to the double-hyphen convention",
		"–", "--"),
}

// beginBibliography matches \begin{thebibliography}{<width>} including its
// widest-label argument, which plain begin/end rules cannot express.
func beginBibliography() Rule {
	return Rule{
		Macro:   `\begin{thebibliography}`,
		Summary: "reference-list begin marker becomes a References heading",
		pattern: regexp.MustCompile(`\\begin\{thebibliography\}\{[^}]*\}`),
		expand:  func(string) string { return "## References" },
	}
}

// bibItem rewrites \bibitem{key} into a Markdown list marker. The citation
// key is dropped together with any spacing that follows the macro, so the
// entry text lands directly after the marker.
func bibItem() Rule {
	return Rule{
		Macro:   `\bibitem`,
		Summary: "reference entry as a list item",
		pattern: regexp.MustCompile(`\\bibitem\{([^}]*)\}[ \t]*`),
		expand:  func(string) string { return "- " },
	}
}

// Apply runs the full rule table over src once and returns the rewritten
// text. The replacement markup matches no rule pattern, so applying the
// result a second time returns it unchanged.
func Apply(src string) string {
	out := src
	for _, r := range Rules {
		out = r.Apply(out)
	}
	return out
}
