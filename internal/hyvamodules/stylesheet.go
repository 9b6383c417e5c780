package hyvamodules

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// NodeKind classifies top-level stylesheet statements
type NodeKind int

// Node kinds
const (
	NodeAtRule NodeKind = iota
	NodeRule
	NodeComment
)

// Node is a top-level statement of a stylesheet.
type Node interface {
	Kind() NodeKind
	String() string
}

// AtRule is an at-rule such as @import or @tailwind.
type AtRule struct {
	Name   string // without the leading @
	Params string
	Source string // file the rule originates from
	Block  bool   // true for @media { ... } style rules
}

// Kind implements Node
func (a *AtRule) Kind() NodeKind { return NodeAtRule }

// String renders the rule. Block rules are rendered without their body.
func (a *AtRule) String() string {
	head := "@" + a.Name
	if a.Params != "" {
		head += " " + a.Params
	}
	if a.Block {
		return head + " { }"
	}
	return head + ";"
}

// Rule is a qualified rule; only its selector is kept.
type Rule struct {
	Selector string
}

// Kind implements Node
func (r *Rule) Kind() NodeKind { return NodeRule }

func (r *Rule) String() string { return r.Selector + " { }" }

// Comment is a top-level comment.
type Comment struct {
	Text string
}

// Kind implements Node
func (c *Comment) Kind() NodeKind { return NodeComment }

func (c *Comment) String() string { return c.Text }

// Root is a parsed stylesheet. The original text is kept verbatim and nodes
// appended by plugins are rendered after it.
type Root struct {
	Source   string  // file name, may be empty
	Nodes    []Node  // top-level statements found in the source
	Errors   []error // syntax the parser skipped, such as nested rules
	text     string
	appended []Node
}

// ParseStylesheet reads the top-level statements of a stylesheet. Syntax
// errors are recorded in Root.Errors and parsing resumes after them, so
// sources using nesting or other preprocessor syntax are accepted.
func ParseStylesheet(src []byte, from string) (*Root, error) {
	root := &Root{Source: from, text: string(src)}

	p := css.NewParser(parse.NewInputBytes(src), false)
	depth := 0

	for {
		gt, _, data := p.Next()

		switch gt {
		case css.ErrorGrammar:
			err := p.Err()
			if err == nil || err == io.EOF {
				return root, nil
			}
			var perr *parse.Error
			if !errors.As(err, &perr) {
				return nil, fmt.Errorf("parse %s: %w", from, err)
			}
			root.Errors = append(root.Errors, perr)
			// every recovery consumes input, more errors than bytes means the
			// parser is stuck
			if len(root.Errors) > len(src) {
				return nil, fmt.Errorf("parse %s: %w", from, err)
			}

		case css.CommentGrammar:
			if depth == 0 {
				root.Nodes = append(root.Nodes, &Comment{Text: string(data)})
			}

		case css.AtRuleGrammar:
			if depth == 0 {
				root.Nodes = append(root.Nodes, &AtRule{
					Name:   strings.TrimPrefix(string(data), "@"),
					Params: joinValues(p.Values()),
					Source: from,
				})
			}

		case css.BeginAtRuleGrammar:
			if depth == 0 {
				root.Nodes = append(root.Nodes, &AtRule{
					Name:   strings.TrimPrefix(string(data), "@"),
					Params: joinValues(p.Values()),
					Source: from,
					Block:  true,
				})
			}
			depth++

		case css.BeginRulesetGrammar:
			if depth == 0 {
				root.Nodes = append(root.Nodes, &Rule{
					Selector: string(data) + joinValues(p.Values()),
				})
			}
			depth++

		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			if depth > 0 {
				depth--
			}
		}
	}
}

// joinValues concatenates parser tokens, collapsing whitespace
func joinValues(tokens []css.Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken {
			sb.WriteByte(' ')
			continue
		}
		sb.Write(t.Data)
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// Append adds a node after the existing content.
func (r *Root) Append(n Node) {
	r.appended = append(r.appended, n)
}

// Appended returns the nodes added by plugins, in order.
func (r *Root) Appended() []Node {
	return r.appended
}

// Imports returns the params of top-level @import rules, existing and appended.
func (r *Root) Imports() []string {
	var out []string
	for _, list := range [][]Node{r.Nodes, r.appended} {
		for _, n := range list {
			if a, ok := n.(*AtRule); ok && a.Name == "import" {
				out = append(out, a.Params)
			}
		}
	}
	return out
}

// String renders the original stylesheet followed by appended nodes.
func (r *Root) String() string {
	var sb strings.Builder
	sb.WriteString(r.text)
	if len(r.appended) > 0 && r.text != "" && !strings.HasSuffix(r.text, "\n") {
		sb.WriteByte('\n')
	}
	for _, n := range r.appended {
		sb.WriteString(n.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
